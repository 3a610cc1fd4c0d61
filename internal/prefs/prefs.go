// Package prefs persists the small set of settings the UI changes at runtime.
// They live apart from config.toml so that toggling a theme never rewrites
// the user's hand-edited configuration.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultPrefsPath = "~/.config/marquee/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Prefs holds what the user last chose in the UI.
type Prefs struct {
	Theme       string `toml:"theme"`
	AutoAdvance bool   `toml:"auto_advance"`
}

// Default returns the preferences used when nothing has been saved.
func Default() Prefs {
	return Prefs{Theme: defaultTheme, AutoAdvance: true}
}

// DefaultPath returns where preferences live unless overridden.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. A missing file yields Default with a nil
// error. An unreadable or malformed file also yields Default, along with the
// error so the caller can log it; callers are free to ignore it.
func Load(path string) (Prefs, error) {
	file, err := locate(path)
	if err != nil {
		return Default(), err
	}

	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Default(), nil
	case err != nil:
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", file, err)
	}
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	return p, nil
}

// Save writes p to path, creating parent directories.
func Save(path string, p Prefs) error {
	file, err := locate(path)
	if err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode prefs: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// locate turns path (or the default when blank) into an absolute file path,
// expanding a leading ~.
func locate(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		p = defaultPrefsPath
	}
	if rest, ok := strings.CutPrefix(p, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("prefs path: %w", err)
		}
		p = filepath.Join(home, rest)
	}
	return filepath.Abs(p)
}

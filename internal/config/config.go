package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/carousel"
)

const (
	defaultConfigPath  = "~/.config/marquee/config.toml"
	defaultLogFile     = "~/.local/state/marquee/marquee.log"
	defaultLogLevel    = zerolog.InfoLevel
	defaultPollSeconds = 30
)

// Config captures Marquee's runtime settings.
type Config struct {
	EventsFile   string
	EventsURL    string
	PollInterval time.Duration
	LogFile      string
	LogLevel     zerolog.Level
	Timings      carousel.Timings
}

// fileConfig mirrors config.toml. Zero values mean "keep the default".
type fileConfig struct {
	EventsFile  string `toml:"events_file"`
	EventsURL   string `toml:"events_url"`
	PollSeconds int    `toml:"poll_seconds"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	Carousel    struct {
		AdvanceMS int `toml:"advance_ms"`
		SettleMS  int `toml:"settle_ms"`
		QuietMS   int `toml:"quiet_ms"`
		ResumeMS  int `toml:"resume_ms"`
	} `toml:"carousel"`
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PollInterval: defaultPollSeconds * time.Second,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
		Timings:      carousel.DefaultTimings(),
	}
}

// Load reads the config at path (or the default location when blank). A
// missing file is not an error.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultConfigPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if err := fc.apply(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	url := strings.TrimSpace(fc.EventsURL)
	file := strings.TrimSpace(fc.EventsFile)
	if url != "" && file != "" {
		return errors.New("events_file and events_url are mutually exclusive")
	}
	cfg.EventsURL = url
	if file != "" {
		cfg.EventsFile = mustExpand(file)
	}

	if fc.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(fc.PollSeconds) * time.Second
	}
	if logFile := strings.TrimSpace(fc.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(fc.LogLevel); level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
		cfg.LogLevel = parsed
	}

	cfg.Timings = carousel.Timings{
		Advance:            millis(fc.Carousel.AdvanceMS),
		ProgrammaticSettle: millis(fc.Carousel.SettleMS),
		Quiet:              millis(fc.Carousel.QuietMS),
		Resume:             millis(fc.Carousel.ResumeMS),
	}.WithDefaults()
	return nil
}

// Remote reports whether the catalog comes from an HTTP source.
func (c Config) Remote() bool {
	return c.EventsURL != ""
}

func millis(ms int) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func mustExpand(path string) string {
	if expanded, err := expandPath(path); err == nil {
		return expanded
	}
	return path
}

func expandPath(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return "", errors.New("path is empty")
	}
	if rest, ok := strings.CutPrefix(p, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		p = filepath.Join(home, rest)
	}
	return filepath.Abs(p)
}

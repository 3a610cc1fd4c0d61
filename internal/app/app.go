package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
	"github.com/five82/marquee/internal/ui"
)

// builtinSource labels the compiled-in catalog in the header.
const builtinSource = "built-in events"

// Options configure the Marquee application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	EventsFile string
	EventsURL  string
	PollEvery  int // seconds; zero uses the config value
}

// Run boots the Marquee TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logCloser, err := initLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs := loadPrefs(prefsPath)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	source, err := startSource(ctx, cfg, store)
	if err != nil {
		return err
	}
	log.Info().Str("source", source).Dur("advance", cfg.Timings.Advance).Msg("marquee starting")

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Timings:   cfg.Timings,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		Source:    source,
		Logger:    component("ui"),
	})
	if err != nil && ctx.Err() != nil {
		// Cancelled from outside; not a failure.
		return nil
	}
	return err
}

// applyOverrides folds command-line options into cfg. A file or URL given on
// the command line replaces both catalog settings from the config file.
func applyOverrides(cfg *config.Config, opts Options) error {
	file := strings.TrimSpace(opts.EventsFile)
	url := strings.TrimSpace(opts.EventsURL)
	if file != "" && url != "" {
		return fmt.Errorf("events file and events url are mutually exclusive")
	}
	if file != "" || url != "" {
		cfg.EventsFile = file
		cfg.EventsURL = url
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}
	return nil
}

// startSource fills the store from the configured catalog source and keeps it
// current in the background. It returns a label for the source.
func startSource(ctx context.Context, cfg config.Config, store *state.Store) (string, error) {
	switch {
	case cfg.Remote():
		client, err := catalog.NewClient(cfg.EventsURL)
		if err != nil {
			return "", fmt.Errorf("init catalog client: %w", err)
		}
		StartPoller(ctx, store, client, cfg.PollInterval, component("poller"))
		return client.URL(), nil

	case cfg.EventsFile != "":
		cat, err := catalog.LoadFile(cfg.EventsFile)
		if err != nil {
			return "", fmt.Errorf("load catalog: %w", err)
		}
		store.Update(cat, nil)
		go watchFile(ctx, cfg.EventsFile, store)
		return cfg.EventsFile, nil

	default:
		store.Update(catalog.Default(), nil)
		return builtinSource, nil
	}
}

// watchFile reloads the catalog file into the store until ctx is cancelled.
func watchFile(ctx context.Context, path string, store *state.Store) {
	logger := component("watch")
	err := catalog.Watch(ctx, path, func(cat *catalog.Catalog, err error) {
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("catalog reload failed")
		} else {
			logger.Info().Ints("sizes", cat.Sizes()).Msg("catalog reloaded")
		}
		store.Update(cat, err)
	})
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("catalog watch stopped")
	}
}

// loadPrefs never fails: a bad prefs file is logged and defaults are used.
func loadPrefs(path string) prefs.Prefs {
	p, err := prefs.Load(path)
	if err != nil {
		logger := component("prefs")
		logger.Warn().Err(err).Str("path", path).Msg("using default preferences")
	}
	return p
}

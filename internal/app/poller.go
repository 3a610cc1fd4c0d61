package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/state"
)

const (
	defaultPollInterval = 30 * time.Second
	maxBackoff          = 5 * time.Minute
	fetchTimeout        = 10 * time.Second
)

// StartPoller launches a background goroutine that refreshes the catalog from
// a remote source. Consecutive failures stretch the wait between attempts.
// It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, fetcher catalog.Fetcher, interval time.Duration, logger zerolog.Logger) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, fetcher, logger)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// refresh performs one fetch and records the outcome in the store.
func refresh(ctx context.Context, store *state.Store, fetcher catalog.Fetcher, logger zerolog.Logger) error {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	cat, err := fetcher.Fetch(fetchCtx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		store.Update(nil, err)
		logger.Warn().Err(err).Msg("catalog poll failed")
		return err
	}
	store.Update(cat, nil)
	logger.Debug().Ints("sizes", cat.Sizes()).Msg("catalog refreshed")
	return nil
}

// calculateBackoff doubles base for every consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for range failures {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

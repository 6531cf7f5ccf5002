// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// WaitForDB pings db until it answers, at most attempts times with interval
// between tries. It gives up early when ctx is done.
func WaitForDB(ctx context.Context, db *sql.DB, attempts int, interval time.Duration, log *logger.Logger) error {
	if attempts < 1 {
		attempts = 1
	}
	if interval <= 0 {
		interval = time.Second
	}

	tries := 0
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(interval))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		tries++
		if err := db.PingContext(ctx); err != nil {
			log.Warn().Err(err).
				Str("func", "WaitForDB").
				Int("attempt", tries).
				Int("max_attempts", attempts).
				Msg("database unavailable, waiting")
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w after %d attempts: %w", ErrDatabaseUnavailable, tries, err)
	}

	log.Info().Str("func", "WaitForDB").Int("attempts", tries).Msg("database available")
	return nil
}

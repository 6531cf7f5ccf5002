// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/tui"
)

const (
	defaultProbeAttempts = 3
	defaultProbeInterval = 500 * time.Millisecond
)

type App struct {
	api    adapter.ServerAdapter
	ui     UI
	logger *logger.Logger

	probeAttempts uint64
	probeInterval time.Duration
}

func NewApp(api adapter.ServerAdapter, ui UI, logger *logger.Logger) *App {
	return &App{
		api:           api,
		ui:            ui,
		logger:        logger,
		probeAttempts: defaultProbeAttempts,
		probeInterval: defaultProbeInterval,
	}
}

// Run blocks until the user quits. Logging out returns to the login flow.
func (a *App) Run(ctx context.Context) error {
	a.probeServer(ctx)

	for {
		email, err := a.ui.LoginFlow(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, email)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("email", email).Msg("logged out")
	}
}

// probeServer asks for the server version a few times. The UI reports an
// unreachable server on its own, so failure is only logged.
func (a *App) probeServer(ctx context.Context) {
	backoff := retry.WithMaxRetries(a.probeAttempts-1, retry.NewConstant(a.probeInterval))

	var version string
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := a.api.Version(ctx)
		if err != nil {
			if errors.Is(err, adapter.ErrInternalServerError) || errors.Is(err, adapter.ErrBadGateway) || !isAPIError(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		version = v
		return nil
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("recipe server is not reachable")
		return
	}

	a.logger.Info().Str("server_version", version).Msg("recipe server reachable")
}

func isAPIError(err error) bool {
	var apiErr *adapter.APIError
	return errors.As(err, &apiErr)
}

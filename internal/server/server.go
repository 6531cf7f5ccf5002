// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/handler"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

type server struct {
	transports []transport
	stopOnce   sync.Once
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports, newHTTPServer(handlers.HTTP.Init(), cfg, logger))
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.transports = append(servers.transports, newGRPCServer(handlers.GRPC, cfg, logger))
	}

	if len(servers.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.stopOnce.Do(func() {
		for _, t := range s.transports {
			if err := t.shutdown(); err != nil {
				s.logger.Err(err).Str("transport", t.name()).Msg("shutdown failed")
			}
		}
	})
}

// run starts every transport and blocks until ctx is done or a transport
// fails. In both cases all transports are shut down before it returns; the
// first serve error is returned.
func (s *server) run(ctx context.Context) error {
	if len(s.transports) == 0 {
		return errNoServersToRun
	}

	errs := make(chan error, len(s.transports))
	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Add(1)
		s.logger.Info().Msgf("Launching %s server", t.name())
		go func() {
			defer wg.Done()
			if err := t.serve(); err != nil {
				errs <- err
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errs:
	}

	s.Shutdown()
	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}

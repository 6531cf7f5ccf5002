// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	myGRPC "github.com/MKhiriev/recipe-keeper/internal/handler/grpc"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	address         string
	server          *grpc.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	var opts []grpc.ServerOption
	if cfg.RequestTimeout > 0 {
		opts = append(opts, grpc.ConnectionTimeout(cfg.RequestTimeout))
	}

	return &grpcServer{
		address:         cfg.GRPCAddress,
		server:          handler.NewServer(opts...),
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

func (g *grpcServer) name() string {
	return "gRPC"
}

func (g *grpcServer) serve() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server Listen: %w", err)
	}

	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown waits for in-flight calls, then force-stops once the timeout
// passes.
func (g *grpcServer) shutdown() error {
	done := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(g.shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out")
		g.server.Stop()
	}
	return nil
}

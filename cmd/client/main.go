// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
	"github.com/MKhiriev/recipe-keeper/internal/client"
	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/tui"
	"github.com/MKhiriev/recipe-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewFileLogger("recipe-client", cfg.LogFile)
	log.Info().Str("build", buildInfo.String()).Str("server", cfg.BaseURL).Msg("client starting")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating server adapter: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	ui := tui.New(serverAdapter, buildInfo, log)
	if err = client.NewApp(serverAdapter, ui, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/handler"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/server"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())

	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("recipe-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLoggerWithLevel("recipe-server", cfg.Log.Level)
	log.Debug().Any("server", cfg.Server).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("version", cfg.App.Version).Msg("recipe server started")
	srv.RunServer()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/recipe-keeper/internal/admin"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.NewConsoleLogger("recipe-admin")

	if err := admin.NewApp(os.Stdin, os.Stdout, log).Run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("command failed")
		stop()
		os.Exit(1)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	metrics  *httpMetrics
	traceIDs *utils.TraceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		metrics:  newHTTPMetrics(),
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri := r.RequestURI
		method := r.Method

		lw, ok := w.(*responseWriter)
		if !ok {
			lw = &responseWriter{ResponseWriter: w}
		}

		next.ServeHTTP(lw, r)

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

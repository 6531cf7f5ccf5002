// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses a well-formed incoming X-Trace-ID or generates one,
// echoes it in the response and attaches a logger carrying it to the
// request context.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !utils.IsValidTraceID(traceID) {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

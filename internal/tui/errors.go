// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/adapter"
)

const (
	msgServerUnavailable = "Network is down or the server is unavailable"
	msgSessionExpired    = "Session is no longer valid, log in again"
)

// humanizeError turns adapter errors into a single line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrNotLoggedIn) {
		return msgSessionExpired
	}

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) == 0 {
			return apiErr.Detail
		}
		parts := make([]string, 0, len(apiErr.Fields))
		for _, f := range slices.Sorted(maps.Keys(apiErr.Fields)) {
			parts = append(parts, f+": "+apiErr.Fields[f])
		}
		return strings.Join(parts, "; ")
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

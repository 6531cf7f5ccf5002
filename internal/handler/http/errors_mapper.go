// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

// apiError is the status and client-facing detail an error maps to.
type apiError struct {
	status int
	detail string
}

const (
	detailNotFound = "Not found."
	detailInternal = "A server error occurred."
)

var errorStatusMap = map[error]apiError{
	validators.ErrValidation: {http.StatusBadRequest, "Invalid input."},
	utils.ErrEmptyBody:       {http.StatusBadRequest, "JSON parse error - request body is empty."},
	utils.ErrMalformedJSON:   {http.StatusBadRequest, "JSON parse error."},
	errInvalidGzip:           {http.StatusBadRequest, "Invalid gzip data."},

	service.ErrInvalidCredentials: {http.StatusBadRequest, "Unable to authenticate with provided credentials."},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, "Authentication credentials were not provided."},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, "Invalid token header."},
	ErrEmptyToken:                 {http.StatusUnauthorized, "Invalid token header. No credentials provided."},
	ErrNotAuthenticated:           {http.StatusUnauthorized, "Authentication credentials were not provided."},
	service.ErrTokenInvalid:       {http.StatusUnauthorized, "Invalid token."},

	ErrInvalidID:              {http.StatusNotFound, detailNotFound},
	service.ErrRecipeNotFound: {http.StatusNotFound, detailNotFound},
	service.ErrUserNotFound:   {http.StatusNotFound, detailNotFound},
}

func apiErrorFrom(err error) apiError {
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped
		}
	}
	return apiError{http.StatusInternalServerError, detailInternal}
}

func statusFromError(err error) int {
	return apiErrorFrom(err).status
}

// writeError renders err as a models.ErrorResponse. Validation failures carry
// their per-field messages; 401 responses carry the WWW-Authenticate
// challenge; unexpected errors are logged and hidden behind a generic detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := apiErrorFrom(err)
	body := models.ErrorResponse{Detail: mapped.detail}

	if ve, ok := validators.AsValidationError(err); ok {
		body.Fields = ve.Fields
	}

	switch mapped.status {
	case http.StatusUnauthorized:
		w.Header().Set("WWW-Authenticate", utils.AuthScheme)
	case http.StatusInternalServerError:
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("unexpected error")
	}

	utils.WriteJSON(w, body, mapped.status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detailNotFound}, http.StatusNotFound)
}

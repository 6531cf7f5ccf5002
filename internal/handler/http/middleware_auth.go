// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/rs/zerolog"
)

// Accepted Authorization schemes. Both carry the same opaque key.
var authSchemes = []string{utils.AuthScheme, "Bearer"}

// auth is an HTTP middleware that enforces token authentication.
//
// It extracts the key from the "Authorization" header, resolves it via
// [service.AuthService.ResolveToken] and, on success, stores the user in the
// request context with [utils.WithUser]. Missing or malformed headers,
// unknown keys and inactive users are rejected with 401 and a
// "WWW-Authenticate: Token" challenge.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Debug().Err(err).Str("func", "*Handler.auth").Send()
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.ResolveToken(ctx, key)
		if err != nil {
			log.Info().Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			writeError(w, r, err)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", user.UserID)
		})

		ctx = utils.WithUser(log.WithContext(ctx), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the key from a raw "Authorization" value
// of the form "<scheme> <key>". The scheme is case-insensitive.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if strings.TrimSpace(authHeader) == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Fields(authHeader)
	if !knownScheme(parts[0]) {
		return "", ErrInvalidAuthorizationHeader
	}
	switch len(parts) {
	case 1:
		return "", ErrEmptyToken
	case 2:
		return parts[1], nil
	default:
		// spaces inside the key
		return "", ErrInvalidAuthorizationHeader
	}
}

func knownScheme(scheme string) bool {
	for _, s := range authSchemes {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	return false
}

// requireStaff hides its routes from non-staff users behind a 404. It must
// run after auth.
func (h *Handler) requireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNotAuthenticated)
			return
		}
		if !user.IsStaff {
			logger.FromRequest(r).Info().Int64("id", user.UserID).Msg("non-staff access to admin route")
			notFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the authentication middleware.
var (
	// ErrEmptyAuthorizationHeader means no "Authorization" header was sent.
	ErrEmptyAuthorizationHeader = errors.New("authentication credentials were not provided")

	// ErrInvalidAuthorizationHeader means the header is not "<scheme> <key>"
	// or the scheme is neither Token nor Bearer.
	ErrInvalidAuthorizationHeader = errors.New("invalid token header")

	// ErrEmptyToken means the scheme was present but the key was not.
	ErrEmptyToken = errors.New("invalid token header, no credentials provided")

	// ErrNotAuthenticated is returned when a protected handler runs without
	// a user in its context.
	ErrNotAuthenticated = errors.New("not authenticated")

	ErrInvalidID = errors.New("invalid id in path")
)

var errInvalidGzip = errors.New("invalid gzip body")

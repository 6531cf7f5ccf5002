// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	ErrNotLoggedIn = errors.New("not logged in")
	ErrEmptyToken  = errors.New("server returned an empty token")
)

// APIError is a decoded error body. It unwraps to the sentinel matching the
// status code.
type APIError struct {
	Status int
	Detail string
	Fields map[string]string

	kind error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v (%d)", e.kind, e.Status)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	for _, f := range slices.Sorted(maps.Keys(e.Fields)) {
		fmt.Fprintf(&b, "; %s: %s", f, e.Fields[f])
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.kind
}

// FieldErrors returns the per-field messages of a validation failure, or nil.
func FieldErrors(err error) map[string]string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Fields
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories. Match them with [errors.Is].
var (
	// ErrNotFound is returned when a lookup, update or delete matches no row.
	// For recipes the match includes the owner, so a row owned by someone
	// else is reported the same way as a missing one.
	ErrNotFound = errors.New("record not found")

	// ErrEmailAlreadyExists is returned when the users.email unique
	// constraint rejects an insert.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTokenNotSaved is returned when neither the insert nor the re-read of
	// a user's token produced a row.
	ErrTokenNotSaved = errors.New("auth token was not saved")

	// ErrUnsupportedDSN is returned when the DSN scheme names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrDatabaseUnavailable is returned when the database did not answer a
	// ping within the configured attempts.
	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// Low-level operation errors, wrapped together with the driver error.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan row")
	ErrScanningRows     = errors.New("failed to scan rows")
)

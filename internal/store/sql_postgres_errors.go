// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed operation may be retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors and constraint failures.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures: lost connections, serialization
	// failures, deadlocks, a busy database.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for pgx errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" {
		return NonRetryable
	}

	switch code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *PostgresErrorClassifier) IsUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

// postgresError returns the SQLSTATE carried by err, or "".
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

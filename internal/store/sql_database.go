// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/migrations"
)

// Dialect is the database/sql driver name in use.
type Dialect string

const (
	DialectPostgres Dialect = migrations.DialectPostgres
	DialectSQLite   Dialect = migrations.DialectSQLite
)

// DB is a connection together with the query builder and error classifier
// matching its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection.
func NewDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect reports the driver name.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// SchemaVersion reports the applied migration version.
func (db *DB) SchemaVersion(ctx context.Context) (int64, error) {
	return migrations.Version(ctx, db.DB, string(db.dialect))
}

// isUniqueViolation reports whether err is a unique constraint failure.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}

// maxWriteAttempts bounds withRetry.
const maxWriteAttempts = 3

// withRetry runs op again when the classifier marks the failure Retryable
// (serialization failures, deadlocks, a locked sqlite file).
func (db *DB) withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxWriteAttempts-1, retry.NewExponential(20*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := op(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})
}

// ParseDSN picks the driver for dsn and returns the string to hand to it.
//
//	postgres://..., postgresql://...  -> pgx, unchanged
//	sqlite://path, sqlite3://path     -> sqlite3, "path"
//	file:..., a bare path, :memory:   -> sqlite3, unchanged
func ParseDSN(dsn string) (Dialect, string, error) {
	dsn = strings.TrimSpace(dsn)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "":
		return "", "", ErrUnsupportedDSN
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(lower, "sqlite3://"):
		return DialectSQLite, dsn[len("sqlite3://"):], nil
	case strings.HasPrefix(lower, "sqlite://"):
		return DialectSQLite, dsn[len("sqlite://"):], nil
	case strings.Contains(lower, "://"):
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedDSN, dsn[:strings.Index(dsn, "://")])
	default:
		return DialectSQLite, dsn, nil
	}
}

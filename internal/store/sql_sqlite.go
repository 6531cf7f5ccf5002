// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// NewConnectSQLite opens a single-connection sqlite database with foreign
// keys enforced. The file is created if missing.
func NewConnectSQLite(ctx context.Context, cfg config.DB, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(string(DialectSQLite), sqliteDSN(dsn))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// sqlite serialises writers anyway; one connection keeps :memory: alive
	// and avoids SQLITE_BUSY between our own goroutines.
	conn.SetMaxOpenConns(1)

	if err := WaitForDB(ctx, conn, cfg.WaitAttempts, cfg.WaitInterval, log); err != nil {
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return NewDB(conn, DialectSQLite, log), nil
}

// sqliteDSN adds the pragmas we rely on unless the caller set them.
func sqliteDSN(dsn string) string {
	params := []string{}
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk=") {
		params = append(params, "_foreign_keys=1")
	}
	if !strings.Contains(dsn, "_busy_timeout") && !strings.Contains(dsn, "_timeout=") {
		params = append(params, "_busy_timeout=5000")
	}
	if len(params) == 0 {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(params, "&")
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return false
	}

	return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

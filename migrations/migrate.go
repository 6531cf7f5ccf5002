// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema for both supported databases and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect names accepted by Migrate. They match the database/sql driver names.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

var (
	ErrNilDB              = errors.New("migration error: db is nil")
	ErrUnsupportedDialect = errors.New("migration error: unsupported dialect")
)

func dirFor(dialect string) (string, goose.Dialect, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", goose.DialectPostgres, nil
	case DialectSQLite:
		return "sqlite", goose.DialectSQLite3, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}

func newProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	dir, gooseDialect, err := dirFor(dialect)
	if err != nil {
		return nil, err
	}

	sub, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, sub)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}

// Migrate applies all pending migrations for dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version reports the current schema version.
func Version(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return 0, err
	}

	v, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error reading version: %w", err)
	}

	return v, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// Storages bundles the repositories over one connection.
type Storages struct {
	UserRepository   UserRepository
	TokenRepository  TokenRepository
	RecipeRepository RecipeRepository

	db *DB
}

// OpenDB connects to the database named by cfg.DSN and waits for it.
func OpenDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectPostgres:
		return NewConnectPostgres(ctx, cfg, dsn, log)
	default:
		return NewConnectSQLite(ctx, cfg, dsn, log)
	}
}

// NewStorages opens the database, applies migrations unless disabled, and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := OpenDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if !cfg.SkipMigrations {
		if err := db.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			db.Close()
			return nil, fmt.Errorf("error applying migrations: %w", err)
		}
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an existing connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		TokenRepository:  NewTokenRepository(db, log),
		RecipeRepository: NewRecipeRepository(db, log),
		db:               db,
	}
}

// DB exposes the shared connection.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

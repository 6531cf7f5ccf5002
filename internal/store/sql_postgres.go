// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

// NewConnectPostgres opens a pgx-backed pool and waits until it answers.
func NewConnectPostgres(ctx context.Context, cfg config.DB, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(string(DialectPostgres), dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := WaitForDB(ctx, conn, cfg.WaitAttempts, cfg.WaitInterval, log); err != nil {
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return NewDB(conn, DialectPostgres, log), nil
}

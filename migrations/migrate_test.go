// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(context.Background(), nil, DialectPostgres)
	assert.ErrorIs(t, err, ErrNilDB)
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql")
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(context.Background(), db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

// TestEmbeddedMigrations_Paired verifies both dialects ship the same versions.
func TestEmbeddedMigrations_Paired(t *testing.T) {
	pg, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)
	lite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, pg)
	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, pg[i][len("postgres/"):], lite[i][len("sqlite/"):])
	}
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:migrate_test?mode=memory&cache=shared&_foreign_keys=1")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	// second run is a no-op
	require.NoError(t, Migrate(ctx, db, DialectSQLite))

	v, err := Version(ctx, db, DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = db.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES ('a@b.c', 'x')`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO users (email, password_hash) VALUES ('a@b.c', 'y')`)
	assert.Error(t, err, "email must be unique")
}

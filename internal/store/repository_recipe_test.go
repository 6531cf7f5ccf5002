// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

func newTestRecipeRepo(t *testing.T) (*recipeRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &recipeRepository{
		db:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return testCreatedAt },
	}, mock
}

func recipeRows() *sqlmock.Rows {
	return sqlmock.NewRows(recipeColumns)
}

func ptr[T any](v T) *T { return &v }

func TestListRecipes_FiltersByOwnerNewestFirst(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM recipes WHERE user_id = \$1 ORDER BY id DESC`).
		WithArgs(int64(1)).
		WillReturnRows(recipeRows().
			AddRow(int64(2), int64(1), "Cake", 30, int64(1000), "", "", testCreatedAt, testCreatedAt).
			AddRow(int64(1), int64(1), "Soup", 5, int64(500), "http://soup", "hot", testCreatedAt, testCreatedAt))

	recipes, err := repo.ListRecipes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, int64(2), recipes[0].ID)
	assert.Equal(t, models.Price(500), recipes[1].Price)
}

func TestListRecipes_Empty(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery("FROM recipes").WillReturnRows(recipeRows())

	recipes, err := repo.ListRecipes(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestCreateRecipe(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)
	in := models.Recipe{UserID: 1, Title: "Soup", TimeMinutes: 5, Price: 500}

	mock.ExpectQuery(`INSERT INTO recipes .+ RETURNING`).
		WithArgs(int64(1), "Soup", 5, models.Price(500), "", "", testCreatedAt, testCreatedAt).
		WillReturnRows(recipeRows().AddRow(int64(10), int64(1), "Soup", 5, int64(500), "", "", testCreatedAt, testCreatedAt))

	out, err := repo.CreateRecipe(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	assert.Equal(t, int64(1), out.UserID)
}

func TestGetRecipe_OtherOwnerIsNotFound(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM recipes WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(10), int64(2)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRecipe(context.Background(), 10, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRecipe_PartialSetsOnlyPresentFields(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery(`UPDATE recipes SET title = \$1, updated_at = \$2 WHERE id = \$3 AND user_id = \$4 RETURNING`).
		WithArgs("New title", testCreatedAt, int64(10), int64(1)).
		WillReturnRows(recipeRows().AddRow(int64(10), int64(1), "New title", 5, int64(500), "", "", testCreatedAt, testCreatedAt))

	out, err := repo.UpdateRecipe(context.Background(), 10, 1, models.RecipeRequest{Title: ptr("New title")})
	require.NoError(t, err)
	assert.Equal(t, "New title", out.Title)
}

func TestUpdateRecipe_FullWritesEveryColumn(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)
	price := models.Price(250)

	mock.ExpectQuery(`UPDATE recipes SET title = \$1, time_minutes = \$2, price_cents = \$3, link = \$4, description = \$5, updated_at = \$6 WHERE id = \$7 AND user_id = \$8`).
		WithArgs("T", 25, int64(250), "https://example.com", "d", testCreatedAt, int64(10), int64(1)).
		WillReturnRows(recipeRows().AddRow(int64(10), int64(1), "T", 25, int64(250), "https://example.com", "d", testCreatedAt, testCreatedAt))

	_, err := repo.UpdateRecipe(context.Background(), 10, 1, models.RecipeRequest{
		Title: ptr("T"), TimeMinutes: ptr(25), Price: &price, Link: ptr("https://example.com"), Description: ptr("d"),
	})
	require.NoError(t, err)
}

func TestUpdateRecipe_OtherOwnerIsNotFound(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery("UPDATE recipes").WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateRecipe(context.Background(), 10, 2, models.RecipeRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRecipe_EmptyChangesIsGet(t *testing.T) {
	repo, mock := newTestRecipeRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM recipes WHERE id = \$1 AND user_id = \$2`).
		WithArgs(int64(10), int64(1)).
		WillReturnRows(recipeRows().AddRow(int64(10), int64(1), "Soup", 5, int64(500), "", "", testCreatedAt, testCreatedAt))

	out, err := repo.UpdateRecipe(context.Background(), 10, 1, models.RecipeRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Soup", out.Title)
}

func TestDeleteRecipe(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "not owned or missing", result: sqlmock.NewResult(0, 0), wantErr: ErrNotFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingQuery},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRecipeRepo(t)

			exp := mock.ExpectExec(`DELETE FROM recipes WHERE id = \$1 AND user_id = \$2`).WithArgs(int64(10), int64(1))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteRecipe(context.Background(), 10, 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

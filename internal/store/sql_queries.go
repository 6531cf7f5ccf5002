// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/recipe-keeper/models"
)

var (
	userColumns = []string{
		"id", "email", "name", "password_hash",
		"is_active", "is_staff", "is_superuser", "last_login", "created_at",
	}
	tokenColumns  = []string{"token_key", "user_id", "created_at"}
	recipeColumns = []string{
		"id", "user_id", "title", "time_minutes", "price_cents",
		"link", "description", "created_at", "updated_at",
	}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func qualified(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = table + "." + c
	}
	return out
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("email", "name", "password_hash", "is_active", "is_staff", "is_superuser").
		Values(user.Email, user.Name, user.PasswordHash, user.IsActive, user.IsStaff, user.IsSuperuser).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id ASC").
		ToSql()
}

// buildUpdateUserQuery sets the non-nil fields of changes. Squirrel refuses
// an UPDATE without SET, so callers must check changes.IsEmpty first.
func buildUpdateUserQuery(b sq.StatementBuilderType, userID int64, changes models.UserChanges) (string, []any, error) {
	q := b.Update(models.User{}.TableName())

	if changes.Name != nil {
		q = q.Set("name", *changes.Name)
	}
	if changes.PasswordHash != nil {
		q = q.Set("password_hash", *changes.PasswordHash)
	}
	if changes.IsActive != nil {
		q = q.Set("is_active", *changes.IsActive)
	}
	if changes.IsStaff != nil {
		q = q.Set("is_staff", *changes.IsStaff)
	}
	if changes.IsSuperuser != nil {
		q = q.Set("is_superuser", *changes.IsSuperuser)
	}
	if changes.LastLogin != nil {
		q = q.Set("last_login", changes.LastLogin.UTC())
	}

	return q.Where(sq.Eq{"id": userID}).
		Suffix(returning(userColumns)).
		ToSql()
}

// ── tokens ────────────────────────────────────────────────────────────────────

// buildInsertTokenQuery inserts unless the user (or, improbably, the key)
// already has a row.
func buildInsertTokenQuery(b sq.StatementBuilderType, userID int64, key string, now time.Time) (string, []any, error) {
	return b.Insert(models.AuthToken{}.TableName()).
		Columns(tokenColumns...).
		Values(key, userID, now.UTC()).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
}

func buildSelectTokenQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(tokenColumns...).
		From(models.AuthToken{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildFindUserByTokenQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select(qualified("u", userColumns)...).
		From(models.AuthToken{}.TableName() + " t").
		Join(models.User{}.TableName() + " u ON u.id = t.user_id").
		Where(sq.Eq{"t.token_key": key}).
		ToSql()
}

// ── recipes ───────────────────────────────────────────────────────────────────

func buildListRecipesQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(recipeColumns...).
		From(models.Recipe{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id DESC").
		ToSql()
}

func buildCreateRecipeQuery(b sq.StatementBuilderType, recipe models.Recipe, now time.Time) (string, []any, error) {
	return b.Insert(recipe.TableName()).
		Columns("user_id", "title", "time_minutes", "price_cents", "link", "description", "created_at", "updated_at").
		Values(recipe.UserID, recipe.Title, recipe.TimeMinutes, recipe.Price, recipe.Link, recipe.Description, now.UTC(), now.UTC()).
		Suffix(returning(recipeColumns)).
		ToSql()
}

func ownedBy(recipeID, userID int64) sq.Eq {
	return sq.Eq{"id": recipeID, "user_id": userID}
}

func buildGetRecipeQuery(b sq.StatementBuilderType, recipeID, userID int64) (string, []any, error) {
	return b.Select(recipeColumns...).
		From(models.Recipe{}.TableName()).
		Where(ownedBy(recipeID, userID)).
		ToSql()
}

// buildUpdateRecipeQuery writes the present fields and bumps updated_at.
// The owner column is never part of the SET list.
func buildUpdateRecipeQuery(b sq.StatementBuilderType, recipeID, userID int64, changes models.RecipeRequest, now time.Time) (string, []any, error) {
	q := b.Update(models.Recipe{}.TableName())

	if changes.Title != nil {
		q = q.Set("title", *changes.Title)
	}
	if changes.TimeMinutes != nil {
		q = q.Set("time_minutes", *changes.TimeMinutes)
	}
	if changes.Price != nil {
		q = q.Set("price_cents", *changes.Price)
	}
	if changes.Link != nil {
		q = q.Set("link", *changes.Link)
	}
	if changes.Description != nil {
		q = q.Set("description", *changes.Description)
	}

	return q.Set("updated_at", now.UTC()).
		Where(ownedBy(recipeID, userID)).
		Suffix(returning(recipeColumns)).
		ToSql()
}

func buildDeleteRecipeQuery(b sq.StatementBuilderType, recipeID, userID int64) (string, []any, error) {
	return b.Delete(models.Recipe{}.TableName()).
		Where(ownedBy(recipeID, userID)).
		ToSql()
}

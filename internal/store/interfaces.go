// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with id and created_at set.
	// A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// ListUsers returns every account ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser writes the non-nil fields of changes and returns the row.
	UpdateUser(ctx context.Context, userID int64, changes models.UserChanges) (models.User, error)
}

// TokenRepository persists auth tokens.
type TokenRepository interface {
	// GetOrCreateToken returns the user's token, storing newKey only when
	// the user has none yet. Safe under concurrent calls for one user.
	GetOrCreateToken(ctx context.Context, userID int64, newKey string) (models.AuthToken, error)
	// FindUserByToken returns the owner of key, or ErrNotFound.
	FindUserByToken(ctx context.Context, key string) (models.User, error)
}

// RecipeRepository persists recipes. Every method that takes an id also
// takes the owner id and matches on both.
type RecipeRepository interface {
	// ListRecipes returns the owner's recipes, newest id first.
	ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID, userID int64) (models.Recipe, error)
	// UpdateRecipe writes the present fields of changes.
	UpdateRecipe(ctx context.Context, recipeID, userID int64, changes models.RecipeRequest) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID, userID int64) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

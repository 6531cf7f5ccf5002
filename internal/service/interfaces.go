// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService manages accounts: creation, lookup and updates.
type UserService interface {
	CreateUser(ctx context.Context, in models.UserCreate) (models.User, error)
	// CreateSuperuser forces staff and superuser on. Explicitly passing false
	// for either flag is a validation error.
	CreateSuperuser(ctx context.Context, in models.UserCreate) (models.User, error)
	CheckPassword(user models.User, password string) bool
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, user models.User, upd models.ProfileUpdate) (models.User, error)
	// AdminCreateUser and AdminUpdateUser act on behalf of a staff actor.
	// Only superusers may set the staff and superuser flags.
	AdminCreateUser(ctx context.Context, actor models.User, in models.UserCreate) (models.User, error)
	AdminUpdateUser(ctx context.Context, actor models.User, userID int64, upd models.AdminUserUpdate) (models.User, error)
}

// AuthService verifies credentials and manages opaque tokens.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (models.User, error)
	IssueToken(ctx context.Context, user models.User) (models.AuthToken, error)
	// Login authenticates req and issues (or reuses) the user's token.
	Login(ctx context.Context, req models.TokenRequest) (models.AuthToken, error)
	ResolveToken(ctx context.Context, key string) (models.User, error)
}

// RecipeService scopes every operation to ownerID. A recipe owned by someone
// else is reported exactly like a missing one.
type RecipeService interface {
	ListRecipes(ctx context.Context, ownerID int64) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, ownerID int64, req models.RecipeRequest) (models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID, ownerID int64) (models.Recipe, error)
	// UpdateRecipe applies req. A full update (partial == false) requires
	// every mutable field.
	UpdateRecipe(ctx context.Context, recipeID, ownerID int64, req models.RecipeRequest, partial bool) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID, ownerID int64) error
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

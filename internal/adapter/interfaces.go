// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the recipe API on behalf of the terminal client.
//
// [ServerAdapter] hides the transport. The only implementation is REST over
// HTTP built on resty; every non-2xx response is turned into an [*APIError]
// that wraps one of the sentinel errors in this package.
package adapter

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client-side view of the recipe API.
type ServerAdapter interface {
	// SetToken stores the token sent with authenticated requests.
	SetToken(token string)
	// Token returns the stored token or "".
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) (models.ProfileResponse, error)
	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, req models.TokenRequest) (string, error)
	// Me returns the caller's profile.
	Me(ctx context.Context) (models.ProfileResponse, error)
	// UpdateMe changes the caller's name and/or password.
	UpdateMe(ctx context.Context, update models.ProfileUpdate) (models.ProfileResponse, error)

	ListRecipes(ctx context.Context) ([]models.RecipeSummary, error)
	GetRecipe(ctx context.Context, id int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, req models.RecipeRequest) (models.Recipe, error)
	// UpdateRecipe sends PATCH when partial is set and PUT otherwise.
	UpdateRecipe(ctx context.Context, id int64, req models.RecipeRequest, partial bool) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, id int64) error

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}

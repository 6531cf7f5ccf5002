// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import "github.com/MKhiriev/recipe-keeper/models"

type ListRecipesRequest struct{}

type ListRecipesResponse struct {
	Recipes []models.RecipeSummary `json:"recipes"`
}

// RecipeID addresses one recipe of the caller.
type RecipeID struct {
	ID int64 `json:"id"`
}

type CreateRecipeRequest struct {
	Recipe models.RecipeRequest `json:"recipe"`
}

// UpdateRecipeRequest replaces the recipe unless Partial is set, in which
// case only the present fields are written.
type UpdateRecipeRequest struct {
	ID      int64                `json:"id"`
	Recipe  models.RecipeRequest `json:"recipe"`
	Partial bool                 `json:"partial"`
}

type RecipeResponse struct {
	Recipe models.Recipe `json:"recipe"`
}

type Empty struct{}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/models"
)

type recipeService struct {
	recipeRepository store.RecipeRepository

	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		logger:           logger,
	}
}

func (r *recipeService) ListRecipes(ctx context.Context, ownerID int64) ([]models.Recipe, error) {
	recipes, err := r.recipeRepository.ListRecipes(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}
	return recipes, nil
}

// CreateRecipe stores req for ownerID. Link and description default to "".
func (r *recipeService) CreateRecipe(ctx context.Context, ownerID int64, req models.RecipeRequest) (models.Recipe, error) {
	recipe, err := r.recipeRepository.CreateRecipe(ctx, req.ToRecipe(ownerID))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*recipeService.CreateRecipe").
			Int64("owner", ownerID).
			Msg("error creating recipe")
		return models.Recipe{}, fmt.Errorf("error creating recipe: %w", err)
	}

	return recipe, nil
}

func (r *recipeService) GetRecipe(ctx context.Context, recipeID, ownerID int64) (models.Recipe, error) {
	recipe, err := r.recipeRepository.GetRecipe(ctx, recipeID, ownerID)
	if err != nil {
		return models.Recipe{}, mapRecipeErr(err)
	}
	return recipe, nil
}

// UpdateRecipe applies the present fields of req. The full-versus-partial
// rule is enforced by the validation layer; here both behave the same.
func (r *recipeService) UpdateRecipe(ctx context.Context, recipeID, ownerID int64, req models.RecipeRequest, _ bool) (models.Recipe, error) {
	recipe, err := r.recipeRepository.UpdateRecipe(ctx, recipeID, ownerID, req)
	if err != nil {
		return models.Recipe{}, mapRecipeErr(err)
	}
	return recipe, nil
}

func (r *recipeService) DeleteRecipe(ctx context.Context, recipeID, ownerID int64) error {
	if err := r.recipeRepository.DeleteRecipe(ctx, recipeID, ownerID); err != nil {
		return mapRecipeErr(err)
	}

	logger.FromContext(ctx).Info().Int64("id", recipeID).Int64("owner", ownerID).Msg("recipe deleted")
	return nil
}

func mapRecipeErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrRecipeNotFound
	}
	return err
}

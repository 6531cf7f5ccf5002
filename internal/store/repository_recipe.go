// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

// recipeRepository implements [RecipeRepository] on the "recipes" table.
// Reads and writes by id always carry the owner in the WHERE clause.
type recipeRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewRecipeRepository constructs a [RecipeRepository] over db.
func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *recipeRepository) ListRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecipesQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Int64("user_id", userID).Msg("failed to query recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("failed to scan recipe")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe models.Recipe) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateRecipeQuery(r.db.builder, recipe, r.now())
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanRecipe(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Int64("user_id", recipe.UserID).Msg("failed to insert recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*recipeRepository.CreateRecipe").Int64("recipe_id", created.ID).Msg("recipe created")
	return created, nil
}

func (r *recipeRepository) GetRecipe(ctx context.Context, recipeID, userID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecipeQuery(r.db.builder, recipeID, userID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Recipe{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Int64("recipe_id", recipeID).Msg("failed to query recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return recipe, nil
}

// UpdateRecipe writes the present fields of changes. With nothing to write
// it behaves like GetRecipe, including the NotFound rule.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipeID, userID int64, changes models.RecipeRequest) (models.Recipe, error) {
	if changes.IsEmpty() {
		return r.GetRecipe(ctx, recipeID, userID)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecipeQuery(r.db.builder, recipeID, userID, changes, r.now())
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Recipe
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		updated, scanErr = scanRecipe(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Recipe{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Int64("recipe_id", recipeID).Msg("failed to update recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecipeQuery(r.db.builder, recipeID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Int64("recipe_id", recipeID).Msg("failed to delete recipe")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

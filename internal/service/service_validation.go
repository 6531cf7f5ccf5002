// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
)

// UserValidationService validates account payloads before delegating to the
// wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, in models.UserCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}
	return v.inner.CreateUser(ctx, in)
}

func (v *UserValidationService) CreateSuperuser(ctx context.Context, in models.UserCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.User{}, fmt.Errorf("error during superuser validation before saving: %w", err)
	}
	return v.inner.CreateSuperuser(ctx, in)
}

func (v *UserValidationService) CheckPassword(user models.User, password string) bool {
	return v.inner.CheckPassword(user, password)
}

func (v *UserValidationService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUser(ctx, userID)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, user models.User, upd models.ProfileUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, upd); err != nil {
		return models.User{}, fmt.Errorf("error during profile validation before update: %w", err)
	}
	return v.inner.UpdateProfile(ctx, user, upd)
}

func (v *UserValidationService) AdminCreateUser(ctx context.Context, actor models.User, in models.UserCreate) (models.User, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}
	return v.inner.AdminCreateUser(ctx, actor, in)
}

func (v *UserValidationService) AdminUpdateUser(ctx context.Context, actor models.User, userID int64, upd models.AdminUserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, upd); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before update: %w", err)
	}
	return v.inner.AdminUpdateUser(ctx, actor, userID, upd)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// AuthValidationService validates login payloads.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return v.inner.Authenticate(ctx, email, password)
}

func (v *AuthValidationService) IssueToken(ctx context.Context, user models.User) (models.AuthToken, error) {
	return v.inner.IssueToken(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.TokenRequest) (models.AuthToken, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.AuthToken{}, fmt.Errorf("error during login validation: %w", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) ResolveToken(ctx context.Context, key string) (models.User, error) {
	return v.inner.ResolveToken(ctx, key)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// RecipeValidationService validates recipe payloads. Creation requires
// title, time_minutes and price; a full update requires every mutable
// field; a partial update only checks what was sent.
type RecipeValidationService struct {
	inner     RecipeService
	validator validators.Validator
}

func NewRecipeValidationService() RecipeServiceWrapper {
	return &RecipeValidationService{
		validator: validators.NewRecipeValidator(),
	}
}

func (v *RecipeValidationService) ListRecipes(ctx context.Context, ownerID int64) ([]models.Recipe, error) {
	return v.inner.ListRecipes(ctx, ownerID)
}

func (v *RecipeValidationService) CreateRecipe(ctx context.Context, ownerID int64, req models.RecipeRequest) (models.Recipe, error) {
	if err := v.validator.Validate(ctx, req, validators.CreateRecipeFields...); err != nil {
		return models.Recipe{}, fmt.Errorf("error during recipe validation before saving: %w", err)
	}
	return v.inner.CreateRecipe(ctx, ownerID, req)
}

func (v *RecipeValidationService) GetRecipe(ctx context.Context, recipeID, ownerID int64) (models.Recipe, error) {
	return v.inner.GetRecipe(ctx, recipeID, ownerID)
}

func (v *RecipeValidationService) UpdateRecipe(ctx context.Context, recipeID, ownerID int64, req models.RecipeRequest, partial bool) (models.Recipe, error) {
	var required []string
	if !partial {
		required = validators.FullUpdateRecipeFields
	}
	if err := v.validator.Validate(ctx, req, required...); err != nil {
		return models.Recipe{}, fmt.Errorf("error during recipe validation before update: %w", err)
	}
	return v.inner.UpdateRecipe(ctx, recipeID, ownerID, req, partial)
}

func (v *RecipeValidationService) DeleteRecipe(ctx context.Context, recipeID, ownerID int64) error {
	return v.inner.DeleteRecipe(ctx, recipeID, ownerID)
}

func (v *RecipeValidationService) Wrap(wrapped RecipeService) RecipeService {
	v.inner = wrapped
	return v
}

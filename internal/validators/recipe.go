// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/recipe-keeper/models"
)

// Field names of recipe payloads. Passing them to Validate marks them as
// required.
const (
	FieldTitle       = "title"
	FieldTimeMinutes = "time_minutes"
	FieldPrice       = "price"
	FieldLink        = "link"
	FieldDescription = "description"
)

// CreateRecipeFields must be present when a recipe is created.
var CreateRecipeFields = []string{FieldTitle, FieldTimeMinutes, FieldPrice}

// FullUpdateRecipeFields must be present in a full (PUT) update.
var FullUpdateRecipeFields = []string{FieldTitle, FieldTimeMinutes, FieldPrice, FieldLink, FieldDescription}

// RecipeValidator validates models.RecipeRequest. Every present field is
// checked; the field names passed to Validate must also be present.
type RecipeValidator struct{}

// NewRecipeValidator returns a Validator for recipe payloads.
func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, required ...string) error {
	switch o := obj.(type) {
	case models.RecipeRequest:
		return v.validateRecipeRequest(o, required...)
	case *models.RecipeRequest:
		return v.validateRecipeRequest(*o, required...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RecipeValidator) validateRecipeRequest(req models.RecipeRequest, required ...string) error {
	ve := &ValidationError{}

	for _, field := range required {
		present, err := recipeFieldPresent(req, field)
		if err != nil {
			return err
		}
		if !present {
			ve.Add(field, MsgRequired)
		}
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			ve.Add(FieldTitle, MsgBlank)
		}
		checkVar(ve, FieldTitle, *req.Title, "max=255")
	}
	if req.TimeMinutes != nil && *req.TimeMinutes < 0 {
		ve.Add(FieldTimeMinutes, MsgTimeNegative)
	}
	if req.Price != nil {
		switch {
		case *req.Price < 0:
			ve.Add(FieldPrice, MsgPriceNegative)
		case *req.Price > models.MaxPrice:
			ve.Add(FieldPrice, MsgPriceTooLarge)
		}
	}
	if req.Link != nil && *req.Link != "" {
		checkVar(ve, FieldLink, *req.Link, "max=255,url")
	}

	return ve.OrNil()
}

func recipeFieldPresent(req models.RecipeRequest, field string) (bool, error) {
	switch field {
	case FieldTitle:
		return req.Title != nil, nil
	case FieldTimeMinutes:
		return req.TimeMinutes != nil, nil
	case FieldPrice:
		return req.Price != nil, nil
	case FieldLink:
		return req.Link != nil, nil
	case FieldDescription:
		return req.Description != nil, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
}

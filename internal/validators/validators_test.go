// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	require.Error(t, err)
	ve, ok := AsValidationError(err)
	require.True(t, ok, "expected *ValidationError, got %T: %v", err, err)
	assert.True(t, errors.Is(err, ErrValidation))
	return ve.Fields
}

func TestUserValidator_UserCreate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name   string
		in     models.UserCreate
		fields map[string]string
	}{
		{
			name: "valid",
			in:   models.UserCreate{Email: "test@example.com", Password: "testpass123", Name: "Test"},
		},
		{
			name: "valid without name",
			in:   models.UserCreate{Email: "test@example.com", Password: "testpass123"},
		},
		{
			name:   "missing email",
			in:     models.UserCreate{Password: "testpass123"},
			fields: map[string]string{FieldEmail: MsgRequired},
		},
		{
			name:   "invalid email",
			in:     models.UserCreate{Email: "not-an-email", Password: "testpass123"},
			fields: map[string]string{FieldEmail: MsgInvalidEmail},
		},
		{
			name:   "short password",
			in:     models.UserCreate{Email: "test@example.com", Password: "pw"},
			fields: map[string]string{FieldPassword: "Ensure this field has at least 8 characters."},
		},
		{
			name:   "password over bcrypt limit",
			in:     models.UserCreate{Email: "test@example.com", Password: strings.Repeat("p", 73)},
			fields: map[string]string{FieldPassword: "Ensure this field has no more than 72 characters."},
		},
		{
			name: "everything wrong",
			in:   models.UserCreate{Name: strings.Repeat("n", 256)},
			fields: map[string]string{
				FieldEmail:    MsgRequired,
				FieldPassword: MsgRequired,
				FieldName:     "Ensure this field has no more than 255 characters.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.in)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.fields, fieldsOf(t, err))
		})
	}
}

func TestUserValidator_TokenRequest(t *testing.T) {
	v := NewUserValidator()

	require.NoError(t, v.Validate(context.Background(), &models.TokenRequest{Email: "a@b.io", Password: "x"}))

	fields := fieldsOf(t, v.Validate(context.Background(), models.TokenRequest{Email: "a@b.io"}))
	assert.Equal(t, map[string]string{FieldPassword: MsgRequired}, fields)
}

func TestUserValidator_ProfileUpdate(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.ProfileUpdate{}))
	require.NoError(t, v.Validate(ctx, models.ProfileUpdate{Name: ptr("New Name"), Password: ptr("newpassword123")}))
	require.NoError(t, v.Validate(ctx, models.ProfileUpdate{Name: ptr("")}))

	fields := fieldsOf(t, v.Validate(ctx, models.ProfileUpdate{Password: ptr("")}))
	assert.Equal(t, MsgBlank, fields[FieldPassword])

	fields = fieldsOf(t, v.Validate(ctx, &models.ProfileUpdate{Password: ptr("short")}))
	assert.Equal(t, "Ensure this field has at least 8 characters.", fields[FieldPassword])
}

func TestUserValidator_AdminUserUpdate(t *testing.T) {
	v := NewUserValidator()

	require.NoError(t, v.Validate(context.Background(), models.AdminUserUpdate{IsActive: ptr(false)}))

	fields := fieldsOf(t, v.Validate(context.Background(), models.AdminUserUpdate{Name: ptr(strings.Repeat("x", 300))}))
	assert.Contains(t, fields, FieldName)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	err := NewUserValidator().Validate(context.Background(), 42)
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestRecipeValidator(t *testing.T) {
	v := NewRecipeValidator()
	ctx := context.Background()
	price := models.Price(550)

	full := models.RecipeRequest{
		Title:       ptr("Sample recipe"),
		TimeMinutes: ptr(22),
		Price:       &price,
		Link:        ptr("https://example.com/recipe.pdf"),
		Description: ptr("Sample description"),
	}

	tests := []struct {
		name     string
		in       models.RecipeRequest
		required []string
		fields   map[string]string
	}{
		{name: "create with required fields", in: models.RecipeRequest{Title: full.Title, TimeMinutes: full.TimeMinutes, Price: &price}, required: CreateRecipeFields},
		{name: "full update", in: full, required: FullUpdateRecipeFields},
		{name: "partial with one field", in: models.RecipeRequest{Title: ptr("New title")}},
		{name: "empty partial", in: models.RecipeRequest{}},
		{name: "empty link is allowed", in: models.RecipeRequest{Link: ptr("")}},
		{name: "zero time and price", in: models.RecipeRequest{TimeMinutes: ptr(0), Price: ptr(models.Price(0))}},
		{
			name:     "create missing price",
			in:       models.RecipeRequest{Title: full.Title, TimeMinutes: full.TimeMinutes},
			required: CreateRecipeFields,
			fields:   map[string]string{FieldPrice: MsgRequired},
		},
		{
			name:     "full update missing description and link",
			in:       models.RecipeRequest{Title: full.Title, TimeMinutes: full.TimeMinutes, Price: &price},
			required: FullUpdateRecipeFields,
			fields:   map[string]string{FieldLink: MsgRequired, FieldDescription: MsgRequired},
		},
		{
			name:   "blank title",
			in:     models.RecipeRequest{Title: ptr("   ")},
			fields: map[string]string{FieldTitle: MsgBlank},
		},
		{
			name:   "long title",
			in:     models.RecipeRequest{Title: ptr(strings.Repeat("t", 256))},
			fields: map[string]string{FieldTitle: "Ensure this field has no more than 255 characters."},
		},
		{
			name:   "negative time",
			in:     models.RecipeRequest{TimeMinutes: ptr(-1)},
			fields: map[string]string{FieldTimeMinutes: MsgTimeNegative},
		},
		{
			name:   "negative price",
			in:     models.RecipeRequest{Price: ptr(models.Price(-1))},
			fields: map[string]string{FieldPrice: MsgPriceNegative},
		},
		{
			name:   "price too large",
			in:     models.RecipeRequest{Price: ptr(models.MaxPrice + 1)},
			fields: map[string]string{FieldPrice: MsgPriceTooLarge},
		},
		{
			name:   "relative link",
			in:     models.RecipeRequest{Link: ptr("recipe.pdf")},
			fields: map[string]string{FieldLink: MsgInvalidURL},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.in, tt.required...)
			if tt.fields == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.fields, fieldsOf(t, err))
		})
	}
}

func TestRecipeValidator_UnknownField(t *testing.T) {
	err := NewRecipeValidator().Validate(context.Background(), &models.RecipeRequest{}, "owner")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestValidationError(t *testing.T) {
	ve := NewValidationError(FieldEmail, MsgEmailTaken)
	ve.Add(FieldEmail, "ignored")
	ve.Add(FieldName, MsgInvalid)

	assert.Equal(t, MsgEmailTaken, ve.Fields[FieldEmail])
	assert.Equal(t, "validation failed: email: user with this email already exists.; name: Invalid value.", ve.Error())

	var empty *ValidationError
	assert.NoError(t, empty.OrNil())
	assert.True(t, (&ValidationError{}).Empty())
}

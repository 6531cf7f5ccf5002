// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/mock"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecipeValidationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockRecipeService(ctrl)
	svc := NewRecipeValidationService().Wrap(inner)
	price := models.Price(500)

	valid := models.RecipeRequest{Title: ptr("Soup"), TimeMinutes: ptr(5), Price: &price}
	inner.EXPECT().CreateRecipe(gomock.Any(), int64(1), valid).Return(models.Recipe{ID: 1}, nil)

	_, err := svc.CreateRecipe(context.Background(), 1, valid)
	require.NoError(t, err)

	// inner is not called for an invalid payload
	_, err = svc.CreateRecipe(context.Background(), 1, models.RecipeRequest{Title: ptr("Soup")})
	assertFieldError(t, err, validators.FieldPrice, validators.MsgRequired)
}

func TestRecipeValidationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockRecipeService(ctrl)
	svc := NewRecipeValidationService().Wrap(inner)

	partial := models.RecipeRequest{Title: ptr("New title")}
	inner.EXPECT().UpdateRecipe(gomock.Any(), int64(3), int64(1), partial, true).Return(models.Recipe{ID: 3}, nil)

	_, err := svc.UpdateRecipe(context.Background(), 3, 1, partial, true)
	require.NoError(t, err)

	_, err = svc.UpdateRecipe(context.Background(), 3, 1, partial, false)
	require.ErrorIs(t, err, validators.ErrValidation)
	ve, ok := validators.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Fields, 4)
	assert.NotContains(t, ve.Fields, validators.FieldTitle)
}

func TestUserValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockUserService(ctrl)
	svc := NewUserValidationService().Wrap(inner)

	_, err := svc.CreateUser(context.Background(), models.UserCreate{Email: "test@example.com", Password: "pw"})
	assertFieldError(t, err, validators.FieldPassword, "Ensure this field has at least 8 characters.")

	_, err = svc.UpdateProfile(context.Background(), models.User{UserID: 1}, models.ProfileUpdate{Password: ptr("")})
	assertFieldError(t, err, validators.FieldPassword, validators.MsgBlank)

	in := models.UserCreate{Email: "test@example.com", Password: "testpass123"}
	inner.EXPECT().CreateUser(gomock.Any(), in).Return(models.User{UserID: 1}, nil)
	user, err := svc.CreateUser(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)

	inner.EXPECT().ListUsers(gomock.Any()).Return(nil, nil)
	_, err = svc.ListUsers(context.Background())
	require.NoError(t, err)
}

func TestAuthValidationService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService().Wrap(inner)

	token, err := svc.Login(context.Background(), models.TokenRequest{Email: "test@example.com", Password: ""})
	assertFieldError(t, err, validators.FieldPassword, validators.MsgRequired)
	assert.Empty(t, token.Key)

	req := models.TokenRequest{Email: "test@example.com", Password: "testpass123"}
	inner.EXPECT().Login(gomock.Any(), req).Return(models.AuthToken{Key: "abc"}, nil)
	token, err = svc.Login(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "abc", token.Key)
}

func TestAppInfoService(t *testing.T) {
	assert.Equal(t, "v1.2.3", NewAppInfoService(config.App{Version: "v1.2.3"}).GetAppVersion(context.Background()))
	assert.Equal(t, "N/A", NewAppInfoService(config.App{Version: ""}).GetAppVersion(context.Background()))
}

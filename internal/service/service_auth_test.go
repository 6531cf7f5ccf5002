// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/mock"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository, *mock.MockTokenRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tokens := mock.NewMockTokenRepository(ctrl)

	svc := NewAuthService(users, tokens, config.App{TokenBytes: 20}, logger.Nop()).(*authService)
	svc.now = func() time.Time { return fixedNow }
	return svc, users, tokens
}

func hashedUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return models.User{UserID: 5, Email: "test@example.com", PasswordHash: hash, IsActive: true}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc, users, _ := newAuthSvc(t)
	user := hashedUser(t, "testpass123")

	users.EXPECT().FindUserByEmail(gomock.Any(), "test@example.com").Return(user, nil)
	users.EXPECT().UpdateUser(gomock.Any(), int64(5), models.UserChanges{LastLogin: &fixedNow}).
		DoAndReturn(func(_ context.Context, _ int64, c models.UserChanges) (models.User, error) {
			user.LastLogin = c.LastLogin
			return user, nil
		})

	got, err := svc.Authenticate(context.Background(), "test@EXAMPLE.COM", "testpass123")
	require.NoError(t, err)
	require.NotNil(t, got.LastLogin)
	assert.Equal(t, fixedNow, *got.LastLogin)
}

func TestAuthService_Authenticate_Rejected(t *testing.T) {
	inactive := hashedUser(t, "testpass123")
	inactive.IsActive = false

	tests := []struct {
		name     string
		found    models.User
		findErr  error
		password string
	}{
		{name: "unknown email", findErr: store.ErrNotFound, password: "testpass123"},
		{name: "wrong password", found: hashedUser(t, "testpass123"), password: "badpass"},
		{name: "inactive user", found: inactive, password: "testpass123"},
		{name: "blank password", found: hashedUser(t, "testpass123"), password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newAuthSvc(t)
			users.EXPECT().FindUserByEmail(gomock.Any(), "test@example.com").Return(tt.found, tt.findErr)

			_, err := svc.Authenticate(context.Background(), "test@example.com", tt.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Authenticate_StoreError(t *testing.T) {
	svc, users, _ := newAuthSvc(t)
	dbErr := errors.New("db down")
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Authenticate(context.Background(), "test@example.com", "testpass123")
	require.ErrorIs(t, err, dbErr)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthService_IssueToken(t *testing.T) {
	svc, _, tokens := newAuthSvc(t)
	user := models.User{UserID: 5}

	tokens.EXPECT().GetOrCreateToken(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(
		func(_ context.Context, userID int64, key string) (models.AuthToken, error) {
			assert.Len(t, key, 40)
			return models.AuthToken{Key: key, UserID: userID}, nil
		},
	)

	token, err := svc.IssueToken(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(5), token.UserID)
	assert.Len(t, token.Key, 40)
}

func TestAuthService_IssueToken_ReusesExisting(t *testing.T) {
	svc, _, tokens := newAuthSvc(t)
	existing := models.AuthToken{Key: "existing-key", UserID: 5}

	tokens.EXPECT().GetOrCreateToken(gomock.Any(), int64(5), gomock.Any()).Return(existing, nil).Times(2)

	first, err := svc.IssueToken(context.Background(), models.User{UserID: 5})
	require.NoError(t, err)
	second, err := svc.IssueToken(context.Background(), models.User{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, first.Key, second.Key)
}

func TestAuthService_IssueToken_KeyError(t *testing.T) {
	svc, _, _ := newAuthSvc(t)
	svc.newKey = func(int) (string, error) { return "", errors.New("entropy exhausted") }

	_, err := svc.IssueToken(context.Background(), models.User{UserID: 5})
	require.ErrorIs(t, err, ErrGeneratingToken)
}

func TestAuthService_Login(t *testing.T) {
	svc, users, tokens := newAuthSvc(t)
	user := hashedUser(t, "testpass123")

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(gomock.Any(), "test@example.com").Return(user, nil),
		users.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).Return(user, nil),
		tokens.EXPECT().GetOrCreateToken(gomock.Any(), int64(5), gomock.Any()).
			Return(models.AuthToken{Key: "abc", UserID: 5}, nil),
	)

	token, err := svc.Login(context.Background(), models.TokenRequest{Email: "test@example.com", Password: "testpass123"})
	require.NoError(t, err)
	assert.Equal(t, "abc", token.Key)
}

func TestAuthService_Login_BadCredentialsIssuesNoToken(t *testing.T) {
	svc, users, _ := newAuthSvc(t)
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(hashedUser(t, "goodpass"), nil)

	token, err := svc.Login(context.Background(), models.TokenRequest{Email: "test@example.com", Password: "badpass"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token.Key)
}

func TestAuthService_ResolveToken(t *testing.T) {
	active := models.User{UserID: 5, IsActive: true}
	inactive := models.User{UserID: 6}

	t.Run("active user", func(t *testing.T) {
		svc, _, tokens := newAuthSvc(t)
		tokens.EXPECT().FindUserByToken(gomock.Any(), "abc").Return(active, nil)

		user, err := svc.ResolveToken(context.Background(), " abc ")
		require.NoError(t, err)
		assert.Equal(t, int64(5), user.UserID)
	})

	t.Run("unknown key", func(t *testing.T) {
		svc, _, tokens := newAuthSvc(t)
		tokens.EXPECT().FindUserByToken(gomock.Any(), "nope").Return(models.User{}, store.ErrNotFound)

		_, err := svc.ResolveToken(context.Background(), "nope")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("inactive user", func(t *testing.T) {
		svc, _, tokens := newAuthSvc(t)
		tokens.EXPECT().FindUserByToken(gomock.Any(), "abc").Return(inactive, nil)

		_, err := svc.ResolveToken(context.Background(), "abc")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("empty key", func(t *testing.T) {
		svc, _, _ := newAuthSvc(t)

		_, err := svc.ResolveToken(context.Background(), "  ")
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}

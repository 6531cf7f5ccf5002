// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/store"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// dummyHash is compared against when the email is unknown, so a miss costs
// about as much as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("recipe-keeper-timing-pad")
	return hash
})

// authService is the concrete implementation of AuthService.
// Credentials are checked against bcrypt digests held by the UserRepository;
// tokens are random hex keys held by the TokenRepository.
type authService struct {
	userRepository  store.UserRepository
	tokenRepository store.TokenRepository

	// tokenBytes is the number of random bytes in a new token key.
	tokenBytes int

	// newKey and now are swapped in tests.
	newKey func(nBytes int) (string, error)
	now    func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	tokenBytes := cfg.TokenBytes
	if tokenBytes <= 0 {
		tokenBytes = config.DefaultTokenBytes
	}

	return &authService{
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		tokenBytes:      tokenBytes,
		newKey:          utils.NewTokenKey,
		now:             time.Now,
		logger:          logger,
	}
}

// Authenticate looks the user up by normalized email and checks the
// password. Unknown email, inactive account and wrong password all return
// ErrInvalidCredentials. On success last_login is updated.
func (a *authService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.CheckPassword(dummyHash(), password)
			log.Info().Str("func", "*authService.Authenticate").Msg("authentication failed")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Authenticate").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) || !user.IsActive {
		log.Info().
			Str("func", "*authService.Authenticate").
			Int64("id", user.UserID).
			Msg("authentication failed")
		return models.User{}, ErrInvalidCredentials
	}

	now := a.now().UTC()
	updated, err := a.userRepository.UpdateUser(ctx, user.UserID, models.UserChanges{LastLogin: &now})
	if err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Int64("id", user.UserID).Msg("error updating last login")
		return models.User{}, fmt.Errorf("error updating last login: %w", err)
	}

	return updated, nil
}

// IssueToken returns the user's token, creating it on first use. Repeated
// and concurrent calls return the same key.
func (a *authService) IssueToken(ctx context.Context, user models.User) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	key, err := a.newKey(a.tokenBytes)
	if err != nil {
		log.Err(err).Str("func", "*authService.IssueToken").Msg("error generating token key")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrGeneratingToken, err)
	}

	token, err := a.tokenRepository.GetOrCreateToken(ctx, user.UserID, key)
	if err != nil {
		log.Err(err).Str("func", "*authService.IssueToken").Int64("id", user.UserID).Msg("error issuing token")
		return models.AuthToken{}, fmt.Errorf("error issuing token: %w", err)
	}

	return token, nil
}

func (a *authService) Login(ctx context.Context, req models.TokenRequest) (models.AuthToken, error) {
	user, err := a.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return models.AuthToken{}, err
	}

	return a.IssueToken(ctx, user)
}

// ResolveToken returns the active user owning key. Unknown keys and inactive
// users give ErrTokenInvalid.
func (a *authService) ResolveToken(ctx context.Context, key string) (models.User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return models.User{}, ErrTokenInvalid
	}

	user, err := a.tokenRepository.FindUserByToken(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrTokenInvalid
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ResolveToken").Msg("token lookup failed")
		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	if !user.IsActive {
		return models.User{}, ErrTokenInvalid
	}

	return user, nil
}

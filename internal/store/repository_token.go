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

type tokenRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewTokenRepository constructs a [TokenRepository] over db.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// GetOrCreateToken inserts newKey with ON CONFLICT DO NOTHING and then reads
// the user's row back, so concurrent logins all see the first key written.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, userID int64, newKey string) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	insertQuery, insertArgs, err := buildInsertTokenQuery(r.db.builder, userID, newKey, r.now())
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	selectQuery, selectArgs, err := buildSelectTokenQuery(r.db.builder, userID)
	if err != nil {
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token models.AuthToken
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		if _, err := r.db.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return err
		}
		var scanErr error
		token, scanErr = scanToken(r.db.QueryRowContext(ctx, selectQuery, selectArgs...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Error().Str("func", "*tokenRepository.GetOrCreateToken").Int64("user_id", userID).Msg("token row missing after insert")
		return models.AuthToken{}, ErrTokenNotSaved
	case err != nil:
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Int64("user_id", userID).Msg("failed to get or create token")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

// FindUserByToken joins the token to its user.
func (r *tokenRepository) FindUserByToken(ctx context.Context, key string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByTokenQuery(r.db.builder, key)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*tokenRepository.FindUserByToken").Msg("failed to resolve token")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

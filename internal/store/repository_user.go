// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/models"
)

// userRepository implements [UserRepository] on the "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] over db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the stored row.
//
// A unique violation on email becomes [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("email already registered")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created, err := scanUser(row)
	if err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning created user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// FindUserByEmail looks up an exact (already normalized) email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

// FindUserByID looks up a user by primary key.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"id": userID})
}

func (r *userRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns all users ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to query users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to scan user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUser applies changes and returns the updated row. An empty change
// set is a plain lookup.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, changes models.UserChanges) (models.User, error) {
	if changes.IsEmpty() {
		return r.FindUserByID(ctx, userID)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.db.builder, userID, changes)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		updated, scanErr = scanUser(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("failed to update user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

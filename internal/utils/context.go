// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	UserIDCtxKey = contextKey("userID")
	UserCtxKey   = contextKey("user")
)

// WithUser stores the authenticated user and its id in ctx.
func WithUser(ctx context.Context, user models.User) context.Context {
	ctx = context.WithValue(ctx, UserCtxKey, user)
	return context.WithValue(ctx, UserIDCtxKey, user.UserID)
}

func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserFromContext returns the user stored by WithUser.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"errors"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	errNotAuthenticated = status.Error(codes.Unauthenticated, "authentication credentials were not provided")
	errInvalidToken     = status.Error(codes.Unauthenticated, "invalid token")
)

// toStatus maps a service error onto a gRPC status. Unknown errors are
// logged and reported as Internal without details.
func toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, validators.ErrValidation):
		if ve, ok := validators.AsValidationError(err); ok {
			return status.Error(codes.InvalidArgument, ve.Error())
		}
		return status.Error(codes.InvalidArgument, "invalid input")
	case errors.Is(err, service.ErrRecipeNotFound), errors.Is(err, service.ErrUserNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, service.ErrTokenInvalid):
		return errInvalidToken
	default:
		logger.FromContext(ctx).Err(err).Msg("unexpected error")
		return status.Error(codes.Internal, "a server error occurred")
	}
}

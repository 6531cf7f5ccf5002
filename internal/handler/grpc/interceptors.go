// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
)

// loggingInterceptor attaches a trace-scoped logger to the context and logs
// every call with its status code.
func (h *Handler) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstValue(ctx, traceIDKey)
	if !utils.IsValidTraceID(traceID) {
		traceID = h.traceIDs.Generate()
	}
	l := h.logger.WithTraceID(traceID)
	ctx = l.WithContext(ctx)
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// authInterceptor resolves the "authorization" metadata ("Token <key>" or
// "Bearer <key>") to a user and stores it in the context.
func (h *Handler) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	key, ok := tokenFromMetadata(ctx)
	if !ok {
		return nil, errNotAuthenticated
	}

	user, err := h.services.AuthService.ResolveToken(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Info().Err(err).Str("func", "*Handler.authInterceptor").Msg("token rejected")
		return nil, toStatus(ctx, err)
	}

	log := logger.FromContext(ctx)
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Int64("user_id", user.UserID)
	})

	return handler(utils.WithUser(log.WithContext(ctx), user), req)
}

func tokenFromMetadata(ctx context.Context) (string, bool) {
	parts := strings.Fields(firstValue(ctx, authorizationKey))
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], utils.AuthScheme) && !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func firstValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

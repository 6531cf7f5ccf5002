// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/service"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
	"google.golang.org/grpc"
)

// Handler serves recipes.v1.RecipeService. Every method runs behind
// authInterceptor, so the caller is always in the context.
type Handler struct {
	services *service.Services
	traceIDs *utils.TraceIDGenerator
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
}

// NewServer builds a grpc.Server with the JSON codec and the handler's
// interceptors, and registers the recipe service on it.
func (h *Handler) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ForceServerCodec(Codec{}),
		grpc.ChainUnaryInterceptor(h.loggingInterceptor, h.authInterceptor),
	}, opts...)

	server := grpc.NewServer(opts...)
	RegisterRecipeServiceServer(server, h)
	return server
}

func (h *Handler) ListRecipes(ctx context.Context, _ *ListRecipesRequest) (*ListRecipesResponse, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	recipes, err := h.services.RecipeService.ListRecipes(ctx, ownerID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &ListRecipesResponse{Recipes: models.Summaries(recipes)}, nil
}

func (h *Handler) GetRecipe(ctx context.Context, in *RecipeID) (*RecipeResponse, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	recipe, err := h.services.RecipeService.GetRecipe(ctx, in.ID, ownerID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &RecipeResponse{Recipe: recipe}, nil
}

func (h *Handler) CreateRecipe(ctx context.Context, in *CreateRecipeRequest) (*RecipeResponse, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	recipe, err := h.services.RecipeService.CreateRecipe(ctx, ownerID, in.Recipe)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	logger.FromContext(ctx).Info().Int64("id", recipe.ID).Msg("recipe created")
	return &RecipeResponse{Recipe: recipe}, nil
}

func (h *Handler) UpdateRecipe(ctx context.Context, in *UpdateRecipeRequest) (*RecipeResponse, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	recipe, err := h.services.RecipeService.UpdateRecipe(ctx, in.ID, ownerID, in.Recipe, in.Partial)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return &RecipeResponse{Recipe: recipe}, nil
}

func (h *Handler) DeleteRecipe(ctx context.Context, in *RecipeID) (*Empty, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.services.RecipeService.DeleteRecipe(ctx, in.ID, ownerID); err != nil {
		return nil, toStatus(ctx, err)
	}

	return &Empty{}, nil
}

func callerID(ctx context.Context) (int64, error) {
	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, errNotAuthenticated
	}
	return id, nil
}

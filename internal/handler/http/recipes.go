// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/internal/validators"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-chi/chi/v5"
)

// Every recipe handler runs behind auth; the owner is always the caller.

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	recipes, err := h.services.RecipeService.ListRecipes(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Summaries(recipes), http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	req, err := decodeRecipeRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecipe").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.CreateRecipe(r.Context(), ownerID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", recipe.ID).Msg("recipe created")
	utils.WriteJSON(w, recipe, http.StatusCreated)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	ownerID, recipeID, err := ownerAndRecipeID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), recipeID, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	h.saveRecipe(w, r, false)
}

func (h *Handler) partialUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	h.saveRecipe(w, r, true)
}

func (h *Handler) saveRecipe(w http.ResponseWriter, r *http.Request, partial bool) {
	log := logger.FromRequest(r)

	ownerID, recipeID, err := ownerAndRecipeID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req, err := decodeRecipeRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.saveRecipe").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.UpdateRecipe(r.Context(), recipeID, ownerID, req, partial)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ownerID, recipeID, err := ownerAndRecipeID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(r.Context(), recipeID, ownerID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeRecipeRequest reads a recipe payload. A price that does not parse is
// reported against the price field rather than as a malformed body.
func decodeRecipeRequest(r *http.Request) (models.RecipeRequest, error) {
	var req models.RecipeRequest
	err := utils.DecodeJSON(r, &req)
	switch {
	case err == nil:
		return req, nil
	case errors.Is(err, models.ErrPricePrecision):
		return req, validators.NewValidationError(validators.FieldPrice, validators.MsgPricePrecision)
	case errors.Is(err, models.ErrInvalidPrice):
		return req, validators.NewValidationError(validators.FieldPrice, validators.MsgPriceInvalid)
	default:
		return req, err
	}
}

func ownerAndRecipeID(r *http.Request) (int64, int64, error) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, ErrNotAuthenticated
	}

	recipeID, err := pathID(r)
	if err != nil {
		return 0, 0, err
	}

	return ownerID, recipeID, nil
}

// pathID parses the {id} URL parameter. Anything but a positive integer is
// reported as not found.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// createUser handles POST /users/. The response never contains the password.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), req.ToUserCreate())
	if err != nil {
		log.Info().Err(err).Str("func", "*Handler.createUser").Msg("user was not created")
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewProfileResponse(user), http.StatusCreated)
}

// createToken handles POST /users/token/. Bad credentials are a 400 and no
// token is returned.
func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.createToken").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		log.Info().Err(err).Str("func", "*Handler.createToken").Msg("token was not issued")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", token.UserID).Msg("token issued")
	utils.WriteJSON(w, models.TokenResponse{Token: token.Key}, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	utils.WriteJSON(w, models.NewProfileResponse(user), http.StatusOK)
}

// updateProfile handles PATCH /users/me/: name and password only.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	var upd models.ProfileUpdate
	if err := utils.DecodeJSON(r, &upd); err != nil {
		log.Err(err).Str("func", "*Handler.updateProfile").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	updated, err := h.services.UserService.UpdateProfile(r.Context(), user, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewProfileResponse(updated), http.StatusOK)
}

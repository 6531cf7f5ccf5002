// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/logger"
	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
)

// User administration. Routes are mounted behind auth and requireStaff.

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	response := make([]models.AdminUserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, models.NewAdminUserResponse(u))
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) adminGetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAdminUserResponse(user), http.StatusOK)
}

func (h *Handler) adminCreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	var req models.AdminUserCreate
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.adminCreateUser").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.AdminCreateUser(r.Context(), actor, req.ToUserCreate())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAdminUserResponse(user), http.StatusCreated)
}

func (h *Handler) adminUpdateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	actor, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNotAuthenticated)
		return
	}

	userID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var upd models.AdminUserUpdate
	if err = utils.DecodeJSON(r, &upd); err != nil {
		log.Err(err).Str("func", "*Handler.adminUpdateUser").Msg("invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.AdminUpdateUser(r.Context(), actor, userID, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAdminUserResponse(user), http.StatusOK)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/recipe-keeper/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, versionResponse{Version: h.services.AppInfoService.GetAppVersion(r.Context())}, http.StatusOK)
}

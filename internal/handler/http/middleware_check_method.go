// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/recipe-keeper/internal/utils"
	"github.com/MKhiriev/recipe-keeper/models"
	"github.com/go-chi/chi/v5"
)

// routedMethods are the methods probed when building an Allow header.
var routedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// CheckHTTPMethod returns the router's MethodNotAllowed handler. It probes
// router for every method registered on the requested path, answers 405
// with those methods in the Allow header, and falls back to 404 when none
// match.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethods(router, r.URL.Path)
		if len(allowed) == 0 {
			notFound(w, r)
			return
		}

		w.Header().Set("Allow", strings.Join(allowed, ", "))
		utils.WriteJSON(w, models.ErrorResponse{
			Detail: fmt.Sprintf("Method %q not allowed.", r.Method),
		}, http.StatusMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, method := range routedMethods {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)

	router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	router.Get("/version/", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users/", h.createUser)
		r.Post("/users/token/", h.createToken)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me/", h.getProfile)
		r.Patch("/users/me/", h.updateProfile)

		r.Get("/recipes/", h.listRecipes)
		r.Post("/recipes/", h.createRecipe)
		r.Get("/recipes/{id}/", h.getRecipe)
		r.Put("/recipes/{id}/", h.updateRecipe)
		r.Patch("/recipes/{id}/", h.partialUpdateRecipe)
		r.Delete("/recipes/{id}/", h.deleteRecipe)
	})

	// staff only; everyone else gets 404
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireStaff)

		r.Get("/admin/users/", h.adminListUsers)
		r.Post("/admin/users/", h.adminCreateUser)
		r.Get("/admin/users/{id}/", h.adminGetUser)
		r.Patch("/admin/users/{id}/", h.adminUpdateUser)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

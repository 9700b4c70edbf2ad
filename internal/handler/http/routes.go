// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(compressionLevel))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Get("/v1/version", h.getServerVersion)
		r.Get("/v1/health", h.health)
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

		r.Post("/v1/auth/login", h.login)

		r.Post("/v1/users/register", h.register)
		r.Get("/v1/users/", h.listUsers)
		r.Get("/v1/users/{id}", h.getUser)

		r.Get("/v1/items/", h.listItems)
		r.Get("/v1/items/{id}", h.getItem)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/v1/users/update", h.updateUser)
		r.Post("/v1/users/{id}/college-id", h.setCollegeID)

		r.Post("/v1/items/", h.createItem)
		r.Put("/v1/items/{id}", h.updateItem)
		r.Delete("/v1/items/{id}", h.deleteItem)

		r.Post("/v1/uploads/images", h.presignImageUpload)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

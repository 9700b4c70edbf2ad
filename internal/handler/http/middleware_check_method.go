// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler to register with
// [chi.Mux.MethodNotAllowed].
//
// chi answers 405 when a path matches but the method does not. Lendit
// answers 404 instead, with the usual JSON error body, so that unsupported
// methods do not reveal which routes exist.
//
// Only exact pattern matches against [http.Request.URL.Path] are looked up.
// If the pattern does handle the method, the request goes back through the
// router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

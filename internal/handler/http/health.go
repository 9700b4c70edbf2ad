// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/models"
)

const healthStatusOK = "ok"

// health answers 200 while the database is reachable and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: healthStatusOK}, http.StatusOK)
}

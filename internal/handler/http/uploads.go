// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/models"
)

// presignImageUpload hands the caller a short-lived URL to PUT one image to
// the asset host. The client then stores the returned public URL in an item
// or in its profile.
func (h *Handler) presignImageUpload(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.ImageUploadRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	upload, err := h.services.UploadService.PresignImageUpload(r.Context(), identity, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, upload, http.StatusOK)
}

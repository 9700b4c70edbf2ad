// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps every JSON request body.
const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// identityFromRequest returns the identity stored by the auth middleware.
func identityFromRequest(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrNoIdentity
	}
	return identity, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/models"
)

const (
	userUpdated    = "User updated successfully"
	nothingUpdated = "No fields provided for update"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateUser applies a partial update to the caller's own profile.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update models.UserUpdate
	if err = decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), identity, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := userUpdated
	if update.IsEmpty() {
		message = nothingUpdated
	}
	utils.WriteJSON(w, models.UserResponse{Message: message, User: user}, http.StatusOK)
}

// setCollegeID stores the college ID image URL of user {id}. Only that user
// may change it.
func (h *Handler) setCollegeID(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.CollegeIDInput
	if err = decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.SetCollegeID(r.Context(), identity, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

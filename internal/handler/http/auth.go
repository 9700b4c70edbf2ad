// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/models"
)

const loginSucceeded = "Login successful"

// login exchanges credentials for an access token. The credentials come as
// an OAuth2 password form (username, password) or as the same fields in a
// JSON body.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	credentials, err := readLoginRequest(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", token.UserID).Msg("user logged in")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
		Message:     loginSucceeded,
	}, http.StatusOK)
}

func readLoginRequest(w http.ResponseWriter, r *http.Request) (models.LoginRequest, error) {
	var credentials models.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := decodeJSON(w, r, &credentials)
		return credentials, err
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	parse := r.ParseForm
	if mediaType == "multipart/form-data" {
		parse = func() error { return r.ParseMultipartForm(maxBodyBytes) }
	}
	if err := parse(); err != nil {
		return credentials, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	credentials.Username = r.PostFormValue("username")
	credentials.Password = r.PostFormValue("password")

	return credentials, nil
}

// register creates an account. The response never carries the password.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := decodeJSON(w, r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", registeredUser.ID).Msg("user registered")

	utils.WriteJSON(w, registeredUser.Public(), http.StatusCreated)
}

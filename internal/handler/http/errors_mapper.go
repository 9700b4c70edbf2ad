// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/service"
	"github.com/MKhiriev/lendit/internal/store"
	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/internal/validators"
	"golang.org/x/crypto/bcrypt"
)

// Client-facing details. Authentication failures deliberately carry no
// reason.
const (
	detailInvalidCredentials = "Invalid credentials"
	detailInvalidToken       = "Invalid token"
	detailForbidden          = "Not authorized to modify this resource"
	detailUserNotFound       = "User not found"
	detailItemNotFound       = "Required item not found"
	detailEmailExists        = "Email already exists"
	detailInvalidJSON        = "Invalid JSON was passed"
	detailInvalidForm        = "Invalid form data"
	detailInvalidID          = "Invalid id"
	detailUploadsDisabled    = "Image uploads are not available"
	detailUnavailable        = "Service temporarily unavailable"
	detailInternal           = "Internal server error"
)

type errorResponse struct {
	status int
	detail string
}

// errorResponses maps every error a handler can surface to its status and
// detail. Anything unmatched is a 500 with a generic detail.
var errorResponses = map[error]errorResponse{
	service.ErrInvalidCredentials: {http.StatusUnauthorized, detailInvalidCredentials},
	service.ErrInvalidToken:       {http.StatusUnauthorized, detailInvalidToken},
	service.ErrForbidden:          {http.StatusForbidden, detailForbidden},
	service.ErrUploadsDisabled:    {http.StatusServiceUnavailable, detailUploadsDisabled},

	store.ErrUserNotFound:       {http.StatusNotFound, detailUserNotFound},
	store.ErrOwnerNotFound:      {http.StatusNotFound, detailUserNotFound},
	store.ErrItemNotFound:       {http.StatusNotFound, detailItemNotFound},
	store.ErrEmailAlreadyExists: {http.StatusBadRequest, detailEmailExists},
	store.ErrStorageUnavailable: {http.StatusServiceUnavailable, detailUnavailable},

	utils.ErrEmptyPassword:    {http.StatusBadRequest, "Password cannot be empty"},
	bcrypt.ErrPasswordTooLong: {http.StatusBadRequest, "Password is too long"},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, detailInvalidToken},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, detailInvalidToken},
	ErrEmptyToken:                 {http.StatusUnauthorized, detailInvalidToken},
	ErrNoIdentity:                 {http.StatusUnauthorized, detailInvalidToken},
	ErrInvalidJSON:                {http.StatusBadRequest, detailInvalidJSON},
	ErrInvalidForm:                {http.StatusBadRequest, detailInvalidForm},
	ErrInvalidID:                  {http.StatusBadRequest, detailInvalidID},
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

func responseFromError(err error) errorResponse {
	if errors.Is(err, validators.ErrInvalidInput) {
		return errorResponse{http.StatusBadRequest, validators.Detail(err)}
	}
	for target, response := range errorResponses {
		if errors.Is(err, target) {
			return response
		}
	}
	return errorResponse{http.StatusInternalServerError, detailInternal}
}

// writeError logs err with the request logger and writes the mapped JSON
// error body. Server-side failures are logged at error level, client
// mistakes at info.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	response := responseFromError(err)

	log := logger.FromRequest(r)
	if response.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", response.status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", response.status).Msg("request rejected")
	}

	utils.WriteError(w, response.detail, response.status)
}

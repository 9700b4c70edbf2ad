// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/utils"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that requires a valid bearer token.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.AuthService.Authenticate] and stores the resulting identity in
// the request context under [utils.IdentityCtxKey].
//
// Every rejection (missing or malformed header, bad signature, expired
// token) answers 401 with the same "Invalid token" detail. The precise
// reason is only logged.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("request without a usable bearer token")
			utils.WriteError(w, detailInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// getTokenFromAuthHeader extracts the token from an "Authorization" header
// value of the form:
//
//	Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
//
// The scheme is matched case-insensitively.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/lendit/internal/service"
	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lower-case scheme", header: "bearer abc", wantToken: "abc"},
		{name: "spaces around the token are trimmed", header: "Bearer   abc  ", wantToken: "abc"},
		{name: "leading space", header: " Bearer abc", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "no space", header: "BearerTokenWithoutSpace", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme only", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "scheme followed by blanks", header: "Bearer    \t", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Middleware(t *testing.T) {
	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantNext   bool
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "malformed header", authHeader: "Token " + testToken, wantStatus: http.StatusUnauthorized},
		{name: "rejected token", authHeader: "Bearer forged", wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + testToken, wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{})

			nextCalled := false
			var gotIdentity models.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotIdentity, _ = utils.GetIdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, testIdentity, gotIdentity)
				return
			}

			var body models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, "Invalid token", body.Detail)
		})
	}
}

func TestAuth_HeaderProblemsSkipAuthenticate(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{
			authenticateFn: func(_ context.Context, _ string) (models.Identity, error) {
				t.Fatal("Authenticate must not be called without a bearer token")
				return models.Identity{}, nil
			},
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next must not be called")
	})

	for _, header := range []string{"", "Bearer", "Basic abc"} {
		rr := executeAuth(h, header, next)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, "header %q", header)
	}
}

// Every rejection reason must produce the same response.
func TestAuth_RejectionsAreIndistinguishable(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	reference := executeAuth(h, "", next)
	for _, header := range []string{"Bearer", "Basic abc", "Bearer expired", "Bearer forged.token.value"} {
		rr := executeAuth(h, header, next)
		assert.Equal(t, reference.Code, rr.Code, "header %q", header)
		assert.Equal(t, reference.Body.String(), rr.Body.String(), "header %q", header)
	}
}

func TestAuth_PassesTokenToAuthenticate(t *testing.T) {
	var gotToken string
	h := newTestHandler(t, &service.Services{
		AuthService: &mockAuthService{
			authenticateFn: func(_ context.Context, token string) (models.Identity, error) {
				gotToken = token
				return models.Identity{ID: 1, Email: "a@example.com"}, nil
			},
		},
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := executeAuth(h, "Bearer header.payload.signature", next)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "header.payload.signature", gotToken)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/MKhiriev/lendit/internal/service"
	"github.com/MKhiriev/lendit/internal/store"
	"github.com/MKhiriev/lendit/internal/validators"
	"github.com/MKhiriev/lendit/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loginAs is a login function accepting only alice's credentials.
func loginAs(_ context.Context, email, password string) (models.Token, error) {
	if email == "alice@example.com" && password == "correct-horse" {
		return models.Token{UserID: 1, Email: email, SignedString: "signed.jwt.token"}, nil
	}
	return models.Token{}, service.ErrInvalidCredentials
}

func formLoginRequest(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func TestLogin_Form(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{loginFn: loginAs}})

	rr := serve(t, h, formLoginRequest("alice@example.com", "correct-horse"))

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody[models.TokenResponse](t, rr)
	assert.Equal(t, models.TokenResponse{
		AccessToken: "signed.jwt.token",
		TokenType:   "bearer",
		Message:     "Login successful",
	}, body)
}

func TestLogin_JSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{loginFn: loginAs}})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login",
		strings.NewReader(`{"username":"alice@example.com","password":"correct-horse"}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	rr := serve(t, h, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "signed.jwt.token", decodeBody[models.TokenResponse](t, rr).AccessToken)
}

func TestLogin_Multipart(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{loginFn: loginAs}})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("username", "alice@example.com"))
	require.NoError(t, mw.WriteField("password", "correct-horse"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rr := serve(t, h, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// Unknown email and wrong password must look the same to the client.
func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{loginFn: loginAs}})

	wrongPassword := serve(t, h, formLoginRequest("alice@example.com", "wrong"))
	unknownEmail := serve(t, h, formLoginRequest("nobody@example.com", "correct-horse"))
	empty := serve(t, h, formLoginRequest("", ""))

	for _, rr := range []*httptest.ResponseRecorder{wrongPassword, unknownEmail, empty} {
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"detail":"Invalid credentials"}`, rr.Body.String())
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{
		loginFn: func(context.Context, string, string) (models.Token, error) {
			t.Fatal("Login must not be called")
			return models.Token{}, nil
		},
	}})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")

	rr := serve(t, h, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"detail":"Invalid JSON was passed"}`, rr.Body.String())
}

func TestLogin_StoreFailure(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{
		loginFn: func(context.Context, string, string) (models.Token, error) {
			return models.Token{}, fmt.Errorf("user search by email failed: %w", errors.New("connection reset"))
		},
	}})

	rr := serve(t, h, formLoginRequest("alice@example.com", "correct-horse"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection reset")
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		registerFn func(ctx context.Context, user models.User) (models.User, error)
		wantStatus int
		wantDetail string
	}{
		{
			name: "created",
			body: `{"email":"bob@example.com","password":"s3cret-pass","first_name":"Bob"}`,
			registerFn: func(_ context.Context, user models.User) (models.User, error) {
				user.ID = 5
				user.Role = models.RoleRenter
				user.IsActive = true
				user.Password = "$2a$10$hash"
				return user, nil
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate email",
			body: `{"email":"bob@example.com","password":"s3cret-pass"}`,
			registerFn: func(context.Context, models.User) (models.User, error) {
				return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists)
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Email already exists",
		},
		{
			name: "validation failure",
			body: `{"email":"not-an-email","password":"s3cret-pass"}`,
			registerFn: func(context.Context, models.User) (models.User, error) {
				return models.User{}, fmt.Errorf("%w: email: must be a valid email address.", validators.ErrInvalidInput)
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid input: email: must be a valid email address.",
		},
		{
			name: "invalid json",
			body: `{"email":`,
			registerFn: func(context.Context, models.User) (models.User, error) {
				t.Fatal("RegisterUser must not be called")
				return models.User{}, nil
			},
			wantStatus: http.StatusBadRequest,
			wantDetail: "Invalid JSON was passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{registerUserFn: tt.registerFn}})

			rr := serve(t, h, httptest.NewRequest(http.MethodPost, "/v1/users/register", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeBody[models.ErrorResponse](t, rr).Detail)
				return
			}

			user := decodeBody[map[string]any](t, rr)
			assert.Equal(t, float64(5), user["id"])
			assert.Equal(t, "bob@example.com", user["email"])
			assert.NotContains(t, user, "password")
		})
	}
}

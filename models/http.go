// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LoginRequest carries the OAuth2 password-form fields of
// POST /v1/auth/login. Username holds the account email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Message     string `json:"message,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is a bare informational body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of a successful health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// ItemResponse is returned by item mutations: the resulting item plus a
// human-readable outcome.
type ItemResponse struct {
	Message string `json:"message,omitempty"`
	Item
}

// UserResponse is returned by profile mutations.
type UserResponse struct {
	Message string `json:"message,omitempty"`
	User
}

// Image upload purposes accepted by POST /v1/uploads/images.
const (
	ImagePurposeItem      = "item"
	ImagePurposeCollegeID = "college-id"
)

// ImageUploadRequest asks for a presigned URL to upload one image.
type ImageUploadRequest struct {
	// Purpose is ImagePurposeItem or ImagePurposeCollegeID.
	Purpose string `json:"purpose"`

	// ContentType is the MIME type the client will upload with.
	ContentType string `json:"content_type"`
}

// ImageUpload describes where and how the client uploads the image, and the
// URL to store in the item or profile once the upload succeeded.
type ImageUpload struct {
	Key       string    `json:"key"`
	Method    string    `json:"method"`
	UploadURL string    `json:"upload_url"`
	PublicURL string    `json:"public_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

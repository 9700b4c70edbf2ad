// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token_type returned by the login endpoint.
const TokenTypeBearer = "bearer"

// Claims is the claim set carried by a Lendit access token: the registered
// claims ("sub" holds the decimal user id) plus the subject's email.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Token wraps a JWT access token with convenience accessors.
//
// It embeds [jwt.Token] for low-level inspection and [Claims] for the
// decoded claim set. SignedString holds the compact form handed to clients;
// UserID and Email are the parsed subject fields.
type Token struct {
	*jwt.Token `json:"-"`

	Claims

	SignedString string `json:"-"`

	UserID int64  `json:"-"`
	Email  string `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// ExpiresAtTime returns the "exp" claim, or the zero time when absent.
func (t *Token) ExpiresAtTime() time.Time {
	if t.ExpiresAt == nil {
		return time.Time{}
	}
	return t.ExpiresAt.Time
}

// Identity returns the verified subject of the token.
func (t *Token) Identity() Identity {
	return Identity{ID: t.UserID, Email: t.Email}
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the authenticated subject of a request, decoded from a
// verified access token. It lives only in the request context.
type Identity struct {
	ID    int64
	Email string
}

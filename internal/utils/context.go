// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the server:
// typed context keys for the authenticated identity, JSON response writing,
// the access-token codec, password hashing and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/lendit/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// request's [models.Identity].
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the authenticated identity from ctx.
//
// ok is false when the value is missing or has an unexpected type, which
// for a protected route means the auth middleware was not applied.
//
// Example usage:
//
//	identity, ok := utils.GetIdentityFromContext(ctx)
//	if !ok {
//	    // handle unauthenticated request
//	}
func GetIdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// GetUserIDFromContext is a shortcut returning only the identity's user id.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := GetIdentityFromContext(ctx)
	return identity.ID, ok
}

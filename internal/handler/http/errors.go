// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised while reading a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the bearer scheme is present but the
	// token itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a form-encoded body cannot be parsed.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrInvalidID is returned when a {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id in path")

	// ErrNoIdentity is returned when a protected handler runs without the
	// auth middleware having stored an identity.
	ErrNoIdentity = errors.New("no identity in request context")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach storage.
//
// Rules are declared with ozzo-validation, so a failed validation reports
// every offending field at once, keyed by its JSON name:
//
//	email: must be a valid email address; password: the length must be between 8 and 72.
//
// Every failure wraps [ErrInvalidInput]; [Detail] renders the client-facing
// message.
package validators

import "context"

// Validator validates a domain payload. When fields are given, only those
// fields (by JSON name) are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

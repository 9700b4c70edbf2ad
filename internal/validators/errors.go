// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput wraps every rule violation.
	ErrInvalidInput = errors.New("invalid input")
)

// Detail returns the message to show a client for a validation failure:
// the per-field violations when err carries them, err's text otherwise.
func Detail(err error) string {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return fieldErrs.Error()
	}
	return err.Error()
}

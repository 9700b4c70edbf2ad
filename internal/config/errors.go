// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Several may be
// joined into a single error.
var (
	// ErrMissingTokenSignKey indicates that no token sign key was configured.
	// There is no fallback secret.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidAuthConfigs indicates out-of-range auth settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrMissingDSN indicates that no database connection string was set.
	ErrMissingDSN = errors.New("database DSN is required")
	// ErrInvalidImagesConfigs indicates an incomplete image bucket setup.
	ErrInvalidImagesConfigs = errors.New("invalid images storage configuration")
	// ErrMissingHTTPAddress indicates that no listen address was set.
	ErrMissingHTTPAddress = errors.New("server address is required")
	// ErrInvalidServerConfigs indicates out-of-range server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)

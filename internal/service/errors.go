// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, inactive account and wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers every reason a bearer token is rejected.
	ErrInvalidToken = errors.New("invalid token")

	// ErrForbidden is returned when the caller does not own the resource it
	// tries to mutate.
	ErrForbidden = errors.New("not authorized to modify this resource")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrUploadsDisabled is returned when no image bucket is configured.
	ErrUploadsDisabled  = errors.New("image uploads are not configured")
	ErrPresigningUpload = errors.New("failed to presign image upload")
)

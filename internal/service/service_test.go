// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

const testSignKey = "service-test-sign-key"

var testNow = time.Date(2026, time.May, 4, 9, 30, 0, 0, time.UTC)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  testSignKey,
		TokenIssuer:   "lendit",
		TokenDuration: 30 * time.Minute,
	}
}

// testHasher keeps bcrypt fast in tests.
func testHasher() *utils.PasswordHasher {
	return utils.NewPasswordHasher(bcrypt.MinCost)
}

func ptr[T any](v T) *T {
	return &v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Built-in defaults applied to fields no other source has set.
const (
	DefaultTokenIssuer    = "lendit"
	DefaultTokenDuration  = 30 * time.Minute
	DefaultRequestTimeout = 30 * time.Second
	DefaultPresignTTL     = 15 * time.Minute
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: DefaultLogLevel,
		},
		Auth: Auth{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
		},
		Storage: Storage{
			Images: Images{
				PresignTTL: DefaultPresignTTL,
			},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

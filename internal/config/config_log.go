// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// MarshalZerologObject logs the configuration with every secret redacted:
// the token sign key, the image secret key and the DSN password.
func (cfg *StructuredConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Dict("app", zerolog.Dict().
		Str("version", cfg.App.Version).
		Str("log_level", cfg.App.LogLevel))

	e.Dict("auth", zerolog.Dict().
		Str("token_sign_key", redactNonEmpty(cfg.Auth.TokenSignKey)).
		Str("token_issuer", cfg.Auth.TokenIssuer).
		Dur("token_duration", cfg.Auth.TokenDuration).
		Int("password_hash_cost", cfg.Auth.PasswordHashCost))

	images := cfg.Storage.Images
	e.Dict("storage", zerolog.Dict().
		Str("dsn", redactDSN(cfg.Storage.DB.DSN)).
		Dict("images", zerolog.Dict().
			Str("bucket", images.Bucket).
			Str("region", images.Region).
			Str("endpoint", images.Endpoint).
			Str("public_base_url", images.PublicBaseURL).
			Str("access_key", images.AccessKey).
			Str("secret_key", redactNonEmpty(images.SecretKey)).
			Dur("presign_ttl", images.PresignTTL)))

	e.Dict("server", zerolog.Dict().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout))

	e.Str("json_file", cfg.JSONFilePath)
}

func redactNonEmpty(s string) string {
	if s == "" {
		return ""
	}
	return redacted
}

// redactDSN hides the password of a URL-form DSN. Key/value DSNs are
// redacted entirely since they cannot be parsed reliably here.
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}

	u, err := url.Parse(dsn)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return redacted
	}
	return u.Redacted()
}

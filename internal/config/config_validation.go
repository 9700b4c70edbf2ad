// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. All violations are reported together.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Auth.TokenSignKey == "" {
		errs = append(errs, ErrMissingTokenSignKey)
	}
	if cfg.Auth.TokenDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: negative token duration", ErrInvalidAuthConfigs))
	}
	if cfg.Auth.PasswordHashCost != 0 &&
		(cfg.Auth.PasswordHashCost < bcrypt.MinCost || cfg.Auth.PasswordHashCost > bcrypt.MaxCost) {
		errs = append(errs, fmt.Errorf("%w: password hash cost must be in [%d, %d]",
			ErrInvalidAuthConfigs, bcrypt.MinCost, bcrypt.MaxCost))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrMissingDSN)
	}

	images := cfg.Storage.Images
	if images.Enabled() {
		if images.Region == "" {
			errs = append(errs, fmt.Errorf("%w: region is required", ErrInvalidImagesConfigs))
		}
		if (images.AccessKey == "") != (images.SecretKey == "") {
			errs = append(errs, fmt.Errorf("%w: access key and secret key must be set together", ErrInvalidImagesConfigs))
		}
		if images.PresignTTL < 0 {
			errs = append(errs, fmt.Errorf("%w: negative presign ttl", ErrInvalidImagesConfigs))
		}
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrMissingHTTPAddress)
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}

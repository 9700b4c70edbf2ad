// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from the process environment. Variable
// names come from the `env` and `envPrefix` tags, so STORAGE_DB_DATABASE_URI
// lands in Storage.DB.DSN. Unset variables leave zero values for mergo to
// fill from lower-priority sources.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error reading config from environment: %w", err)
	}

	return &cfg, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/store"
)

// Pinger reports whether a backing store is reachable. *store.Storages
// implements it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger Pinger

	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

// Check pings the database. A failure is reported as
// store.ErrStorageUnavailable.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("health check failed")
		return fmt.Errorf("%w: %w", store.ErrStorageUnavailable, err)
	}
	return nil
}

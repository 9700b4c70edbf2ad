// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"testing"
	"time"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, config.Server{RequestTimeout: 5 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.NotNil(t, h.metrics)
}

// Each handler owns its registry, so building two must not panic on
// duplicate metric registration.
func TestNewHandler_IndependentRegistries(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.Server{}, logger.Nop())

	assert.NotSame(t, h1.registry, h2.registry)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	registry *prometheus.Registry
	metrics  *metrics

	logger *logger.Logger
}

// NewHandler builds a handler over services. Every handler owns its metrics
// registry, so several handlers can live in one process.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		registry:       registry,
		metrics:        newMetrics(registry),
		logger:         logger,
	}
}

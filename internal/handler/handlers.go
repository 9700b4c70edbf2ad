// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/handler/http"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/service"
)

// ErrNoHTTPAddress is returned by [NewHandlers] when the server has no
// listen address, so there is nothing to serve.
var ErrNoHTTPAddress = errors.New("server http address is not configured")

// Handlers groups the transport handlers enabled by configuration.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler over services.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, ErrNoHTTPAddress
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}

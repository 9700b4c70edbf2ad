// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lendit/internal/config"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/internal/store"
	"github.com/MKhiriev/lendit/internal/utils"
	"github.com/MKhiriev/lendit/models"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ItemService    ItemService
	UploadService  UploadService
	HealthService  HealthService
	AppInfoService AppInfoService
}

// NewServices wires every service over storages. It fails on invalid auth
// settings or when the image host cannot be configured.
func NewServices(ctx context.Context, storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher := utils.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService, err := NewAuthService(storages.UserRepository, hasher, cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	uploadService, err := NewUploadService(ctx, cfg.Storage.Images, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating upload service: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		UserService:    NewUserService(storages.UserRepository, hasher, logger),
		ItemService:    NewItemValidationService().Wrap(NewItemService(storages.ItemRepository, logger)),
		UploadService:  uploadService,
		HealthService:  NewHealthService(storages, logger),
		AppInfoService: appInfoService,
	}, nil
}

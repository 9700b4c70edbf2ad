// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/lendit/models"
)

// AuthService registers accounts, checks credentials and turns bearer
// tokens back into identities.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	// Login returns a fresh access token for the active account identified
	// by email. Every credential failure is reported as ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.Token, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// Authenticate verifies a bearer token. Every failure is reported as
	// ErrInvalidToken.
	Authenticate(ctx context.Context, tokenString string) (models.Identity, error)
}

// UserService reads public profiles and lets callers edit their own.
type UserService interface {
	GetUser(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, identity models.Identity, update models.UserUpdate) (models.User, error)
	SetCollegeID(ctx context.Context, identity models.Identity, userID int64, input models.CollegeIDInput) (models.User, error)
}

// ItemService manages item listings. Mutations of an existing item are
// allowed to its owner only.
type ItemService interface {
	CreateItem(ctx context.Context, identity models.Identity, input models.ItemCreate) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	UpdateItem(ctx context.Context, identity models.Identity, id int64, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, identity models.Identity, id int64) error
}

// ItemServiceWrapper decorates an ItemService with additional behavior
// such as input validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// UploadService hands out presigned URLs for direct image uploads to the
// asset host.
type UploadService interface {
	PresignImageUpload(ctx context.Context, identity models.Identity, request models.ImageUploadRequest) (models.ImageUpload, error)
}

// HealthService reports whether the server can reach its dependencies.
type HealthService interface {
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

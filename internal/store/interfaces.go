// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/lendit/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user (with an already hashed password) and returns
	// the stored record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindActiveUserByEmail returns the active user with exactly this email,
	// password hash included.
	FindActiveUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser applies the non-nil fields of update and bumps updated_at.
	// An empty update returns the current record unchanged.
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
}

// OwnershipCheck decides whether the caller may mutate an item owned by
// ownerID. A non-nil error aborts the mutation and is returned as is.
type OwnershipCheck func(ownerID int64) error

// ItemRepository persists rentable items in the "items" table.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	// UpdateItem locks the item row, runs check against its owner and then
	// applies update, all in one transaction. An empty update returns the
	// current item after the check passed.
	UpdateItem(ctx context.Context, id int64, update models.ItemUpdate, check OwnershipCheck) (models.Item, error)
	// DeleteItem locks the item row, runs check against its owner and then
	// deletes it, all in one transaction.
	DeleteItem(ctx context.Context, id int64, check OwnershipCheck) error
}

// ErrorClassificator decides whether a failed database operation is
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

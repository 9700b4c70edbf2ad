// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user insert or update hits the
	// unique constraint on users.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup. Inactive
	// users are reported the same way by FindActiveUserByEmail.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when no item has the requested id.
	ErrItemNotFound = errors.New("item not found")

	// ErrOwnerNotFound is returned when an item references a user that does
	// not exist (foreign key violation on items.owner_id).
	ErrOwnerNotFound = errors.New("item owner does not exist")

	// ErrStorageUnavailable marks transient database failures (lost
	// connection, serialization failure, deadlock).
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommittingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommittingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a model fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingImages is returned when an item's image list cannot be
	// converted to or from its JSONB column.
	ErrEncodingImages = errors.New("failed to encode item images")
)

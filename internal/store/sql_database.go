// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/MKhiriev/lendit/migrations"
)

// DB wraps the shared *sql.DB pool together with the error classifier used
// to tell transient failures from permanent ones.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}

// WithTx runs fn inside a transaction on db. See [WithTx].
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return WithTx(ctx, db.DB, nil, fn)
}

// unexpected wraps a driver error that has no domain meaning. Transient
// failures are marked with [ErrStorageUnavailable].
func (db *DB) unexpected(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

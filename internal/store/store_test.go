// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/lendit/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = conn.Close()
	})

	return &DB{
		DB:                 conn,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func ptr[T any](v T) *T {
	return &v
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows(itemColumns)
}

func sqlmockResult(rowsAffected int64) driver.Result {
	return sqlmock.NewResult(0, rowsAffected)
}

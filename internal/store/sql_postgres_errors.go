// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed statement may succeed when the
// client simply tries again later.
type ErrorClassification int

const (
	// NonRetryable covers constraint violations, bad input, schema errors and
	// anything unrecognised.
	NonRetryable ErrorClassification = iota

	// Retryable covers lost connections, rolled back transactions and a
	// server that is starting, stopping or out of connection slots.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for errors coming
// from the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its SQLSTATE.
// Errors that are not PostgreSQL errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError classifies a SQLSTATE. Whole classes 08 (connection
// exception) and 40 (transaction rollback) are retryable, as are the
// operator and resource conditions a restart or a freed connection slot
// resolves. See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case pgerrcode.IsConnectionException(code), // class 08
		pgerrcode.IsTransactionRollback(code): // class 40, incl. 40001 and 40P01
		return Retryable
	}

	switch code {
	case pgerrcode.CannotConnectNow, // 57P03
		pgerrcode.AdminShutdown,      // 57P01
		pgerrcode.CrashShutdown,      // 57P02
		pgerrcode.TooManyConnections: // 53300
		return Retryable
	}

	return NonRetryable
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE items").WillReturnResult(sqlmockResult(1))
		mock.ExpectCommit()

		err := db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
			_, err := tx.ExecContext(ctx, "UPDATE items SET is_available = false")
			return err
		})
		require.NoError(t, err)
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := db.WithTx(ctx, func(context.Context, DBTX) error { return boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rollback failure is joined", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		rbErr := errors.New("connection reset")
		mock.ExpectRollback().WillReturnError(rbErr)

		boom := errors.New("boom")
		err := db.WithTx(ctx, func(context.Context, DBTX) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, rbErr)
	})

	t.Run("commit failure", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(errors.New("could not serialize"))

		err := db.WithTx(ctx, func(context.Context, DBTX) error { return nil })
		assert.ErrorIs(t, err, ErrCommittingTransaction)
	})

	t.Run("panic rolls back and is rethrown", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "kaboom", func() {
			_ = db.WithTx(ctx, func(context.Context, DBTX) error { panic("kaboom") })
		})
	})
}

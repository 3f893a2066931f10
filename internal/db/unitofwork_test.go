package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/TPSE31/career-roadmap/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertCompletion = `INSERT INTO completions (session_id, module_code, completed_at) VALUES (?, ?, ?)`

func openTestUoW(t *testing.T) (*db.SQLiteUnitOfWork, func(code string) bool) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	exists := func(code string) bool {
		var n int
		err := database.QueryRow(`SELECT COUNT(*) FROM completions WHERE module_code = ?`, code).Scan(&n)
		require.NoError(t, err)
		return n > 0
	}
	return db.NewSQLiteUnitOfWork(database), exists
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, exists := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, insertCompletion, "default", "20-00-0004", "2025-01-01T00:00:00Z")
		return err
	})
	require.NoError(t, err)

	assert.True(t, exists("20-00-0004"), "row should exist after commit")
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, exists := openTestUoW(t)
	errBoom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, insertCompletion, "default", "20-00-0013", "2025-01-01T00:00:00Z"); err != nil {
			return err
		}
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	assert.False(t, exists("20-00-0013"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, exists := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, insertCompletion, "default", "20-00-0037", "2025-01-01T00:00:00Z")
			panic("boom")
		})
	})

	assert.False(t, exists("20-00-0037"), "row should not exist after panic rollback")
}

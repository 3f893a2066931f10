package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/TPSE31/career-roadmap/internal/db"
)

// FailOnNthExecUoW runs transactions whose FailOn-th write returns Err. The
// completion repo's Save deletes then re-inserts inside one transaction, so
// FailOn picks which step breaks. Reads are never counted.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &countingTx{DBTX: tx, failOn: u.FailOn, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// countingTx fails its failOn-th ExecContext call.
type countingTx struct {
	db.DBTX
	execs  int
	failOn int
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.execs++
	if c.execs == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}

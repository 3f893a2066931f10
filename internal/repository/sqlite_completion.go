package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/TPSE31/career-roadmap/internal/db"
)

// SQLiteCompletionRepo implements CompletionRepo for one session. Save
// replaces the whole set inside a single transaction.
type SQLiteCompletionRepo struct {
	db        db.DBTX
	uow       db.UnitOfWork
	sessionID string
}

// NewSQLiteCompletionRepo creates a completion repo bound to sessionID.
func NewSQLiteCompletionRepo(conn db.DBTX, uow db.UnitOfWork, sessionID string) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn, uow: uow, sessionID: sessionID}
}

func (r *SQLiteCompletionRepo) Load(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT module_code FROM completions WHERE session_id = ? ORDER BY module_code`, r.sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	codes := []string{}
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning completion row: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return codes, nil
}

func (r *SQLiteCompletionRepo) Save(ctx context.Context, codes []string) error {
	sorted := append([]string(nil), codes...)
	sort.Strings(sorted)

	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		existing, err := completedAtByCode(ctx, tx, r.sessionID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM completions WHERE session_id = ?`, r.sessionID); err != nil {
			return fmt.Errorf("clearing completions: %w", err)
		}
		now := nowUTC()
		for _, code := range sorted {
			completedAt, ok := existing[code]
			if !ok {
				completedAt = now
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO completions (session_id, module_code, completed_at) VALUES (?, ?, ?)`,
				r.sessionID, code, completedAt,
			); err != nil {
				return fmt.Errorf("inserting completion %s: %w", code, err)
			}
		}
		return nil
	})
}

// completedAtByCode keeps the original completion timestamps across a
// replace-all save.
func completedAtByCode(ctx context.Context, conn db.DBTX, sessionID string) (map[string]string, error) {
	rows, err := conn.QueryContext(ctx,
		`SELECT module_code, completed_at FROM completions WHERE session_id = ?`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("reading completion timestamps: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var code, at string
		if err := rows.Scan(&code, &at); err != nil {
			return nil, fmt.Errorf("scanning completion timestamp: %w", err)
		}
		out[code] = at
	}
	return out, rows.Err()
}

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/TPSE31/career-roadmap/internal/db"
	"github.com/TPSE31/career-roadmap/internal/domain"
)

// SQLiteMilestoneRepo implements MilestoneRepo for one session.
type SQLiteMilestoneRepo struct {
	db        db.DBTX
	uow       db.UnitOfWork
	sessionID string
}

func NewSQLiteMilestoneRepo(conn db.DBTX, uow db.UnitOfWork, sessionID string) *SQLiteMilestoneRepo {
	return &SQLiteMilestoneRepo{db: conn, uow: uow, sessionID: sessionID}
}

func (r *SQLiteMilestoneRepo) List(ctx context.Context) ([]domain.MilestoneProgress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT milestone_id, status, achieved_at FROM milestone_progress
		WHERE session_id = ? ORDER BY milestone_id`, r.sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing milestone progress: %w", err)
	}
	defer rows.Close()

	var out []domain.MilestoneProgress
	for rows.Next() {
		var p domain.MilestoneProgress
		var status string
		var achievedAt sql.NullString
		if err := rows.Scan(&p.ID, &status, &achievedAt); err != nil {
			return nil, fmt.Errorf("scanning milestone progress: %w", err)
		}
		p.Status = domain.MilestoneStatus(status)
		p.AchievedAt = parseNullableTime(achievedAt, time.RFC3339)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating milestone progress: %w", err)
	}
	return out, nil
}

func (r *SQLiteMilestoneRepo) Upsert(ctx context.Context, p *domain.MilestoneProgress) error {
	return upsertMilestone(ctx, r.db, r.sessionID, p)
}

// UpsertAll writes every row in one transaction. Either all rows land or
// none do.
func (r *SQLiteMilestoneRepo) UpsertAll(ctx context.Context, ps []*domain.MilestoneProgress) error {
	if len(ps) == 0 {
		return nil
	}
	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, p := range ps {
			if err := upsertMilestone(ctx, tx, r.sessionID, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertMilestone(ctx context.Context, conn db.DBTX, sessionID string, p *domain.MilestoneProgress) error {
	status := p.Status
	if status == "" {
		status = domain.MilestoneLocked
	}
	_, err := conn.ExecContext(ctx,
		`INSERT INTO milestone_progress (session_id, milestone_id, status, achieved_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id, milestone_id) DO UPDATE SET
			status = excluded.status,
			achieved_at = excluded.achieved_at,
			updated_at = excluded.updated_at`,
		sessionID, p.ID, string(status),
		nullableTimeToString(p.AchievedAt, time.RFC3339),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting milestone %d: %w", p.ID, err)
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/TPSE31/career-roadmap/internal/db"
	"github.com/TPSE31/career-roadmap/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, sessionID string) (*domain.Profile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT session_id, semester, career_path_id, updated_at FROM profiles WHERE session_id = ?`,
		sessionID)

	var p domain.Profile
	var career sql.NullString
	var updatedAt string
	if err := row.Scan(&p.SessionID, &p.Semester, &career, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.CareerPathID = career.String
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		p.UpdatedAt = t
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (session_id, semester, career_path_id, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			semester = excluded.semester,
			career_path_id = excluded.career_path_id,
			updated_at = excluded.updated_at`,
		p.SessionID, p.Semester, nullableString(p.CareerPathID),
		p.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

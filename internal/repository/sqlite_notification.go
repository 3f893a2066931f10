package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/TPSE31/career-roadmap/internal/db"
	"github.com/TPSE31/career-roadmap/internal/domain"
)

const notificationColumns = `id, session_id, type, priority, title, message,
	due_at, read_at, related_milestone_id, action_url, created_at`

// SQLiteNotificationRepo implements NotificationRepo for one session.
type SQLiteNotificationRepo struct {
	db        db.DBTX
	sessionID string
}

// NewSQLiteNotificationRepo creates a notification repo bound to sessionID.
func NewSQLiteNotificationRepo(conn db.DBTX, sessionID string) *SQLiteNotificationRepo {
	return &SQLiteNotificationRepo{db: conn, sessionID: sessionID}
}

func (r *SQLiteNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (` + notificationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		n.ID,
		r.sessionID,
		string(n.Type),
		string(n.Priority),
		n.Title,
		n.Message,
		nullableTimeToString(n.DueAt, time.RFC3339),
		nullableTimeToString(n.ReadAt, time.RFC3339),
		nullableIntToValue(n.RelatedMilestoneID),
		n.ActionURL,
		n.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (r *SQLiteNotificationRepo) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = ? AND session_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, r.sessionID)
	n, err := scanNotification(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("notification %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning notification: %w", err)
	}
	return n, nil
}

// List returns the session's notifications, newest first.
func (r *SQLiteNotificationRepo) List(ctx context.Context) ([]*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications
		WHERE session_id = ? ORDER BY created_at DESC, id`
	rows, err := r.db.QueryContext(ctx, query, r.sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var out []*domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning notification row: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notifications: %w", err)
	}
	return out, nil
}

func (r *SQLiteNotificationRepo) Update(ctx context.Context, id string, patch domain.NotificationPatch) error {
	return r.UpdateMany(ctx, []string{id}, patch)
}

// UpdateMany applies patch to every listed notification in one statement.
// It fails with ErrNotFound unless every id matched.
func (r *SQLiteNotificationRepo) UpdateMany(ctx context.Context, ids []string, patch domain.NotificationPatch) error {
	if len(ids) == 0 || patch.Empty() {
		return nil
	}

	var sets []string
	var args []any
	if patch.ReadAt != nil {
		sets = append(sets, "read_at = ?")
		args = append(args, nullableTimeToString(patch.ReadAt, time.RFC3339))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*patch.Priority))
	}
	if patch.DueAt != nil {
		sets = append(sets, "due_at = ?")
		args = append(args, nullableTimeToString(patch.DueAt, time.RFC3339))
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	query := `UPDATE notifications SET ` + strings.Join(sets, ", ") +
		` WHERE session_id = ? AND id IN (` + placeholders + `)`
	args = append(args, r.sessionID)
	for _, id := range ids {
		args = append(args, id)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating notifications: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && int(n) != len(ids) {
		return fmt.Errorf("updating notifications: %d of %d rows matched: %w", n, len(ids), ErrNotFound)
	}
	return nil
}

func (r *SQLiteNotificationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = ? AND session_id = ?`, id, r.sessionID)
	if err != nil {
		return fmt.Errorf("deleting notification: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("notification %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (*domain.Notification, error) {
	var n domain.Notification
	var typ, priority, createdAt string
	var dueAt, readAt sql.NullString
	var related sql.NullInt64

	if err := row.Scan(
		&n.ID, &n.SessionID, &typ, &priority, &n.Title, &n.Message,
		&dueAt, &readAt, &related, &n.ActionURL, &createdAt,
	); err != nil {
		return nil, err
	}

	n.Type = domain.NotificationType(typ)
	n.Priority = domain.Priority(priority)
	n.DueAt = parseNullableTime(dueAt, time.RFC3339)
	n.ReadAt = parseNullableTime(readAt, time.RFC3339)
	n.RelatedMilestoneID = parseNullableInt(related)

	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	n.CreatedAt = t
	return &n, nil
}

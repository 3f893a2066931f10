// Package notify holds the notification and milestone state machines.
// Both keep an in-memory copy of the session's items, write every change
// through to their store, and undo the in-memory change when the write fails.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// Source is the persistent notification collection of one session.
type Source interface {
	List(ctx context.Context) ([]*domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) error
	Update(ctx context.Context, id string, patch domain.NotificationPatch) error
	UpdateMany(ctx context.Context, ids []string, patch domain.NotificationPatch) error
	Delete(ctx context.Context, id string) error
}

// Filter narrows List. Zero values match everything.
type Filter struct {
	Type       domain.NotificationType
	UnreadOnly bool
}

func (f Filter) match(n *domain.Notification) bool {
	if f.Type != "" && n.Type != f.Type {
		return false
	}
	if f.UnreadOnly && n.IsRead() {
		return false
	}
	return true
}

// Manager is the notification state machine of one session.
type Manager struct {
	src   Source
	now   func() time.Time
	items []*domain.Notification
}

// NewManager loads the session's notifications from src. now defaults to
// time.Now.
func NewManager(ctx context.Context, src Source, now func() time.Time) (*Manager, error) {
	if now == nil {
		now = time.Now
	}
	items, err := src.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading notifications: %w", err)
	}
	return &Manager{src: src, now: now, items: items}, nil
}

// List returns copies of the matching notifications in source order.
func (m *Manager) List(f Filter) []domain.Notification {
	out := []domain.Notification{}
	for _, n := range m.items {
		if f.match(n) {
			out = append(out, *n)
		}
	}
	return out
}

func (m *Manager) Get(id string) (domain.Notification, error) {
	n, _ := m.find(id)
	if n == nil {
		return domain.Notification{}, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return *n, nil
}

// Create validates and stores a new notification. Missing CreatedAt and
// Priority are filled in.
func (m *Manager) Create(ctx context.Context, n *domain.Notification) error {
	if !domain.ValidNotificationTypes[n.Type] {
		return &domain.ValidationError{Field: "type", Value: n.Type, Reason: "unknown notification type"}
	}
	if n.Title == "" {
		return &domain.ValidationError{Field: "title", Value: n.Title, Reason: "must not be empty"}
	}
	if n.Priority == "" {
		n.Priority = domain.PriorityMedium
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = m.now().UTC()
	}
	if err := m.src.Create(ctx, n); err != nil {
		return fmt.Errorf("creating notification: %w", err)
	}
	cp := *n
	m.items = append([]*domain.Notification{&cp}, m.items...)
	return nil
}

// MarkRead stamps ReadAt on an unread notification. Marking an already-read
// notification succeeds without touching its timestamp or the store.
func (m *Manager) MarkRead(ctx context.Context, id string) error {
	n, _ := m.find(id)
	if n == nil {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	if !n.MarkRead(m.now().UTC()) {
		return nil
	}
	if err := m.src.Update(ctx, id, domain.NotificationPatch{ReadAt: n.ReadAt}); err != nil {
		n.ReadAt = nil
		return fmt.Errorf("marking notification %s read: %w", id, err)
	}
	return nil
}

// MarkAllRead stamps every unread notification with the same time and
// returns how many changed. Already-read notifications keep their
// timestamps, so a second call is a no-op.
func (m *Manager) MarkAllRead(ctx context.Context) (int, error) {
	now := m.now().UTC()
	var changed []*domain.Notification
	for _, n := range m.items {
		if n.MarkRead(now) {
			changed = append(changed, n)
		}
	}
	if len(changed) == 0 {
		return 0, nil
	}

	ids := make([]string, len(changed))
	for i, n := range changed {
		ids[i] = n.ID
	}
	if err := m.src.UpdateMany(ctx, ids, domain.NotificationPatch{ReadAt: &now}); err != nil {
		for _, n := range changed {
			n.ReadAt = nil
		}
		return 0, fmt.Errorf("marking all notifications read: %w", err)
	}
	return len(changed), nil
}

// Delete removes a notification. A later Get returns ErrNotFound.
func (m *Manager) Delete(ctx context.Context, id string) error {
	_, idx := m.find(id)
	if idx < 0 {
		return fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	if err := m.src.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting notification %s: %w", id, err)
	}
	m.items = append(m.items[:idx], m.items[idx+1:]...)
	return nil
}

// UnreadCount counts notifications with no ReadAt.
func (m *Manager) UnreadCount() int {
	count := 0
	for _, n := range m.items {
		if !n.IsRead() {
			count++
		}
	}
	return count
}

func (m *Manager) find(id string) (*domain.Notification, int) {
	for i, n := range m.items {
		if n.ID == id {
			return n, i
		}
	}
	return nil, -1
}

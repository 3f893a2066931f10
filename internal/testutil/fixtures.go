package testutil

import (
	"time"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/google/uuid"
)

// FixedNow is the reference clock used by fixtures and deterministic tests.
var FixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

// Clock returns a func that always reports t.
func Clock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Notification options
type NotificationOption func(*domain.Notification)

func WithNotificationType(typ domain.NotificationType) NotificationOption {
	return func(n *domain.Notification) {
		n.Type = typ
	}
}

func WithPriority(p domain.Priority) NotificationOption {
	return func(n *domain.Notification) {
		n.Priority = p
	}
}

func WithReadAt(t time.Time) NotificationOption {
	return func(n *domain.Notification) {
		n.ReadAt = &t
	}
}

func WithDueAt(t time.Time) NotificationOption {
	return func(n *domain.Notification) {
		n.DueAt = &t
	}
}

func WithRelatedMilestone(id int) NotificationOption {
	return func(n *domain.Notification) {
		n.RelatedMilestoneID = &id
	}
}

func WithCreatedAt(t time.Time) NotificationOption {
	return func(n *domain.Notification) {
		n.CreatedAt = t
	}
}

func WithSession(id string) NotificationOption {
	return func(n *domain.Notification) {
		n.SessionID = id
	}
}

func NewTestNotification(title string, opts ...NotificationOption) *domain.Notification {
	n := &domain.Notification{
		ID:        uuid.New().String(),
		SessionID: domain.DefaultSessionID,
		Type:      domain.NotifySystem,
		Priority:  domain.PriorityMedium,
		Title:     title,
		Message:   title + " message",
		CreatedAt: FixedNow,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NewTestMilestone builds a credit-threshold milestone definition.
func NewTestMilestone(id int, label string, credits int, expectedBy int) domain.MilestoneDefinition {
	return domain.MilestoneDefinition{
		ID:                 id,
		OrderIndex:         id,
		Type:               domain.MilestoneCPThreshold,
		Label:              label,
		Rule:               domain.MilestoneRule{CreditsRequired: credits},
		ExpectedBySemester: expectedBy,
	}
}

package repository

import (
	"context"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// CompletionRepo stores the completed module codes of one session.
type CompletionRepo interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, codes []string) error
}

// NotificationRepo is scoped to one session.
type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	List(ctx context.Context) ([]*domain.Notification, error)
	Update(ctx context.Context, id string, patch domain.NotificationPatch) error
	UpdateMany(ctx context.Context, ids []string, patch domain.NotificationPatch) error
	Delete(ctx context.Context, id string) error
}

// MilestoneRepo persists per-session milestone state. Definitions live in
// the catalog; rows carry only the ID, Status and AchievedAt fields.
type MilestoneRepo interface {
	List(ctx context.Context) ([]domain.MilestoneProgress, error)
	Upsert(ctx context.Context, p *domain.MilestoneProgress) error
	UpsertAll(ctx context.Context, ps []*domain.MilestoneProgress) error
}

type ProfileRepo interface {
	Get(ctx context.Context, sessionID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

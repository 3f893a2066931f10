package service

import (
	"context"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/notify"
	"github.com/TPSE31/career-roadmap/internal/progress"
)

type CatalogService interface {
	ListCareers(ctx context.Context) (*contract.CareersResponse, error)
	GetCareer(ctx context.Context, idOrGoal string) (*domain.CareerPath, error)
	ListModules(ctx context.Context, q contract.ModuleQuery) ([]domain.Module, error)
	GetModule(ctx context.Context, code string) (*domain.Module, error)
	ResolveGoal(ctx context.Context, goal string) (string, error)
}

type ProfileService interface {
	Get(ctx context.Context) (*contract.ProfileResponse, error)
	Update(ctx context.Context, u contract.ProfileUpdate) (*contract.ProfileResponse, error)
	SetSemester(ctx context.Context, semester int) (*contract.ProfileResponse, error)
	SetCareer(ctx context.Context, idOrGoal string) (*contract.ProfileResponse, error)
}

type NotificationService interface {
	List(ctx context.Context, f notify.Filter) ([]domain.Notification, error)
	Get(ctx context.Context, id string) (*domain.Notification, error)
	Create(ctx context.Context, n *domain.Notification) error
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	UnreadCount(ctx context.Context) (int, error)
}

type MilestoneService interface {
	List(ctx context.Context) ([]domain.MilestoneProgress, error)
	SetCompleted(ctx context.Context, id int, done bool) (*domain.MilestoneProgress, error)
	Sync(ctx context.Context) (*contract.MilestoneSyncResponse, error)
}

// Engine is the presentation-facing facade over ranking, roadmap, progress
// and notification state.
type Engine interface {
	GetScoredModules(ctx context.Context, careerID string) (*contract.ScoredModulesResponse, error)
	GetRoadmapStages(ctx context.Context, semester int) (*contract.RoadmapResponse, error)
	GetCompletionSummary(ctx context.Context) (*progress.CompletionSummary, error)
	OnTrack(ctx context.Context) (*progress.OnTrackStatus, error)
	ToggleModule(ctx context.Context, code string) (*contract.ToggleResponse, error)
	ResetCompletions(ctx context.Context) error
	GetUnreadCount(ctx context.Context) (int, error)
	MarkAllRead(ctx context.Context) (int, error)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TPSE31/career-roadmap/internal/catalog"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/ledger"
	"github.com/TPSE31/career-roadmap/internal/progress"
	"github.com/TPSE31/career-roadmap/internal/recommend"
)

type engine struct {
	store         *catalog.Store
	source        *catalog.FallbackSource
	ledger        *ledger.Ledger
	profiles      ProfileService
	notifications NotificationService
	observer      UseCaseObserver
}

// NewEngine wires the facade. A nil source ranks the bundled catalog only.
func NewEngine(
	store *catalog.Store,
	source *catalog.FallbackSource,
	l *ledger.Ledger,
	profiles ProfileService,
	notifications NotificationService,
	observers ...UseCaseObserver,
) Engine {
	if source == nil {
		source = catalog.NewFallbackSource(nil, store, recommend.Ranker(store), nil)
	}
	return &engine{
		store:         store,
		source:        source,
		ledger:        l,
		profiles:      profiles,
		notifications: notifications,
		observer:      useCaseObserverOrNoop(observers),
	}
}

// GetScoredModules ranks modules for careerID, or for the profile's career
// when careerID is empty. Unknown careers yield an empty list.
func (e *engine) GetScoredModules(ctx context.Context, careerID string) (resp *contract.ScoredModulesResponse, err error) {
	fields := map[string]any{"career": careerID}
	defer observeUseCase(ctx, e.observer, "get-scored-modules", time.Now(), fields, &err)

	id := strings.TrimSpace(careerID)
	if id == "" {
		prof, err := e.profiles.Get(ctx)
		if err != nil {
			return nil, err
		}
		id = prof.Profile.CareerPathID
	}
	resp = &contract.ScoredModulesResponse{
		CareerID: id,
		Modules:  []domain.ScoredModule{},
		Origin:   contract.OriginBundled,
	}
	if id == "" {
		return resp, nil
	}
	if resolved, ok := e.store.ResolveCareerGoal(id); ok {
		id = resolved
		resp.CareerID = id
	}
	if path, err := e.store.GetCareerPath(id); err == nil {
		resp.Career = &path
	}

	mods, origin := e.source.CareerModules(ctx, id)
	if origin == catalog.OriginUpstream {
		mods = recommend.Finalize(mods)
	}
	resp.Modules = recommend.Annotate(mods, e.ledger)
	resp.Origin = contract.Origin(origin)
	fields["career"] = id
	fields["origin"] = string(origin)
	fields["count"] = len(resp.Modules)
	return resp, nil
}

// GetRoadmapStages builds the five stages for semester, or for the profile
// semester when semester is 0.
func (e *engine) GetRoadmapStages(ctx context.Context, semester int) (*contract.RoadmapResponse, error) {
	prof, err := e.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if semester == 0 {
		semester = prof.Profile.Semester
	}
	rm := progress.BuildStages(semester, e.store, prof.Career)
	return &contract.RoadmapResponse{
		Semester: rm.Semester,
		Clamped:  rm.Clamped,
		Career:   prof.Career,
		Stages:   rm.Stages,
	}, nil
}

func (e *engine) GetCompletionSummary(ctx context.Context) (*progress.CompletionSummary, error) {
	prof, err := e.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	s := progress.Summarize(e.ledger, e.store, prof.Career)
	return &s, nil
}

func (e *engine) OnTrack(ctx context.Context) (*progress.OnTrackStatus, error) {
	prof, err := e.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	st := progress.OnTrack(e.ledger.EarnedCredits(), prof.Profile.Semester, e.store.TotalRequiredCredits())
	return &st, nil
}

// ToggleModule flips the completion of a catalog module. Codes missing from
// the catalog are rejected here even though the ledger would ignore them.
func (e *engine) ToggleModule(ctx context.Context, code string) (resp *contract.ToggleResponse, err error) {
	code = strings.TrimSpace(code)
	fields := map[string]any{"code": code}
	defer observeUseCase(ctx, e.observer, "toggle-module", time.Now(), fields, &err)

	if _, err = e.store.GetModule(code); err != nil {
		return nil, err
	}
	done, err := e.ledger.Toggle(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("toggling %s: %w", code, err)
	}
	fields["completed"] = done
	return &contract.ToggleResponse{
		Code:          code,
		Completed:     done,
		EarnedCredits: e.ledger.EarnedCredits(),
		Percentage:    e.ledger.CompletionPercentage(),
	}, nil
}

func (e *engine) ResetCompletions(ctx context.Context) (err error) {
	defer observeUseCase(ctx, e.observer, "reset-completions", time.Now(), nil, &err)
	return e.ledger.Reset(ctx)
}

func (e *engine) GetUnreadCount(ctx context.Context) (int, error) {
	return e.notifications.UnreadCount(ctx)
}

func (e *engine) MarkAllRead(ctx context.Context) (int, error) {
	return e.notifications.MarkAllRead(ctx)
}

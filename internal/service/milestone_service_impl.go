package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TPSE31/career-roadmap/internal/catalog"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/ledger"
	"github.com/TPSE31/career-roadmap/internal/notify"
	"github.com/TPSE31/career-roadmap/internal/progress"
)

type milestoneService struct {
	tracker       *notify.MilestoneTracker
	notifications NotificationService
	profiles      ProfileService
	store         *catalog.Store
	ledger        *ledger.Ledger
	sessionID     string
	now           func() time.Time
	observer      UseCaseObserver
}

func NewMilestoneService(
	tracker *notify.MilestoneTracker,
	notifications NotificationService,
	profiles ProfileService,
	store *catalog.Store,
	l *ledger.Ledger,
	sessionID string,
	now func() time.Time,
	observers ...UseCaseObserver,
) MilestoneService {
	if now == nil {
		now = time.Now
	}
	return &milestoneService{
		tracker:       tracker,
		notifications: notifications,
		profiles:      profiles,
		store:         store,
		ledger:        l,
		sessionID:     domain.CoalesceStr(sessionID, domain.DefaultSessionID),
		now:           now,
		observer:      useCaseObserverOrNoop(observers),
	}
}

// List evaluates milestones against the current state without storing the
// result.
func (s *milestoneService) List(ctx context.Context) ([]domain.MilestoneProgress, error) {
	ev, _, err := s.evaluate(ctx)
	return ev, err
}

func (s *milestoneService) SetCompleted(ctx context.Context, id int, done bool) (p *domain.MilestoneProgress, err error) {
	fields := map[string]any{"milestone_id": id, "done": done}
	defer observeUseCase(ctx, s.observer, "set-milestone-completed", time.Now(), fields, &err)

	changed, err := s.tracker.SetCompleted(ctx, id, done)
	if err != nil {
		return nil, err
	}
	fields["changed"] = changed
	got, err := s.tracker.Get(id)
	if err != nil {
		return nil, err
	}
	return &got, nil
}

// Sync stores the evaluated milestones and creates achievement and reminder
// notifications. Running it twice creates nothing new.
func (s *milestoneService) Sync(ctx context.Context) (resp *contract.MilestoneSyncResponse, err error) {
	fields := map[string]any{}
	defer observeUseCase(ctx, s.observer, "sync-milestones", time.Now(), fields, &err)

	ev, semester, err := s.evaluate(ctx)
	if err != nil {
		return nil, err
	}
	achieved, err := s.tracker.Apply(ctx, ev)
	if err != nil {
		return nil, err
	}

	existing, err := s.notifications.List(ctx, notify.Filter{})
	if err != nil {
		return nil, fmt.Errorf("loading notifications: %w", err)
	}
	now := s.now().UTC()
	// Notices cover every done milestone, not only the newly achieved ones,
	// so a notice lost to a failed Create is issued on the next sync.
	created := notify.AchievementNotices(ev, existing, s.sessionID, now)
	created = append(created, notify.Reminders(ev, semester, existing, s.sessionID, now)...)

	resp = &contract.MilestoneSyncResponse{
		Milestones:    ev,
		Achieved:      achieved,
		Notifications: []domain.Notification{},
	}
	for _, n := range created {
		if err = s.notifications.Create(ctx, n); err != nil {
			return nil, err
		}
		resp.Notifications = append(resp.Notifications, *n)
	}
	fields["achieved"] = len(achieved)
	fields["notifications"] = len(resp.Notifications)
	return resp, nil
}

// evaluate runs the milestone rules and keeps manually completed milestones
// done even when their rule does not hold yet.
func (s *milestoneService) evaluate(ctx context.Context) ([]domain.MilestoneProgress, int, error) {
	prof, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, 0, err
	}
	stored := s.tracker.Achieved()
	done, total := progress.MandatoryCounts(s.store, s.ledger)
	ev := progress.EvaluateMilestones(s.store.Milestones(), progress.MilestoneInput{
		EarnedCredits:  s.ledger.EarnedCredits(),
		MandatoryDone:  done,
		MandatoryTotal: total,
		CareerSelected: prof.Profile.HasCareer(),
		Stored:         stored,
		Now:            s.now().UTC(),
	})

	frontier := false
	for i := range ev {
		if ev[i].AchievedAt == nil {
			if at, ok := stored[ev[i].ID]; ok && at != nil {
				ev[i].Status = domain.MilestoneCompleted
				ev[i].AchievedAt = at
				continue
			}
			if !frontier {
				ev[i].Status = domain.MilestoneInProgress
				frontier = true
			} else {
				ev[i].Status = domain.MilestoneLocked
			}
		}
	}
	return ev, prof.Profile.Semester, nil
}

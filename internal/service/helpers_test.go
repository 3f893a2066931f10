package service

import (
	"context"
	"sync"
	"testing"

	"github.com/TPSE31/career-roadmap/internal/catalog"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/ledger"
	"github.com/TPSE31/career-roadmap/internal/notify"
	"github.com/TPSE31/career-roadmap/internal/recommend"
	"github.com/TPSE31/career-roadmap/internal/repository"
	"github.com/TPSE31/career-roadmap/internal/testutil"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events)
	return o.events[len(o.events)-1]
}

// stack is a fully wired set of services over an in-memory database.
type stack struct {
	store         *catalog.Store
	completions   *testutil.MemoryCompletionRepo
	ledger        *ledger.Ledger
	tracker       *notify.MilestoneTracker
	profiles      ProfileService
	notifications NotificationService
	milestones    MilestoneService
	engine        Engine
	observer      *recordingObserver
}

func newStack(t *testing.T, completed ...string) *stack {
	return newStackWithUpstream(t, nil, completed...)
}

func newStackWithUpstream(t *testing.T, upstream catalog.Upstream, completed ...string) *stack {
	t.Helper()
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	store, err := catalog.Bundled()
	require.NoError(t, err)

	completions := testutil.NewMemoryCompletionRepo(completed...)
	l, err := ledger.Open(ctx, completions, store)
	require.NoError(t, err)

	mgr, err := notify.NewManager(ctx,
		repository.NewSQLiteNotificationRepo(database, domain.DefaultSessionID),
		testutil.Clock(testutil.FixedNow))
	require.NoError(t, err)
	tracker, err := notify.NewMilestoneTracker(ctx, store.Milestones(),
		repository.NewSQLiteMilestoneRepo(database, testutil.NewTestUoW(database), domain.DefaultSessionID),
		testutil.Clock(testutil.FixedNow))
	require.NoError(t, err)

	obs := &recordingObserver{}
	source := catalog.NewFallbackSource(upstream, store, recommend.Ranker(store), nil)
	profiles := NewProfileService(repository.NewSQLiteProfileRepo(database), store, domain.DefaultSessionID, obs)
	notifications := NewNotificationService(mgr, obs)

	return &stack{
		store:         store,
		completions:   completions,
		ledger:        l,
		tracker:       tracker,
		profiles:      profiles,
		notifications: notifications,
		milestones: NewMilestoneService(tracker, notifications, profiles, store, l,
			domain.DefaultSessionID, testutil.Clock(testutil.FixedNow), obs),
		engine:   NewEngine(store, source, l, profiles, notifications, obs),
		observer: obs,
	}
}

func codesOf(mods []domain.ScoredModule) []string {
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = m.Code
	}
	return out
}

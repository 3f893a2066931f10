package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/repository"
	"github.com/TPSE31/career-roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyMilestoneStore fails the failOn-th write and every write after it.
type flakyMilestoneStore struct {
	MilestoneStore
	failOn int
	writes int
}

func (f *flakyMilestoneStore) Upsert(ctx context.Context, p *domain.MilestoneProgress) error {
	f.writes++
	if f.failOn > 0 && f.writes >= f.failOn {
		return errors.New("write failed")
	}
	return f.MilestoneStore.Upsert(ctx, p)
}

func (f *flakyMilestoneStore) UpsertAll(ctx context.Context, ps []*domain.MilestoneProgress) error {
	f.writes += len(ps)
	if f.failOn > 0 && f.writes >= f.failOn {
		return errors.New("write failed")
	}
	return f.MilestoneStore.UpsertAll(ctx, ps)
}

func testDefs() []domain.MilestoneDefinition {
	return []domain.MilestoneDefinition{
		testutil.NewTestMilestone(1, "30 CP", 30, 2),
		testutil.NewTestMilestone(2, "60 CP", 60, 3),
		testutil.NewTestMilestone(3, "90 CP", 90, 4),
	}
}

func newTracker(t *testing.T, store MilestoneStore) *MilestoneTracker {
	t.Helper()
	tr, err := NewMilestoneTracker(context.Background(), testDefs(), store, testutil.Clock(testutil.FixedNow))
	require.NoError(t, err)
	return tr
}

func sqliteMilestones(t *testing.T) MilestoneStore {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteMilestoneRepo(database, testutil.NewTestUoW(database), domain.DefaultSessionID)
}

func TestMilestoneTracker_StartsLocked(t *testing.T) {
	tr := newTracker(t, sqliteMilestones(t))

	for _, p := range tr.List() {
		assert.Equal(t, domain.MilestoneLocked, p.Status)
		assert.False(t, p.IsDone())
	}
}

func TestMilestoneTracker_SetCompleted(t *testing.T) {
	store := sqliteMilestones(t)
	tr := newTracker(t, store)
	ctx := context.Background()

	changed, err := tr.SetCompleted(ctx, 2, true)
	require.NoError(t, err)
	assert.True(t, changed)

	p, err := tr.Get(2)
	require.NoError(t, err)
	require.NotNil(t, p.AchievedAt)
	assert.Equal(t, domain.MilestoneCompleted, p.Status)

	// Completing again keeps the original timestamp.
	tr.now = testutil.Clock(testutil.FixedNow.Add(time.Hour))
	changed, err = tr.SetCompleted(ctx, 2, true)
	require.NoError(t, err)
	assert.False(t, changed)
	p, _ = tr.Get(2)
	assert.True(t, testutil.FixedNow.Equal(*p.AchievedAt))

	reloaded := newTracker(t, store)
	p, _ = reloaded.Get(2)
	assert.True(t, p.IsDone(), "state is persisted")

	changed, err = tr.SetCompleted(ctx, 2, false)
	require.NoError(t, err)
	assert.True(t, changed)
	p, _ = tr.Get(2)
	assert.Nil(t, p.AchievedAt)
}

func TestMilestoneTracker_SetCompletedUnknown(t *testing.T) {
	tr := newTracker(t, sqliteMilestones(t))
	_, err := tr.SetCompleted(context.Background(), 42, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMilestoneTracker_SetCompletedFailureRollsBack(t *testing.T) {
	store := &flakyMilestoneStore{MilestoneStore: sqliteMilestones(t), failOn: 1}
	tr := newTracker(t, store)

	_, err := tr.SetCompleted(context.Background(), 1, true)
	require.Error(t, err)

	p, _ := tr.Get(1)
	assert.False(t, p.IsDone())
	assert.Equal(t, domain.MilestoneLocked, p.Status)
}

func TestMilestoneTracker_ApplyReportsNewlyDone(t *testing.T) {
	tr := newTracker(t, sqliteMilestones(t))
	now := testutil.FixedNow

	evaluated := []domain.MilestoneProgress{
		{MilestoneDefinition: testDefs()[0], Status: domain.MilestoneCompleted, AchievedAt: &now, Explanation: "30/30"},
		{MilestoneDefinition: testDefs()[1], Status: domain.MilestoneInProgress, Explanation: "45/60"},
		{MilestoneDefinition: testDefs()[2], Status: domain.MilestoneLocked},
	}
	done, err := tr.Apply(context.Background(), evaluated)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, 1, done[0].ID)

	p, _ := tr.Get(2)
	assert.Equal(t, domain.MilestoneInProgress, p.Status)
	assert.Equal(t, "45/60", p.Explanation)

	done, err = tr.Apply(context.Background(), evaluated)
	require.NoError(t, err)
	assert.Empty(t, done, "second apply finds nothing new")
}

func TestMilestoneTracker_ApplyFailureRestoresAll(t *testing.T) {
	store := &flakyMilestoneStore{MilestoneStore: sqliteMilestones(t), failOn: 2}
	tr := newTracker(t, store)
	now := testutil.FixedNow

	_, err := tr.Apply(context.Background(), []domain.MilestoneProgress{
		{MilestoneDefinition: testDefs()[0], Status: domain.MilestoneCompleted, AchievedAt: &now},
		{MilestoneDefinition: testDefs()[1], Status: domain.MilestoneCompleted, AchievedAt: &now},
	})
	require.Error(t, err)

	for _, p := range tr.List() {
		assert.False(t, p.IsDone(), p.Label)
	}
}

func TestMilestoneTracker_ApplyFailureWritesNoRows(t *testing.T) {
	database := testutil.NewTestDB(t)
	errInjected := errors.New("disk full")
	// Exec 2 is the second row of the batch.
	failing := repository.NewSQLiteMilestoneRepo(database,
		&testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: errInjected}, domain.DefaultSessionID)
	tr := newTracker(t, failing)
	now := testutil.FixedNow

	_, err := tr.Apply(context.Background(), []domain.MilestoneProgress{
		{MilestoneDefinition: testDefs()[0], Status: domain.MilestoneCompleted, AchievedAt: &now},
		{MilestoneDefinition: testDefs()[1], Status: domain.MilestoneCompleted, AchievedAt: &now},
	})
	require.ErrorIs(t, err, errInjected)

	stored, err := failing.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored, "the first row is rolled back with the second")
	for _, p := range tr.List() {
		assert.False(t, p.IsDone(), p.Label)
	}
}

func TestMilestoneTracker_Achieved(t *testing.T) {
	tr := newTracker(t, sqliteMilestones(t))
	_, err := tr.SetCompleted(context.Background(), 3, true)
	require.NoError(t, err)

	got := tr.Achieved()
	require.Len(t, got, 1)
	assert.True(t, testutil.FixedNow.Equal(*got[3]))
}

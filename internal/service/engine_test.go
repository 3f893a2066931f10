package service

import (
	"context"
	"errors"
	"testing"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUpstream struct {
	modules []domain.ScoredModule
	err     error
}

func (s stubUpstream) FetchCareerPaths(context.Context) ([]domain.CareerPath, error) {
	return nil, s.err
}

func (s stubUpstream) FetchCareerModules(context.Context, string) ([]domain.ScoredModule, error) {
	return s.modules, s.err
}

func TestGetScoredModules_Bundled(t *testing.T) {
	s := newStack(t, "20-00-0041")

	resp, err := s.engine.GetScoredModules(context.Background(), "security_engineer")
	require.NoError(t, err)

	assert.Equal(t, contract.OriginBundled, resp.Origin)
	require.NotNil(t, resp.Career)
	assert.Equal(t, "IT Security Engineer", resp.Career.TitleEN)
	assert.Equal(t, []string{
		"20-00-3007", "20-00-0041", "20-00-0045", "20-00-3001", "20-00-0037", "20-00-3002",
	}, codesOf(resp.Modules))
	assert.True(t, resp.Modules[1].Completed)
	assert.False(t, resp.Modules[0].Completed)
	assert.Equal(t, domain.PhaseCore, resp.Modules[0].Phase)
}

func TestGetScoredModules_ResolvesAlias(t *testing.T) {
	s := newStack(t)

	resp, err := s.engine.GetScoredModules(context.Background(), "Cybersecurity Specialist")
	require.NoError(t, err)
	assert.Equal(t, "security_engineer", resp.CareerID)
	assert.Len(t, resp.Modules, 6)
}

func TestGetScoredModules_UnknownCareerIsEmpty(t *testing.T) {
	s := newStack(t)

	resp, err := s.engine.GetScoredModules(context.Background(), "astronaut")
	require.NoError(t, err)
	assert.NotNil(t, resp.Modules)
	assert.Empty(t, resp.Modules)
	assert.Nil(t, resp.Career)
}

func TestGetScoredModules_DefaultsToProfileCareer(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	resp, err := s.engine.GetScoredModules(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, resp.Modules, "no career selected yet")

	_, err = s.profiles.SetCareer(ctx, "software_engineer")
	require.NoError(t, err)

	resp, err = s.engine.GetScoredModules(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "software_engineer", resp.CareerID)
	assert.Len(t, resp.Modules, 8)
}

func TestGetScoredModules_UpstreamIsFinalized(t *testing.T) {
	codes := []string{
		"20-00-1141", "20-00-0004", "20-00-0900", "04-10-0118", "20-00-0036",
		"20-00-0037", "20-00-0038", "04-10-0119", "20-00-0039", "20-00-0040",
	}
	pre := make([]domain.ScoredModule, 0, len(codes))
	for i, score := range []int{10, 90, 30, 60, 45, 20, 70, 5, 80, 50} {
		pre = append(pre, domain.ScoredModule{
			Module:         domain.Module{Code: codes[i], Credits: 5},
			RelevanceScore: score,
		})
	}
	s := newStackWithUpstream(t, stubUpstream{modules: pre}, "20-00-0004")

	resp, err := s.engine.GetScoredModules(context.Background(), "software_engineer")
	require.NoError(t, err)

	assert.Equal(t, contract.OriginUpstream, resp.Origin)
	require.Len(t, resp.Modules, 8)
	assert.Equal(t, "20-00-0004", resp.Modules[0].Code)
	assert.True(t, resp.Modules[0].Completed)
	for i := 1; i < len(resp.Modules); i++ {
		assert.GreaterOrEqual(t, resp.Modules[i-1].RelevanceScore, resp.Modules[i].RelevanceScore)
	}
	assert.Equal(t, "20-00-0900", resp.Modules[6].Code)
	assert.Equal(t, domain.PhaseRecommended, resp.Modules[6].Phase)
	assert.Equal(t, domain.PhaseSupplementary, resp.Modules[7].Phase)
}

func TestGetScoredModules_UpstreamUnknownCodesAreDropped(t *testing.T) {
	s := newStackWithUpstream(t, stubUpstream{modules: []domain.ScoredModule{
		{Module: domain.Module{Code: "99-99-9999", Credits: 5}, RelevanceScore: 90},
		{Module: domain.Module{Code: "20-00-0004", Credits: 10}, RelevanceScore: 60},
	}})
	ctx := context.Background()

	resp, err := s.engine.GetScoredModules(ctx, "software_engineer")
	require.NoError(t, err)
	assert.Equal(t, contract.OriginUpstream, resp.Origin)
	assert.Equal(t, []string{"20-00-0004"}, codesOf(resp.Modules))

	toggled, err := s.engine.ToggleModule(ctx, resp.Modules[0].Code)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
}

func TestGetScoredModules_UpstreamFailureFallsBack(t *testing.T) {
	s := newStackWithUpstream(t, stubUpstream{err: errors.New("connection refused")})

	resp, err := s.engine.GetScoredModules(context.Background(), "security_engineer")
	require.NoError(t, err)
	assert.Equal(t, contract.OriginBundled, resp.Origin)
	assert.Equal(t, "20-00-3007", resp.Modules[0].Code)
}

func TestGetRoadmapStages(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	resp, err := s.engine.GetRoadmapStages(ctx, 3)
	require.NoError(t, err)
	require.Len(t, resp.Stages, 5)
	assert.True(t, resp.Stages[0].Completed)
	assert.True(t, resp.Stages[1].Current)
	cur, ok := resp.Current()
	require.True(t, ok)
	assert.Equal(t, "Core Studies", cur.Name)

	resp, err = s.engine.GetRoadmapStages(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Semester)
	assert.True(t, resp.Clamped)
	assert.True(t, resp.Stages[3].Current)
}

func TestGetRoadmapStages_UsesProfile(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	_, err := s.profiles.Update(ctx, contract.ProfileUpdate{
		Semester: intPtr(5),
		CareerID: strPtr("ml_engineer"),
	})
	require.NoError(t, err)

	resp, err := s.engine.GetRoadmapStages(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Semester)
	require.NotNil(t, resp.Career)
	assert.Equal(t, "Machine Learning Engineer", resp.Stages[4].Name)
	assert.True(t, resp.Stages[2].Current)
}

func TestToggleModule(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	resp, err := s.engine.ToggleModule(ctx, "20-00-0004")
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Equal(t, 10, resp.EarnedCredits)
	assert.Equal(t, 6, resp.Percentage)
	assert.Equal(t, []string{"20-00-0004"}, s.completions.Stored())

	resp, err = s.engine.ToggleModule(ctx, "20-00-0004")
	require.NoError(t, err)
	assert.False(t, resp.Completed)
	assert.Empty(t, s.completions.Stored())

	ev := s.observer.last(t)
	assert.Equal(t, "toggle-module", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, false, ev.Fields["completed"])
}

func TestToggleModule_UnknownCode(t *testing.T) {
	s := newStack(t)

	_, err := s.engine.ToggleModule(context.Background(), "99-99-9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ev := s.observer.last(t)
	assert.False(t, ev.Success)
	assert.Error(t, ev.Err)
}

func TestToggleModule_SaveFailureRollsBack(t *testing.T) {
	s := newStack(t)
	s.completions.FailSave = errors.New("disk full")

	_, err := s.engine.ToggleModule(context.Background(), "20-00-0004")
	require.ErrorIs(t, err, s.completions.FailSave)
	assert.False(t, s.ledger.IsComplete("20-00-0004"))
	assert.Zero(t, s.ledger.EarnedCredits())
}

func TestResetCompletions(t *testing.T) {
	s := newStack(t, "20-00-0004", "20-00-0037")

	require.NoError(t, s.engine.ResetCompletions(context.Background()))
	assert.Zero(t, s.ledger.EarnedCredits())
	assert.Empty(t, s.completions.Stored())
}

func TestGetCompletionSummary(t *testing.T) {
	s := newStack(t, "20-00-0900", "04-10-0118")
	ctx := context.Background()

	sum, err := s.engine.GetCompletionSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 14, sum.EarnedCredits)
	assert.Equal(t, 8, sum.CompletionPercentage)
	assert.Equal(t, 180, sum.TotalRequired)
	assert.Nil(t, sum.Path)

	_, err = s.profiles.SetCareer(ctx, "security_engineer")
	require.NoError(t, err)
	sum, err = s.engine.GetCompletionSummary(ctx)
	require.NoError(t, err)
	require.NotNil(t, sum.Path)
	assert.Equal(t, 30, sum.Path.TotalCP)
	assert.Zero(t, sum.Path.CompletedCount)
}

func TestOnTrack(t *testing.T) {
	s := newStack(t, "20-00-0004", "20-00-0037", "04-10-0118", "04-10-0119", "20-00-0900", "20-00-0036", "20-00-0038")
	ctx := context.Background()
	_, err := s.profiles.SetSemester(ctx, 2)
	require.NoError(t, err)

	st, err := s.engine.OnTrack(ctx)
	require.NoError(t, err)
	assert.Equal(t, 53, st.EarnedCredits)
	assert.Equal(t, 60, st.ExpectedCredits)
	assert.Equal(t, domain.TrackAtRisk, st.Status)
}

func TestEngine_Notifications(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()
	require.NoError(t, s.notifications.Create(ctx, testutil.NewTestNotification("a")))
	require.NoError(t, s.notifications.Create(ctx, testutil.NewTestNotification("b")))

	count, err := s.engine.GetUnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	changed, err := s.engine.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)

	changed, err = s.engine.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, changed)

	count, _ = s.engine.GetUnreadCount(ctx)
	assert.Zero(t, count)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

package progress

import (
	"testing"

	"github.com/TPSE31/career-roadmap/internal/catalog"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundled(t *testing.T) *catalog.Store {
	t.Helper()
	s, err := catalog.Bundled()
	require.NoError(t, err)
	return s
}

func securityPath(t *testing.T, cat *catalog.Store) *domain.CareerPath {
	t.Helper()
	p, err := cat.GetCareerPath("security_engineer")
	require.NoError(t, err)
	return &p
}

func TestBuildStages_ExactlyOneCurrentPerSemester(t *testing.T) {
	cat := bundled(t)
	wantCurrent := map[int]int{1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 4, 7: 4, 8: 4}

	for sem := domain.MinSemester; sem <= domain.MaxSemester; sem++ {
		rm := BuildStages(sem, cat, nil)
		require.Len(t, rm.Stages, 5)

		current := 0
		for _, s := range rm.Stages {
			if s.Current {
				current++
				assert.Equal(t, wantCurrent[sem], s.Ordinal, "semester %d", sem)
			}
			assert.False(t, s.Current && s.Completed, "semester %d stage %d", sem, s.Ordinal)
		}
		assert.Equal(t, 1, current, "semester %d", sem)
		assert.False(t, rm.Stages[3].Completed, "thesis is never auto-completed")
		assert.False(t, rm.Stages[4].Current)
		assert.False(t, rm.Stages[4].Completed)
	}
}

func TestBuildStages_SemesterThree(t *testing.T) {
	rm := BuildStages(3, bundled(t), nil)

	assert.True(t, rm.Stages[0].Completed)
	assert.True(t, rm.Stages[1].Current)
	for _, s := range rm.Stages[2:] {
		assert.False(t, s.Current, s.Name)
		assert.False(t, s.Completed, s.Name)
	}
	cur, ok := rm.Current()
	require.True(t, ok)
	assert.Equal(t, "Core Studies", cur.Name)
}

func TestBuildStages_CreditTargets(t *testing.T) {
	rm := BuildStages(1, bundled(t), nil)

	targets := make([]int, len(rm.Stages))
	for i, s := range rm.Stages {
		targets[i] = s.CreditTarget
	}
	assert.Equal(t, []int{59, 35, 88, 12, 0}, targets)
	assert.Len(t, rm.Stages[0].Modules, 9)
	assert.Contains(t, rm.Stages[0].Modules, "Algorithms and Data Structures")
}

func TestBuildStages_ClampsSemester(t *testing.T) {
	cat := bundled(t)

	rm := BuildStages(0, cat, nil)
	assert.Equal(t, 1, rm.Semester)
	assert.True(t, rm.Clamped)
	assert.True(t, rm.Stages[0].Current)

	rm = BuildStages(12, cat, nil)
	assert.Equal(t, 8, rm.Semester)
	assert.True(t, rm.Clamped)
	assert.True(t, rm.Stages[3].Current)

	rm = BuildStages(5, cat, nil)
	assert.False(t, rm.Clamped)
}

func TestBuildStages_CareerPathNamesElectivesAndGoal(t *testing.T) {
	cat := bundled(t)
	rm := BuildStages(5, cat, securityPath(t, cat))

	stage := rm.Stages[2]
	assert.Contains(t, stage.Modules, "IT Security")
	assert.Contains(t, stage.Modules, "Operating Systems")
	assert.NotContains(t, stage.Modules, "Computer System Security", "mandatory recommendations are not electives")

	assert.Equal(t, "IT Security Engineer", rm.Stages[4].Name)
}

func TestBuildStages_NoCareerUsesGenericName(t *testing.T) {
	rm := BuildStages(2, bundled(t), nil)
	assert.Equal(t, "Career", rm.Stages[4].Name)
}

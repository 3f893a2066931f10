package catalog

import (
	"testing"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundled(t *testing.T) *Store {
	t.Helper()
	s, err := Bundled()
	require.NoError(t, err)
	return s
}

func TestBundled_LoadsFullCurriculum(t *testing.T) {
	s := bundled(t)

	assert.Len(t, s.ListModules(), 42)
	assert.Len(t, s.ListCareerPaths(), 10)
	assert.Equal(t, domain.TotalRequiredCredits, s.TotalRequiredCredits())
	assert.Equal(t, domain.MandatoryCredits, s.MandatoryCredits())
	assert.Equal(t, domain.ThesisCredits, s.ThesisCredits())
	assert.Len(t, s.Milestones(), 9)
}

func TestBundled_ListModulesKeepsInsertionOrder(t *testing.T) {
	mods := bundled(t).ListModules()
	require.NotEmpty(t, mods)
	assert.Equal(t, "20-00-1141", mods[0].Code)
	assert.Equal(t, "20-00-0004", mods[1].Code)
	assert.Equal(t, "SG-0005", mods[len(mods)-1].Code)
}

func TestBundled_MandatoryModulesHaveSemesters(t *testing.T) {
	for _, m := range bundled(t).ModulesByCategory(domain.CategoryMandatory) {
		require.NotNil(t, m.Semester, m.Code)
		assert.True(t, m.Mandatory, m.Code)
	}
}

func TestBundled_EveryRecommendedCodeResolves(t *testing.T) {
	s := bundled(t)
	for _, p := range s.ListCareerPaths() {
		assert.NotEmpty(t, p.Keywords, p.ID)
		for _, code := range p.RecommendedModules {
			_, err := s.GetModule(code)
			assert.NoError(t, err, "%s -> %s", p.ID, code)
		}
	}
}

func TestGetModule_NotFound(t *testing.T) {
	_, err := bundled(t).GetModule("99-99-9999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCareerPath(t *testing.T) {
	s := bundled(t)

	p, err := s.GetCareerPath("security_engineer")
	require.NoError(t, err)
	assert.Equal(t, "IT Security Engineer", p.TitleEN)
	assert.Equal(t, "55k - 95k €", p.SalaryRange())

	_, err = s.GetCareerPath("astronaut")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCareerPaths_ReturnsCopy(t *testing.T) {
	s := bundled(t)
	paths := s.ListCareerPaths()
	paths[0].TitleEN = "mutated"

	again := s.ListCareerPaths()
	assert.NotEqual(t, "mutated", again[0].TitleEN)
}

func TestResolveCareerGoal(t *testing.T) {
	s := bundled(t)
	cases := []struct {
		goal string
		want string
		ok   bool
	}{
		{"security_engineer", "security_engineer", true},
		{"Cybersecurity Specialist", "security_engineer", true},
		{"ai researcher", "ml_engineer", true},
		{"  Game Developer ", "frontend_developer", true},
		{"Cloud Architect", "cloud_architect", true},
		{"Astronaut", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := s.ResolveCareerGoal(tc.goal)
		assert.Equal(t, tc.ok, ok, tc.goal)
		assert.Equal(t, tc.want, got, tc.goal)
	}
}

func TestMandatoryForSemesters_FoundationSpan(t *testing.T) {
	mods := bundled(t).MandatoryForSemesters(1, 2)
	assert.Len(t, mods, 9)
	var sum int
	for _, m := range mods {
		sum += m.Credits
	}
	assert.Equal(t, 59, sum)
}

func TestCreditRequirement(t *testing.T) {
	s := bundled(t)
	assert.Equal(t, 114, s.CreditRequirement(domain.CategoryMandatory))
	assert.Equal(t, 42, s.CreditRequirement(domain.CategoryElectiveRequired))
	assert.Equal(t, 26, s.CreditRequirement(domain.CategoryElectiveOpen))
	assert.Equal(t, 6, s.CreditRequirement(domain.CategoryGeneralStudies))
}

func TestCreditRequirements_IncludesThesisAndIsCopy(t *testing.T) {
	s := bundled(t)
	req := s.CreditRequirements()
	assert.Equal(t, 12, req["thesis"])
	assert.Equal(t, 12, s.ThesisCredits())

	req["thesis"] = 0
	assert.Equal(t, 12, s.ThesisCredits())
}

func TestNew_DefaultsWithoutOptions(t *testing.T) {
	sem := 1
	s := New([]domain.Module{
		{Code: "A", Credits: 5, Category: domain.CategoryMandatory, Semester: &sem},
	}, nil)
	assert.Equal(t, domain.TotalRequiredCredits, s.TotalRequiredCredits())
	assert.Equal(t, 5, s.CreditRequirement(domain.CategoryMandatory))
	assert.Equal(t, 0, s.CreditRequirement(domain.CategoryElectiveOpen))
	assert.Empty(t, s.Milestones())
}

func TestKeywordsFromSkills(t *testing.T) {
	got := KeywordsFromSkills([]string{"Docker and Kubernetes", "Linux and scripting (Bash, Python)", "docker"})
	assert.Equal(t, []string{"docker", "kubernetes", "linux", "scripting", "bash", "python"}, got)
}

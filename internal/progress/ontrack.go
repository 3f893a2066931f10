package progress

import (
	"fmt"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// AtRiskMargin is how far behind the expected credits a student may fall
// before being off track.
const AtRiskMargin = 15

// OnTrackStatus compares earned credits with the regular study pace.
type OnTrackStatus struct {
	Status             domain.TrackStatus
	Message            string
	EarnedCredits      int
	ExpectedCredits    int
	Semester           int
	RemainingSemesters int
	RecommendedActions []string
}

// OnTrack classifies earned against semester × 30 expected credits.
func OnTrack(earned, semester, totalRequired int) OnTrackStatus {
	sem, _ := domain.ClampSemester(semester)
	expected := sem * domain.CreditsPerSemester
	behind := expected - earned

	st := OnTrackStatus{
		EarnedCredits:      earned,
		ExpectedCredits:    expected,
		Semester:           sem,
		RemainingSemesters: remainingSemesters(earned, totalRequired),
	}
	switch {
	case earned >= expected:
		st.Status = domain.TrackOnTrack
		st.Message = "Great! You are on schedule for your expected graduation."
		st.RecommendedActions = []string{"Continue with your current pace", "Consider taking electives"}
	case earned >= expected-AtRiskMargin:
		st.Status = domain.TrackAtRisk
		st.Message = fmt.Sprintf("You are %d CP behind schedule.", behind)
		st.RecommendedActions = []string{"Complete 2 more modules this semester", "Visit study counseling"}
	default:
		st.Status = domain.TrackOffTrack
		st.Message = fmt.Sprintf("You need to catch up. You are %d CP behind.", behind)
		st.RecommendedActions = []string{"Schedule a meeting with study advisor", "Consider taking summer courses"}
	}
	return st
}

// remainingSemesters is the number of regular-pace semesters still needed.
func remainingSemesters(earned, total int) int {
	missing := total - earned
	if missing <= 0 {
		return 0
	}
	return (missing + domain.CreditsPerSemester - 1) / domain.CreditsPerSemester
}

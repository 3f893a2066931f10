package domain

const (
	// TotalRequiredCredits is the credit total required for the degree.
	TotalRequiredCredits = 180

	// MandatoryCredits is the credit sum of all mandatory modules.
	MandatoryCredits = 114

	// ThesisCredits is the credit value of the bachelor thesis.
	ThesisCredits = 12

	// CreditsPerSemester is the regular study pace.
	CreditsPerSemester = 30

	MinSemester = 1
	MaxSemester = 8

	// Roadmap stage boundaries by declared semester.
	FoundationLastSemester = 2
	CoreLastSemester       = 4
	SpecializationSemester = 5
	ThesisFirstSemester    = 6
)

// Stage ordinals.
const (
	StageFoundation = iota + 1
	StageCoreStudies
	StageSpecialization
	StageThesis
	StageCareer
)

// RoadmapStage is one of the five ordered phases of the study plan. It is
// derived from the declared semester and never stored.
type RoadmapStage struct {
	Ordinal      int
	Name         string
	Description  string
	Semesters    string
	Completed    bool
	Current      bool
	CreditTarget int
	Modules      []string
}

// ClampSemester restricts s to [MinSemester, MaxSemester] and reports
// whether a correction was applied.
func ClampSemester(s int) (int, bool) {
	switch {
	case s < MinSemester:
		return MinSemester, true
	case s > MaxSemester:
		return MaxSemester, true
	default:
		return s, false
	}
}

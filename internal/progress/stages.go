// Package progress derives the roadmap stages, credit summary, on-track
// status and milestone states of a student from the catalog and the
// completion ledger. Everything here is pure.
package progress

import (
	"github.com/TPSE31/career-roadmap/internal/domain"
)

// Catalog is the catalog view the aggregator reads.
type Catalog interface {
	ListModules() []domain.Module
	GetModule(code string) (domain.Module, error)
	MandatoryForSemesters(from, to int) []domain.Module
	CreditRequirement(cat domain.Category) int
	ThesisCredits() int
	TotalRequiredCredits() int
}

// Roadmap is the five-stage view for one declared semester.
type Roadmap struct {
	Semester int
	Clamped  bool
	Stages   []domain.RoadmapStage
}

// Current returns the current stage, if any.
func (r Roadmap) Current() (domain.RoadmapStage, bool) {
	for _, s := range r.Stages {
		if s.Current {
			return s, true
		}
	}
	return domain.RoadmapStage{}, false
}

// BuildStages lays out the roadmap for semester. Out-of-range semesters are
// clamped to 1..8. path may be nil when no career has been chosen.
func BuildStages(semester int, cat Catalog, path *domain.CareerPath) Roadmap {
	sem, clamped := domain.ClampSemester(semester)

	foundation := cat.MandatoryForSemesters(domain.MinSemester, domain.FoundationLastSemester)
	core := cat.MandatoryForSemesters(domain.FoundationLastSemester+1, domain.CoreLastSemester)
	specialization := cat.MandatoryForSemesters(domain.SpecializationSemester, domain.SpecializationSemester)

	specTarget := creditSum(specialization) +
		cat.CreditRequirement(domain.CategoryElectiveRequired) +
		cat.CreditRequirement(domain.CategoryElectiveOpen)

	careerName := "Career"
	careerDesc := "Your professional career goal"
	if path != nil {
		careerName = path.TitleEN
		careerDesc = path.DescriptionEN
	}

	stages := []domain.RoadmapStage{
		{
			Ordinal:      domain.StageFoundation,
			Name:         "Foundation",
			Description:  "Programming, mathematics and computer science fundamentals",
			Semesters:    "Semester 1-2",
			Completed:    sem > domain.FoundationLastSemester,
			Current:      sem <= domain.FoundationLastSemester,
			CreditTarget: creditSum(foundation),
			Modules:      names(foundation),
		},
		{
			Ordinal:      domain.StageCoreStudies,
			Name:         "Core Studies",
			Description:  "Essential computer science topics and theory",
			Semesters:    "Semester 3-4",
			Completed:    sem > domain.CoreLastSemester,
			Current:      sem > domain.FoundationLastSemester && sem <= domain.CoreLastSemester,
			CreditTarget: creditSum(core),
			Modules:      names(core),
		},
		{
			Ordinal:      domain.StageSpecialization,
			Name:         "Specialization",
			Description:  "Choose your focus area and dive deep",
			Semesters:    "Semester 5",
			Completed:    sem > domain.SpecializationSemester,
			Current:      sem == domain.SpecializationSemester,
			CreditTarget: specTarget,
			Modules:      append(names(specialization), recommendedElectives(cat, path)...),
		},
		{
			Ordinal:      domain.StageThesis,
			Name:         "Thesis",
			Description:  "Final research project",
			Semesters:    "Semester 6",
			Completed:    false,
			Current:      sem >= domain.ThesisFirstSemester,
			CreditTarget: cat.ThesisCredits(),
			Modules:      []string{"Bachelor thesis"},
		},
		{
			Ordinal:      domain.StageCareer,
			Name:         careerName,
			Description:  careerDesc,
			Semesters:    "After graduation",
			Completed:    false,
			Current:      false,
			CreditTarget: 0,
			Modules:      []string{"Job applications", "Interviews", "Start your career"},
		},
	}

	return Roadmap{Semester: sem, Clamped: clamped, Stages: stages}
}

// recommendedElectives names the non-mandatory modules the path recommends,
// in the path's order.
func recommendedElectives(cat Catalog, path *domain.CareerPath) []string {
	if path == nil {
		return nil
	}
	var out []string
	for _, code := range path.RecommendedModules {
		m, err := cat.GetModule(code)
		if err != nil || m.Category == domain.CategoryMandatory {
			continue
		}
		out = append(out, m.DisplayName())
	}
	return out
}

func creditSum(mods []domain.Module) int {
	total := 0
	for _, m := range mods {
		total += m.Credits
	}
	return total
}

func names(mods []domain.Module) []string {
	out := make([]string, len(mods))
	for i, m := range mods {
		out[i] = m.DisplayName()
	}
	return out
}

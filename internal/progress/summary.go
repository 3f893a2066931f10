package progress

import (
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/ledger"
)

// Completion is the ledger view the summary needs.
type Completion interface {
	IsComplete(code string) bool
	EarnedCredits() int
	CompletionPercentage() int
	EarnedByCategory() map[domain.Category]int
}

// CategoryProgress is earned against required credits for one category.
type CategoryProgress struct {
	Category domain.Category
	Earned   int
	Required int
}

// Percent is the rounded share of the requirement earned, clamped to 0..100.
func (c CategoryProgress) Percent() int {
	return ledger.Percentage(c.Earned, c.Required)
}

// PathProgress is the recommended module set of the selected career with
// completion annotations.
type PathProgress struct {
	CareerID       string
	Title          string
	Modules        []domain.ScoredModule
	TotalCP        int
	ModuleCount    int
	CompletedCount int
	CompletedCP    int
}

// CompletionSummary is the degree-level progress snapshot.
type CompletionSummary struct {
	EarnedCredits        int
	TotalRequired        int
	CompletionPercentage int
	Categories           []CategoryProgress
	Path                 *PathProgress
}

// Summarize combines the ledger and catalog into a CompletionSummary. path
// may be nil.
func Summarize(l Completion, cat Catalog, path *domain.CareerPath) CompletionSummary {
	by := l.EarnedByCategory()
	cats := make([]CategoryProgress, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		cats = append(cats, CategoryProgress{
			Category: c,
			Earned:   by[c],
			Required: cat.CreditRequirement(c),
		})
	}

	s := CompletionSummary{
		EarnedCredits:        l.EarnedCredits(),
		TotalRequired:        cat.TotalRequiredCredits(),
		CompletionPercentage: l.CompletionPercentage(),
		Categories:           cats,
	}
	if path != nil {
		s.Path = pathProgress(l, cat, *path)
	}
	return s
}

func pathProgress(l Completion, cat Catalog, path domain.CareerPath) *PathProgress {
	pp := &PathProgress{
		CareerID: path.ID,
		Title:    path.TitleEN,
		Modules:  []domain.ScoredModule{},
	}
	for _, code := range path.RecommendedModules {
		m, err := cat.GetModule(code)
		if err != nil {
			continue
		}
		done := l.IsComplete(code)
		pp.Modules = append(pp.Modules, domain.ScoredModule{Module: m, Completed: done})
		pp.TotalCP += m.Credits
		if done {
			pp.CompletedCount++
			pp.CompletedCP += m.Credits
		}
	}
	pp.ModuleCount = len(pp.Modules)
	return pp
}

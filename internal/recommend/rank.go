package recommend

import (
	"sort"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// Catalog is the catalog view the ranker reads.
type Catalog interface {
	ListModules() []domain.Module
	GetCareerPath(id string) (domain.CareerPath, error)
}

// CompletionLookup annotates ranked modules with completion state.
type CompletionLookup interface {
	IsComplete(code string) bool
}

// Rank scores every catalog module against the career path and returns at
// most MaxRanked modules, best first. Modules that score zero are left out.
// An unknown career id yields an empty, non-nil slice. completed may be nil.
func Rank(cat Catalog, careerID string, completed CompletionLookup) []domain.ScoredModule {
	path, err := cat.GetCareerPath(careerID)
	if err != nil {
		return []domain.ScoredModule{}
	}

	var scored []domain.ScoredModule
	for _, m := range cat.ListModules() {
		score, reasons := ScoreModule(newScoringInput(m, path))
		if score == 0 {
			continue
		}
		scored = append(scored, domain.ScoredModule{
			Module:         m,
			RelevanceScore: score,
			IsCore:         score >= IsCoreScore,
			Reasons:        reasons,
		})
	}
	ranked := Finalize(scored)
	annotate(ranked, completed)
	return ranked
}

// Finalize tags phases, sorts by score descending with ties in input order,
// and truncates to MaxRanked. It is used for both locally scored modules and
// those pre-scored by the upstream API.
func Finalize(pre []domain.ScoredModule) []domain.ScoredModule {
	out := make([]domain.ScoredModule, len(pre))
	copy(out, pre)
	for i := range out {
		out[i].RelevanceScore = clampScore(out[i].RelevanceScore)
		out[i].Phase = PhaseFor(out[i].RelevanceScore, out[i].IsCore)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RelevanceScore > out[j].RelevanceScore
	})
	if len(out) > MaxRanked {
		out = out[:MaxRanked]
	}
	return out
}

// Annotate marks each module's Completed flag from the lookup.
func Annotate(mods []domain.ScoredModule, completed CompletionLookup) []domain.ScoredModule {
	annotate(mods, completed)
	return mods
}

func annotate(mods []domain.ScoredModule, completed CompletionLookup) {
	if completed == nil {
		return
	}
	for i := range mods {
		mods[i].Completed = completed.IsComplete(mods[i].Code)
	}
}

// Ranker binds a catalog for use as a catalog.LocalRanker.
func Ranker(cat Catalog) func(careerID string) []domain.ScoredModule {
	return func(careerID string) []domain.ScoredModule {
		return Rank(cat, careerID, nil)
	}
}

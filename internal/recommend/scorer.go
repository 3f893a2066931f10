// Package recommend ranks catalog modules by relevance to a career path.
package recommend

import (
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// Scoring constants. Scores are integers clamped to 0..100.
const (
	RecommendedBase       = 40
	KeywordWeight         = 5
	KeywordCap            = 30
	ElectiveRequiredBonus = 15
	ElectiveOpenBonus     = 10
	MandatoryRecommended  = 10
	FoundationBonus       = 5

	IsCoreScore          = 50
	CoreThreshold        = 35
	RecommendedThreshold = 25

	MaxRanked = 8
)

// ScoringInput is one module evaluated against one career path.
type ScoringInput struct {
	Module      domain.Module
	Recommended bool
	KeywordHits []string
}

// newScoringInput precomputes the path-dependent facts about m.
func newScoringInput(m domain.Module, path domain.CareerPath) ScoringInput {
	text := strings.ToLower(m.Name + " " + m.NameEN + " " + m.Description)
	var hits []string
	for _, kw := range path.Keywords {
		if kw != "" && strings.Contains(text, kw) {
			hits = append(hits, kw)
		}
	}
	return ScoringInput{
		Module:      m,
		Recommended: path.Recommends(m.Code),
		KeywordHits: hits,
	}
}

func (in ScoringInput) relevant() bool {
	return in.Recommended || len(in.KeywordHits) > 0
}

type factor func(ScoringInput) (int, string)

var factors = []factor{
	scoreRecommended,
	scoreKeywords,
	scoreCategoryAffinity,
	scoreFoundation,
}

// ScoreModule applies every factor to in and returns the clamped score and
// the reasons of the factors that fired.
func ScoreModule(in ScoringInput) (int, []string) {
	score := 0
	var reasons []string
	for _, f := range factors {
		delta, reason := f(in)
		if delta == 0 {
			continue
		}
		score += delta
		reasons = append(reasons, reason)
	}
	return clampScore(score), reasons
}

func scoreRecommended(in ScoringInput) (int, string) {
	if !in.Recommended {
		return 0, ""
	}
	return RecommendedBase, "recommended for this career"
}

func scoreKeywords(in ScoringInput) (int, string) {
	if len(in.KeywordHits) == 0 {
		return 0, ""
	}
	delta := len(in.KeywordHits) * KeywordWeight
	if delta > KeywordCap {
		delta = KeywordCap
	}
	return delta, "matches " + strings.Join(in.KeywordHits, ", ")
}

// scoreCategoryAffinity rewards the specialization pools and recommended
// foundational modules. Electives only count once they are relevant at all.
func scoreCategoryAffinity(in ScoringInput) (int, string) {
	switch in.Module.Category {
	case domain.CategoryElectiveRequired:
		if in.relevant() {
			return ElectiveRequiredBonus, "specialization elective"
		}
	case domain.CategoryElectiveOpen:
		if in.relevant() {
			return ElectiveOpenBonus, "open elective"
		}
	case domain.CategoryMandatory:
		if in.Recommended {
			return MandatoryRecommended, "foundational requirement"
		}
	}
	return 0, ""
}

func scoreFoundation(in ScoringInput) (int, string) {
	m := in.Module
	if m.Category != domain.CategoryMandatory || m.Semester == nil || len(in.KeywordHits) == 0 {
		return 0, ""
	}
	if *m.Semester > domain.FoundationLastSemester {
		return 0, ""
	}
	return FoundationBonus, fmt.Sprintf("early foundation (semester %d)", *m.Semester)
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// PhaseFor maps a score to its phase. Lower bounds are inclusive.
func PhaseFor(score int, isCore bool) domain.Phase {
	switch {
	case isCore || score >= CoreThreshold:
		return domain.PhaseCore
	case score >= RecommendedThreshold:
		return domain.PhaseRecommended
	default:
		return domain.PhaseSupplementary
	}
}

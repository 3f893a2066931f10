package progress

import (
	"fmt"
	"time"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// MilestoneInput is the student state milestones are evaluated against.
type MilestoneInput struct {
	EarnedCredits  int
	MandatoryDone  int
	MandatoryTotal int
	CareerSelected bool
	Stored         map[int]*time.Time // AchievedAt by milestone id
	Now            time.Time
}

// MandatoryCounts counts completed and total mandatory modules.
func MandatoryCounts(cat Catalog, completed interface{ IsComplete(string) bool }) (done, total int) {
	for _, m := range cat.ListModules() {
		if m.Category != domain.CategoryMandatory {
			continue
		}
		total++
		if completed.IsComplete(m.Code) {
			done++
		}
	}
	return done, total
}

// EvaluateMilestones marks each definition completed when its rule holds.
// The first unsatisfied milestone in order is in progress and the rest are
// locked. Stored achievement times are kept; newly satisfied milestones are
// stamped with in.Now.
func EvaluateMilestones(defs []domain.MilestoneDefinition, in MilestoneInput) []domain.MilestoneProgress {
	out := make([]domain.MilestoneProgress, 0, len(defs))
	frontier := false
	for _, def := range defs {
		p := domain.MilestoneProgress{MilestoneDefinition: def}
		satisfied := ruleSatisfied(def, in)

		switch {
		case satisfied:
			p.Status = domain.MilestoneCompleted
			if at, ok := in.Stored[def.ID]; ok && at != nil {
				t := *at
				p.AchievedAt = &t
			} else {
				t := in.Now
				p.AchievedAt = &t
			}
		case !frontier:
			p.Status = domain.MilestoneInProgress
			frontier = true
		default:
			p.Status = domain.MilestoneLocked
		}
		p.Explanation = explain(def, in, satisfied)
		out = append(out, p)
	}
	return out
}

func ruleSatisfied(def domain.MilestoneDefinition, in MilestoneInput) bool {
	switch def.Type {
	case domain.MilestoneOnboarding:
		return true
	case domain.MilestoneCPThreshold, domain.MilestoneThesis, domain.MilestoneCompletion:
		return in.EarnedCredits >= def.Rule.CreditsRequired
	case domain.MilestoneModuleGroup:
		return in.MandatoryTotal > 0 && in.MandatoryDone >= in.MandatoryTotal
	case domain.MilestoneCareerGoal:
		return in.CareerSelected
	default:
		return false
	}
}

func explain(def domain.MilestoneDefinition, in MilestoneInput, satisfied bool) string {
	switch def.Type {
	case domain.MilestoneCPThreshold, domain.MilestoneThesis, domain.MilestoneCompletion:
		req := def.Rule.CreditsRequired
		earned := in.EarnedCredits
		if earned > req {
			earned = req
		}
		return fmt.Sprintf("%d/%d CP completed (%d%%)", earned, req, percentOf(earned, req))
	case domain.MilestoneModuleGroup:
		return fmt.Sprintf("%d/%d mandatory modules completed", in.MandatoryDone, in.MandatoryTotal)
	case domain.MilestoneCareerGoal:
		if satisfied {
			return "Career goal selected"
		}
		return "No career goal selected yet"
	default:
		if satisfied {
			return "Completed"
		}
		return "Not started"
	}
}

func percentOf(part, total int) int {
	if total <= 0 {
		return 100
	}
	return part * 100 / total
}

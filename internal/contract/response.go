package contract

import (
	"github.com/TPSE31/career-roadmap/internal/domain"
)

// Origin records whether career data came from the upstream API or the
// bundled dataset.
type Origin string

const (
	OriginUpstream Origin = "upstream"
	OriginBundled  Origin = "bundled"
)

type CareersResponse struct {
	Careers []domain.CareerPath
	Origin  Origin
}

// ScoredModulesResponse is the ranked module list for one career. Career is
// nil when the id is unknown, in which case Modules is empty.
type ScoredModulesResponse struct {
	CareerID string
	Career   *domain.CareerPath
	Modules  []domain.ScoredModule
	Origin   Origin
}

type RoadmapResponse struct {
	Semester int
	Clamped  bool
	Career   *domain.CareerPath
	Stages   []domain.RoadmapStage
}

// Current returns the stage flagged current, if any.
func (r RoadmapResponse) Current() (domain.RoadmapStage, bool) {
	for _, s := range r.Stages {
		if s.Current {
			return s, true
		}
	}
	return domain.RoadmapStage{}, false
}

type ToggleResponse struct {
	Code          string
	Completed     bool
	EarnedCredits int
	Percentage    int
}

type ProfileResponse struct {
	Profile domain.Profile
	Career  *domain.CareerPath
	Clamped bool
}

// MilestoneSyncResponse lists the evaluated milestones, those that became
// done in this sync, and the notifications created for them.
type MilestoneSyncResponse struct {
	Milestones    []domain.MilestoneProgress
	Achieved      []domain.MilestoneProgress
	Notifications []domain.Notification
}

package domain

import "time"

// MilestoneRule carries the type-specific condition of a milestone.
type MilestoneRule struct {
	CreditsRequired int
	ModuleGroup     Category
}

// MilestoneDefinition is a trackable academic checkpoint of the regulation.
type MilestoneDefinition struct {
	ID                 int
	OrderIndex         int
	Type               MilestoneType
	Label              string
	Description        string
	Rule               MilestoneRule
	ExpectedBySemester int
}

// MilestoneProgress is the student's state for one milestone. AchievedAt is
// nil while the milestone is pending.
type MilestoneProgress struct {
	MilestoneDefinition
	Status      MilestoneStatus
	AchievedAt  *time.Time
	Explanation string
}

// IsDone reports whether the milestone has been achieved.
func (p *MilestoneProgress) IsDone() bool {
	return p.AchievedAt != nil
}

// SetCompleted moves the milestone to done or pending. Completing an already
// achieved milestone keeps its original timestamp. Returns whether state changed.
func (p *MilestoneProgress) SetCompleted(done bool, now time.Time) bool {
	if done {
		if p.AchievedAt != nil {
			return false
		}
		t := now
		p.AchievedAt = &t
		p.Status = MilestoneCompleted
		return true
	}
	if p.AchievedAt == nil {
		return false
	}
	p.AchievedAt = nil
	p.Status = MilestoneInProgress
	return true
}

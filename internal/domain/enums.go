package domain

// Category is the curriculum area a module belongs to.
type Category string

const (
	CategoryMandatory        Category = "mandatory"
	CategoryElectiveRequired Category = "elective_required"
	CategoryElectiveOpen     Category = "elective_open"
	CategoryGeneralStudies   Category = "general_studies"
)

// Categories lists every category in curriculum order.
var Categories = []Category{
	CategoryMandatory,
	CategoryElectiveRequired,
	CategoryElectiveOpen,
	CategoryGeneralStudies,
}

// categoryLabels maps each category to the examination regulation's German name.
var categoryLabels = map[Category]string{
	CategoryMandatory:        "Pflichtbereich",
	CategoryElectiveRequired: "Informatik Wahlpflichtbereich",
	CategoryElectiveOpen:     "Informatik Wahlbereich",
	CategoryGeneralStudies:   "Studium Generale",
}

// Label returns the German regulation name for the category.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Valid reports whether c is one of the closed set of categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ParseCategory accepts either the canonical identifier or the German label.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if c.Valid() {
		return c, true
	}
	for cat, label := range categoryLabels {
		if label == s {
			return cat, true
		}
	}
	return "", false
}

// Phase is the relevance tier of a module for one career path.
type Phase string

const (
	PhaseCore          Phase = "core"
	PhaseRecommended   Phase = "recommended"
	PhaseSupplementary Phase = "supplementary"
)

type MilestoneType string

const (
	MilestoneOnboarding  MilestoneType = "onboarding"
	MilestoneCPThreshold MilestoneType = "cp_threshold"
	MilestoneModuleGroup MilestoneType = "module_group"
	MilestoneCareerGoal  MilestoneType = "career_goal"
	MilestoneThesis      MilestoneType = "thesis"
	MilestoneCompletion  MilestoneType = "completion"
)

type MilestoneStatus string

const (
	MilestoneLocked     MilestoneStatus = "locked"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

type NotificationType string

const (
	NotifyMilestoneReminder NotificationType = "milestone_reminder"
	NotifyDeadlineWarning   NotificationType = "deadline_warning"
	NotifyMilestoneAchieved NotificationType = "milestone_achieved"
	NotifyRecommendation    NotificationType = "recommendation"
	NotifySupportService    NotificationType = "support_service"
	NotifySystem            NotificationType = "system"
)

// ValidNotificationTypes is the canonical set of accepted notification types.
var ValidNotificationTypes = map[NotificationType]bool{
	NotifyMilestoneReminder: true,
	NotifyDeadlineWarning:   true,
	NotifyMilestoneAchieved: true,
	NotifyRecommendation:    true,
	NotifySupportService:    true,
	NotifySystem:            true,
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// TrackStatus classifies earned credits against the per-semester pace.
type TrackStatus string

const (
	TrackOnTrack  TrackStatus = "on_track"
	TrackAtRisk   TrackStatus = "at_risk"
	TrackOffTrack TrackStatus = "off_track"
)

package notify

import (
	"fmt"
	"time"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/google/uuid"
)

const milestonesActionURL = "/milestones"

// AchievementNotices creates one milestone_achieved notification per
// milestone in done that has none yet among existing.
func AchievementNotices(done []domain.MilestoneProgress, existing []domain.Notification, sessionID string, now time.Time) []*domain.Notification {
	seen := relatedIDs(existing, domain.NotifyMilestoneAchieved)
	var out []*domain.Notification
	for _, p := range done {
		if !p.IsDone() || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, newMilestoneNotification(sessionID, p, domain.NotifyMilestoneAchieved, domain.PriorityMedium,
			"Milestone reached: "+p.Label,
			p.Description, now))
	}
	return out
}

// Reminders creates a milestone_reminder for the in-progress milestone when
// it was expected by the current semester. Milestones already reminded about
// are skipped. Overdue milestones get high priority.
func Reminders(progress []domain.MilestoneProgress, semester int, existing []domain.Notification, sessionID string, now time.Time) []*domain.Notification {
	seen := relatedIDs(existing, domain.NotifyMilestoneReminder)
	var out []*domain.Notification
	for _, p := range progress {
		if p.Status != domain.MilestoneInProgress || p.ExpectedBySemester == 0 || p.ExpectedBySemester > semester {
			continue
		}
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true

		priority := domain.PriorityMedium
		if p.ExpectedBySemester < semester {
			priority = domain.PriorityHigh
		}
		msg := fmt.Sprintf("Expected by semester %d. %s", p.ExpectedBySemester, p.Explanation)
		out = append(out, newMilestoneNotification(sessionID, p, domain.NotifyMilestoneReminder, priority,
			"Upcoming milestone: "+p.Label, msg, now))
	}
	return out
}

func newMilestoneNotification(sessionID string, p domain.MilestoneProgress, typ domain.NotificationType, priority domain.Priority, title, msg string, now time.Time) *domain.Notification {
	id := p.ID
	return &domain.Notification{
		ID:                 uuid.New().String(),
		SessionID:          sessionID,
		Type:               typ,
		Priority:           priority,
		Title:              title,
		Message:            msg,
		RelatedMilestoneID: &id,
		ActionURL:          milestonesActionURL,
		CreatedAt:          now.UTC(),
	}
}

func relatedIDs(ns []domain.Notification, typ domain.NotificationType) map[int]bool {
	out := make(map[int]bool)
	for _, n := range ns {
		if n.Type == typ && n.RelatedMilestoneID != nil {
			out[*n.RelatedMilestoneID] = true
		}
	}
	return out
}

package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
)

// ShortID returns the first 8 characters of an ID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatNotifications renders a notification table, newest first as given.
func FormatNotifications(ns []domain.Notification, now time.Time) string {
	var b strings.Builder
	unread := 0
	for i := range ns {
		if !ns[i].IsRead() {
			unread++
		}
	}
	b.WriteString(Header(fmt.Sprintf("Notifications (%d unread)", unread)))
	b.WriteString("\n\n")

	if len(ns) == 0 {
		b.WriteString(Dim("No notifications."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(ns))
	for i := range ns {
		n := &ns[i]
		marker := StyleHeader.Render("•")
		title := StyleBold.Render(n.Title)
		if n.IsRead() {
			marker, title = " ", StyleDim.Render(n.Title)
		}
		due := ""
		if n.DueAt != nil {
			due = RelativeDateFrom(*n.DueAt, now)
			if n.Overdue(now) {
				due = StyleRed.Render(due)
			}
		}
		rows = append(rows, []string{
			marker,
			Dim(ShortID(n.ID)),
			PriorityBadge(n.Priority),
			title,
			Dim(RelativeDateFrom(n.CreatedAt, now)),
			due,
		})
	}
	b.WriteString(RenderTable([]string{"", "ID", "PRIORITY", "TITLE", "CREATED", "DUE"}, rows))
	return b.String()
}

// FormatNotification renders one notification in full.
func FormatNotification(n *domain.Notification, now time.Time) string {
	var b strings.Builder
	if n.Message != "" {
		b.WriteString(n.Message + "\n\n")
	}
	fmt.Fprintf(&b, "%s %s\n", Dim("ID:"), n.ID)
	fmt.Fprintf(&b, "%s %s  %s\n", Dim("Type:"), string(n.Type), PriorityBadge(n.Priority))
	fmt.Fprintf(&b, "%s %s", Dim("Created:"), HumanDate(n.CreatedAt, now))
	if n.DueAt != nil {
		fmt.Fprintf(&b, "\n%s %s", Dim("Due:"), RelativeDateFrom(*n.DueAt, now))
	}
	if n.ReadAt != nil {
		fmt.Fprintf(&b, "\n%s %s", Dim("Read:"), HumanDate(*n.ReadAt, now))
	}
	if n.ActionURL != "" {
		fmt.Fprintf(&b, "\n%s %s", Dim("Link:"), StyleBlue.Render(n.ActionURL))
	}
	return RenderBox(n.Title, b.String()) + "\n"
}

// FormatMilestones renders milestone progress in definition order.
func FormatMilestones(ms []domain.MilestoneProgress, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Milestones"))
	b.WriteString("\n\n")

	if len(ms) == 0 {
		b.WriteString(Dim("No milestones defined."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(ms))
	for i := range ms {
		m := &ms[i]
		detail := Dim(m.Explanation)
		if m.AchievedAt != nil {
			detail = StyleGreen.Render("achieved " + HumanDate(*m.AchievedAt, now))
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", m.ID),
			MilestoneIcon(m.Status),
			m.Label,
			fmt.Sprintf("%d", m.ExpectedBySemester),
			detail,
		})
	}
	b.WriteString(RenderTable([]string{"ID", "", "MILESTONE", "SEM", "STATE"}, rows))
	return b.String()
}

// MilestoneIcon renders the status of a milestone.
func MilestoneIcon(s domain.MilestoneStatus) string {
	switch s {
	case domain.MilestoneCompleted:
		return StyleGreen.Render("✔")
	case domain.MilestoneInProgress:
		return StyleHeader.Render("▶")
	default:
		return StyleDim.Render("○")
	}
}

// FormatSync renders the outcome of a milestone sync.
func FormatSync(resp *contract.MilestoneSyncResponse, now time.Time) string {
	var b strings.Builder
	b.WriteString(FormatMilestones(resp.Milestones, now))
	b.WriteString("\n")
	if len(resp.Achieved) == 0 {
		b.WriteString(Dim("No new milestones reached.") + "\n")
	} else {
		for _, m := range resp.Achieved {
			b.WriteString(StyleGreen.Render("✔ Reached: "+m.Label) + "\n")
		}
	}
	if n := len(resp.Notifications); n > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d new notification(s).", n)) + "\n")
	}
	return b.String()
}

package domain

import "time"

// Notification is a timestamped message to the student. ReadAt is nil while
// the notification is unread.
type Notification struct {
	ID                 string
	SessionID          string
	Type               NotificationType
	Priority           Priority
	Title              string
	Message            string
	DueAt              *time.Time
	ReadAt             *time.Time
	RelatedMilestoneID *int
	ActionURL          string
	CreatedAt          time.Time
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkRead stamps ReadAt if the notification is unread. An already-read
// notification keeps its timestamp. Returns whether state changed.
func (n *Notification) MarkRead(now time.Time) bool {
	if n.ReadAt != nil {
		return false
	}
	t := now
	n.ReadAt = &t
	return true
}

// Overdue reports whether the notification has a due date before now and is unread.
func (n *Notification) Overdue(now time.Time) bool {
	return n.DueAt != nil && n.ReadAt == nil && n.DueAt.Before(now)
}

// NotificationPatch lists the mutable notification fields. Nil fields are
// left unchanged.
type NotificationPatch struct {
	ReadAt   *time.Time
	Priority *Priority
	DueAt    *time.Time
}

// Empty reports whether the patch changes nothing.
func (p NotificationPatch) Empty() bool {
	return p.ReadAt == nil && p.Priority == nil && p.DueAt == nil
}

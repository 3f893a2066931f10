package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// MilestoneStore persists per-session milestone state.
type MilestoneStore interface {
	List(ctx context.Context) ([]domain.MilestoneProgress, error)
	Upsert(ctx context.Context, p *domain.MilestoneProgress) error
	UpsertAll(ctx context.Context, ps []*domain.MilestoneProgress) error
}

// MilestoneTracker is the milestone state machine of one session. Definitions
// come from the catalog; only status and achievement time are stored.
type MilestoneTracker struct {
	store MilestoneStore
	now   func() time.Time
	items []*domain.MilestoneProgress
}

// NewMilestoneTracker merges defs with the stored state. Milestones without
// a stored row start locked and pending.
func NewMilestoneTracker(ctx context.Context, defs []domain.MilestoneDefinition, store MilestoneStore, now func() time.Time) (*MilestoneTracker, error) {
	if now == nil {
		now = time.Now
	}
	stored, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading milestone progress: %w", err)
	}
	byID := make(map[int]domain.MilestoneProgress, len(stored))
	for _, p := range stored {
		byID[p.ID] = p
	}

	items := make([]*domain.MilestoneProgress, 0, len(defs))
	for _, def := range defs {
		p := &domain.MilestoneProgress{MilestoneDefinition: def, Status: domain.MilestoneLocked}
		if s, ok := byID[def.ID]; ok {
			p.Status = s.Status
			p.AchievedAt = s.AchievedAt
		}
		items = append(items, p)
	}
	return &MilestoneTracker{store: store, now: now, items: items}, nil
}

// List returns copies of every milestone in order.
func (t *MilestoneTracker) List() []domain.MilestoneProgress {
	out := make([]domain.MilestoneProgress, len(t.items))
	for i, p := range t.items {
		out[i] = *p
	}
	return out
}

func (t *MilestoneTracker) Get(id int) (domain.MilestoneProgress, error) {
	p := t.find(id)
	if p == nil {
		return domain.MilestoneProgress{}, fmt.Errorf("milestone %d: %w", id, domain.ErrNotFound)
	}
	return *p, nil
}

// Achieved returns the stored achievement times keyed by milestone id.
func (t *MilestoneTracker) Achieved() map[int]*time.Time {
	out := make(map[int]*time.Time, len(t.items))
	for _, p := range t.items {
		if p.AchievedAt != nil {
			at := *p.AchievedAt
			out[p.ID] = &at
		}
	}
	return out
}

// SetCompleted marks a milestone done or pending. Completing an achieved
// milestone keeps its timestamp. Returns whether state changed.
func (t *MilestoneTracker) SetCompleted(ctx context.Context, id int, done bool) (bool, error) {
	p := t.find(id)
	if p == nil {
		return false, fmt.Errorf("milestone %d: %w", id, domain.ErrNotFound)
	}
	prev := *p
	if !p.SetCompleted(done, t.now().UTC()) {
		return false, nil
	}
	if err := t.store.Upsert(ctx, p); err != nil {
		*p = prev
		return false, fmt.Errorf("saving milestone %d: %w", id, err)
	}
	return true, nil
}

// Apply stores an evaluated milestone list and returns the milestones that
// became done. Changed rows are written in one batch; if it fails every
// in-memory change is undone.
func (t *MilestoneTracker) Apply(ctx context.Context, evaluated []domain.MilestoneProgress) ([]domain.MilestoneProgress, error) {
	snapshot := t.List()
	var changed []*domain.MilestoneProgress
	var newlyDone []domain.MilestoneProgress

	for _, ev := range evaluated {
		p := t.find(ev.ID)
		if p == nil {
			continue
		}
		p.Explanation = ev.Explanation
		if p.Status == ev.Status && sameTime(p.AchievedAt, ev.AchievedAt) {
			continue
		}
		wasDone := p.IsDone()
		p.Status = ev.Status
		p.AchievedAt = ev.AchievedAt
		changed = append(changed, p)
		if !wasDone && p.IsDone() {
			newlyDone = append(newlyDone, *p)
		}
	}
	if err := t.store.UpsertAll(ctx, changed); err != nil {
		t.restore(snapshot)
		return nil, fmt.Errorf("saving milestones: %w", err)
	}
	return newlyDone, nil
}

func (t *MilestoneTracker) restore(snapshot []domain.MilestoneProgress) {
	for i := range snapshot {
		s := snapshot[i]
		t.items[i] = &s
	}
}

func (t *MilestoneTracker) find(id int) *domain.MilestoneProgress {
	for _, p := range t.items {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Package ledger tracks which modules a student has completed and derives
// the earned credits from the catalog.
package ledger

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// CompletionStore persists the completed set of one session. Save receives
// the whole set and must write it atomically.
type CompletionStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, codes []string) error
}

// Catalog is the slice of the catalog the ledger needs for credit sums.
type Catalog interface {
	GetModule(code string) (domain.Module, error)
	TotalRequiredCredits() int
}

// Ledger is the in-memory completion record of one session, written through
// to its CompletionStore on every change.
type Ledger struct {
	store     CompletionStore
	catalog   Catalog
	completed map[string]bool
}

// Open loads the session's completion record from store.
func Open(ctx context.Context, store CompletionStore, catalog Catalog) (*Ledger, error) {
	codes, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}
	l := &Ledger{
		store:     store,
		catalog:   catalog,
		completed: make(map[string]bool, len(codes)),
	}
	for _, c := range codes {
		l.completed[c] = true
	}
	return l, nil
}

func (l *Ledger) IsComplete(code string) bool {
	return l.completed[code]
}

// Toggle flips the completion state of code and returns the new state. If
// the store rejects the new set the flip is undone.
func (l *Ledger) Toggle(ctx context.Context, code string) (bool, error) {
	next := !l.completed[code]
	if err := l.Set(ctx, code, next); err != nil {
		return !next, err
	}
	return next, nil
}

// Set marks code complete or incomplete. Setting the current state is a
// no-op and does not touch the store.
func (l *Ledger) Set(ctx context.Context, code string, done bool) error {
	if l.completed[code] == done {
		return nil
	}
	l.apply(code, done)
	if err := l.store.Save(ctx, l.Completed()); err != nil {
		l.apply(code, !done)
		return fmt.Errorf("saving completion of %s: %w", code, err)
	}
	return nil
}

// Reset clears every completion.
func (l *Ledger) Reset(ctx context.Context) error {
	if len(l.completed) == 0 {
		return nil
	}
	prev := l.completed
	l.completed = make(map[string]bool)
	if err := l.store.Save(ctx, []string{}); err != nil {
		l.completed = prev
		return fmt.Errorf("resetting completions: %w", err)
	}
	return nil
}

func (l *Ledger) apply(code string, done bool) {
	if done {
		l.completed[code] = true
		return
	}
	delete(l.completed, code)
}

// Completed returns the completed codes in sorted order.
func (l *Ledger) Completed() []string {
	out := make([]string, 0, len(l.completed))
	for c := range l.completed {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// EarnedCredits sums the credits of completed modules. Codes missing from
// the catalog contribute nothing.
func (l *Ledger) EarnedCredits() int {
	total := 0
	for code := range l.completed {
		if m, err := l.catalog.GetModule(code); err == nil {
			total += m.Credits
		}
	}
	return total
}

// EarnedByCategory splits the earned credits by module category.
func (l *Ledger) EarnedByCategory() map[domain.Category]int {
	out := make(map[domain.Category]int, len(domain.Categories))
	for _, c := range domain.Categories {
		out[c] = 0
	}
	for code := range l.completed {
		if m, err := l.catalog.GetModule(code); err == nil {
			out[m.Category] += m.Credits
		}
	}
	return out
}

// CompletionPercentage is the rounded share of the required credits earned,
// clamped to 0..100.
func (l *Ledger) CompletionPercentage() int {
	return Percentage(l.EarnedCredits(), l.catalog.TotalRequiredCredits())
}

// Percentage returns round(part/total*100) clamped to 0..100.
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(part) / float64(total) * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

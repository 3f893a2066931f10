package testutil

import (
	"context"
	"sync"
)

// MemoryCompletionRepo is an in-memory completion repo. Setting FailSave
// makes every Save return it without changing the stored set.
type MemoryCompletionRepo struct {
	mu       sync.Mutex
	codes    []string
	Saves    int
	FailSave error
	FailLoad error
}

// NewMemoryCompletionRepo returns a repo preloaded with codes.
func NewMemoryCompletionRepo(codes ...string) *MemoryCompletionRepo {
	return &MemoryCompletionRepo{codes: append([]string{}, codes...)}
}

func (m *MemoryCompletionRepo) Load(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailLoad != nil {
		return nil, m.FailLoad
	}
	return append([]string{}, m.codes...), nil
}

func (m *MemoryCompletionRepo) Save(ctx context.Context, codes []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saves++
	if m.FailSave != nil {
		return m.FailSave
	}
	m.codes = append([]string{}, codes...)
	return nil
}

// Stored returns the last successfully saved set.
func (m *MemoryCompletionRepo) Stored() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.codes...)
}

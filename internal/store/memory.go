package store

import (
	"sync"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// Memory is an in-memory journal store, used for tests and throwaway books.
type Memory struct {
	mu      sync.RWMutex
	entries []model.Entry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append adds an entry to the journal.
func (m *Memory) Append(e model.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

// All returns a snapshot of the journal in storage order.
func (m *Memory) All() ([]model.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.Entry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

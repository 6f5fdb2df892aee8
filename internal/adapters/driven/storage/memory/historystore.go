package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record appends entries.
func (s *HistoryStore) Record(_ context.Context, entries []domain.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

// List returns entries newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}

	result := make([]domain.HistoryEntry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.entries[i])
	}
	return result, nil
}

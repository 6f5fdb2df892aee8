package services

import (
	"context"
	"time"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService records applied batch actions for later inspection.
type HistoryService struct {
	store   driven.HistoryStore
	enabled bool
	now     func() time.Time
}

// NewHistoryService creates a new history service. When enabled is false
// Record is a no-op but Recent still reads earlier entries.
func NewHistoryService(store driven.HistoryStore, enabled bool) *HistoryService {
	return &HistoryService{
		store:   store,
		enabled: enabled,
		now:     time.Now,
	}
}

// Record stores every applied action of result under its run ID.
// Dry runs are not recorded.
func (s *HistoryService) Record(ctx context.Context, result *domain.BatchResult) error {
	if !s.enabled || s.store == nil || result == nil || result.DryRun || len(result.Applied) == 0 {
		return nil
	}

	at := s.now()
	entries := make([]domain.HistoryEntry, 0, len(result.Applied))
	for _, action := range result.Applied {
		entries = append(entries, domain.HistoryEntry{
			RunID:       result.RunID,
			Operation:   result.Operation,
			Source:      action.Source,
			Destination: action.Destination,
			AppliedAt:   at,
		})
	}

	return s.store.Record(ctx, entries)
}

// Recent returns at most limit entries, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx, limit)
}

package driving

import (
	"context"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

// HistoryService exposes the record of applied batch actions.
type HistoryService interface {
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error)

	// Record stores the applied actions of a batch result.
	Record(ctx context.Context, result *domain.BatchResult) error
}

package driven

import (
	"context"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

// HistoryStore persists applied moves and renames.
type HistoryStore interface {
	// Record appends entries.
	Record(ctx context.Context, entries []domain.HistoryEntry) error

	// List returns at most limit entries, newest first. limit <= 0 means all.
	List(ctx context.Context, limit int) ([]domain.HistoryEntry, error)
}

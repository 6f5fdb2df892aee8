package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

// historyStore implements driven.HistoryStore.
type historyStore struct {
	store *Store
}

var _ driven.HistoryStore = (*historyStore)(nil)

// Record appends entries in a single transaction.
func (s *historyStore) Record(ctx context.Context, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO history (run_id, operation, source, destination, applied_at)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.ExecContext(ctx, e.RunID, string(e.Operation), e.Source, e.Destination,
			e.AppliedAt.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("inserting history entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing history: %w", err)
	}
	return nil
}

// List returns entries newest first.
func (s *historyStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT run_id, operation, source, destination, applied_at
		FROM history
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			e         domain.HistoryEntry
			operation string
			appliedAt string
		)
		if err := rows.Scan(&e.RunID, &operation, &e.Source, &e.Destination, &appliedAt); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.Operation = domain.Operation(operation)
		if t, err := time.Parse(time.RFC3339Nano, appliedAt); err == nil {
			e.AppliedAt = t
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating history: %w", err)
	}

	return entries, nil
}

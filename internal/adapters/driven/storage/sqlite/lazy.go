package sqlite

import (
	"context"
	"sync"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

var _ driven.HistoryStore = (*LazyStore)(nil)

// LazyStore is a HistoryStore that opens and migrates the database on first
// use, so commands that never touch history never create history.db.
type LazyStore struct {
	dataDir string

	mu    sync.Mutex
	store *Store
}

// NewLazyStore returns a LazyStore for dataDir. Nothing is opened yet.
func NewLazyStore(dataDir string) *LazyStore {
	return &LazyStore{dataDir: dataDir}
}

// open returns the underlying store, opening it if needed. A failed open is
// retried on the next call.
func (l *LazyStore) open() (*Store, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		store, err := NewStore(l.dataDir)
		if err != nil {
			return nil, err
		}
		l.store = store
	}
	return l.store, nil
}

// Record opens the database and appends entries.
func (l *LazyStore) Record(ctx context.Context, entries []domain.HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	store, err := l.open()
	if err != nil {
		return err
	}
	return store.HistoryStore().Record(ctx, entries)
}

// List opens the database and returns the newest entries.
func (l *LazyStore) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	store, err := l.open()
	if err != nil {
		return nil, err
	}
	return store.HistoryStore().List(ctx, limit)
}

// Opened reports whether the database has been opened.
func (l *LazyStore) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store != nil
}

// Close closes the database if it was opened.
func (l *LazyStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.store == nil {
		return nil
	}
	err := l.store.Close()
	l.store = nil
	return err
}

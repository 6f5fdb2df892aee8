package driving

import (
	"context"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

// RenameOptions controls a rename run. Zero values use the configured settings.
type RenameOptions struct {
	Prefix *string
	Order  domain.RenameOrder
	DryRun bool
}

// Renamer prefixes files with a sequential index.
type Renamer interface {
	// Plan computes the renames for dir without touching the filesystem.
	Plan(dir string, opts RenameOptions) (*domain.Plan, error)

	// RenameAll plans and, unless DryRun is set, applies the renames.
	// Per-file failures are reported in the result, not returned.
	RenameAll(ctx context.Context, dir string, opts RenameOptions) (*domain.BatchResult, error)
}

package driving

import (
	"context"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

// OrganizeOptions controls an organize run.
type OrganizeOptions struct {
	DryRun bool
}

// Organizer moves files into per-category subdirectories.
type Organizer interface {
	// Plan computes the moves for dir without touching the filesystem.
	Plan(dir string) (*domain.Plan, error)

	// Organize plans and, unless DryRun is set, applies the moves.
	// Per-file failures are reported in the result, not returned.
	Organize(ctx context.Context, dir string, opts OrganizeOptions) (*domain.BatchResult, error)
}

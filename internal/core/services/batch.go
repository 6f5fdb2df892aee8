package services

import (
	"context"
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
	"github.com/custodia-labs/smartfile/internal/logger"
)

// Skip reasons.
const (
	SkipUnclassified = "unclassified"
	SkipNotRegular   = "not a regular file"
)

var (
	errDestinationExists  = errors.New("destination already exists")
	errDestinationClaimed = errors.New("destination claimed by another file")
	errCategoryNotDir     = errors.New("category path exists and is not a directory")
)

// destinations tracks targets claimed while building a plan.
type destinations struct {
	fs      afero.Fs
	claimed map[string]string
}

func newDestinations(fs afero.Fs) *destinations {
	return &destinations{fs: fs, claimed: make(map[string]string)}
}

// claim reserves dst for src, failing with ErrConflict if dst is occupied
// on disk or already reserved.
func (d *destinations) claim(op, src, dst string) error {
	if other, ok := d.claimed[dst]; ok {
		logger.Debug("%s: %s and %s both target %s", op, other, src, dst)
		return domain.NewPathError(op, dst, domain.ErrConflict, errDestinationClaimed)
	}
	if exists(d.fs, dst) {
		return domain.NewPathError(op, dst, domain.ErrConflict, errDestinationExists)
	}
	d.claimed[dst] = src
	return nil
}

// runBatch applies the accepted actions of plan one by one. Failures are
// recorded per item and never stop the batch; only cancellation does.
func runBatch(
	ctx context.Context,
	plan *domain.Plan,
	dryRun bool,
	apply func(domain.PlannedAction) error,
	history driving.HistoryService,
) (*domain.BatchResult, error) {
	result := &domain.BatchResult{
		RunID:     uuid.NewString(),
		Operation: plan.Operation,
		DryRun:    dryRun,
		Skipped:   plan.Skipped,
	}

	for _, item := range plan.Skipped {
		logger.Info("%s: skipped %s (%s)", plan.Operation, item.Path, item.Reason)
	}
	for _, rejected := range plan.Rejected() {
		logger.Error("%s: %v", plan.Operation, rejected.Err)
		result.Failed = append(result.Failed, domain.ItemError{Path: rejected.Source, Err: rejected.Err})
	}

	var cancelErr error
	for _, action := range plan.Accepted() {
		if err := ctx.Err(); err != nil {
			cancelErr = err
			break
		}

		if !dryRun {
			if err := apply(action); err != nil {
				logger.Error("%s: %v", plan.Operation, err)
				result.Failed = append(result.Failed, domain.ItemError{Path: action.Source, Err: err})
				continue
			}
		}
		logger.Debug("%s: %s -> %s", plan.Operation, action.Source, action.Destination)
		result.Applied = append(result.Applied, domain.Action{
			Source:      action.Source,
			Destination: action.Destination,
		})
	}

	if !dryRun && history != nil {
		if err := history.Record(context.WithoutCancel(ctx), result); err != nil {
			logger.Warn("recording history for run %s: %v", result.RunID, err)
		}
	}

	return result, cancelErr
}

// moveFile renames src to dst without overwriting. Moves across devices
// fall back to copy and remove.
func moveFile(fs afero.Fs, op, src, dst string) error {
	if exists(fs, dst) {
		return domain.NewPathError(op, dst, domain.ErrConflict, errDestinationExists)
	}

	err := fs.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return domain.NewPathError(op, src, domain.ErrOSFailure, err)
	}

	logger.Debug("%s: cross-device move %s -> %s, copying", op, src, dst)
	if err := copyFile(fs, src, dst); err != nil {
		_ = fs.Remove(dst)
		return domain.NewPathError(op, src, domain.ErrOSFailure, err)
	}
	if err := fs.Remove(src); err != nil {
		return domain.NewPathError(op, src, domain.ErrOSFailure, err)
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return fs.Chtimes(dst, info.ModTime(), info.ModTime())
}

package services

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
)

// Ensure RenamerService implements the interface.
var _ driving.Renamer = (*RenamerService)(nil)

const opRename = "rename"

var errBadPrefix = errors.New("prefix must not contain a path separator or NUL")

// RenamerService renames every file in a directory to
// <prefix><index>_<original name>.
type RenamerService struct {
	fs       afero.Fs
	defaults domain.RenameSettings
	history  driving.HistoryService
}

// NewRenamerService creates a new renamer. defaults supply the prefix and
// order when RenameOptions leaves them unset. history may be nil.
func NewRenamerService(fs afero.Fs, defaults domain.RenameSettings, history driving.HistoryService) *RenamerService {
	return &RenamerService{
		fs:       fs,
		defaults: defaults,
		history:  history,
	}
}

// Plan computes the renames for dir. Indexes start at 1 and count files
// only. A target that already exists rejects that file with ErrConflict.
func (s *RenamerService) Plan(dir string, opts driving.RenameOptions) (*domain.Plan, error) {
	prefix, order, err := s.resolve(dir, opts)
	if err != nil {
		return nil, err
	}
	if err := requireDir(s.fs, opRename, dir); err != nil {
		return nil, err
	}

	files, skipped, err := listFiles(s.fs, dir, order)
	if err != nil {
		return nil, domain.NewPathError(opRename, dir, domain.ErrOSFailure, err)
	}

	plan := &domain.Plan{Operation: domain.OperationRename, Directory: dir, Skipped: skipped}
	dests := newDestinations(s.fs)

	for i, info := range files {
		src := filepath.Join(dir, info.Name())
		dst := filepath.Join(dir, prefix+strconv.Itoa(i+1)+"_"+info.Name())

		plan.Actions = append(plan.Actions, domain.PlannedAction{
			Source:      src,
			Destination: dst,
			Err:         dests.claim(opRename, src, dst),
		})
	}

	return plan, nil
}

// RenameAll plans dir and, unless opts.DryRun is set, performs the renames.
// The applied names are available from BatchResult.NewNames.
func (s *RenamerService) RenameAll(ctx context.Context, dir string, opts driving.RenameOptions) (*domain.BatchResult, error) {
	plan, err := s.Plan(dir, opts)
	if err != nil {
		return nil, err
	}

	return runBatch(ctx, plan, opts.DryRun, s.apply, s.history)
}

func (s *RenamerService) apply(action domain.PlannedAction) error {
	return moveFile(s.fs, opRename, action.Source, action.Destination)
}

func (s *RenamerService) resolve(dir string, opts driving.RenameOptions) (string, domain.RenameOrder, error) {
	prefix := s.defaults.Prefix
	if opts.Prefix != nil {
		prefix = *opts.Prefix
	}
	if !ValidPrefix(prefix) {
		return "", "", domain.NewPathError(opRename, dir, domain.ErrInvalidArgument, errBadPrefix)
	}

	order := opts.Order
	if order == "" {
		order = s.defaults.Order
	}
	if order == "" {
		order = domain.RenameOrderName
	}
	if !order.IsValid() {
		return "", "", domain.NewPathError(opRename, dir, domain.ErrInvalidArgument,
			errors.New("unknown order "+strconv.Quote(string(order))))
	}

	return prefix, order, nil
}

// ValidPrefix reports whether prefix can be prepended to a file name.
func ValidPrefix(prefix string) bool {
	return !strings.ContainsAny(prefix, "/\x00"+string(filepath.Separator))
}

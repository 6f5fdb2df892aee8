package services

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
	"github.com/custodia-labs/smartfile/internal/logger"
)

// Ensure OrganizerService implements the interface.
var _ driving.Organizer = (*OrganizerService)(nil)

const opOrganize = "organize"

// OrganizerService moves the files of a directory into subdirectories
// named after their MIME category, e.g. "image" or "text".
type OrganizerService struct {
	fs         afero.Fs
	classifier driving.Classifier
	history    driving.HistoryService
}

// NewOrganizerService creates a new organizer. history may be nil.
func NewOrganizerService(fs afero.Fs, classifier driving.Classifier, history driving.HistoryService) *OrganizerService {
	return &OrganizerService{
		fs:         fs,
		classifier: classifier,
		history:    history,
	}
}

// Plan classifies every file directly inside dir and computes its move.
// Unclassifiable files are skipped; occupied destinations are rejected.
func (s *OrganizerService) Plan(dir string) (*domain.Plan, error) {
	if err := requireDir(s.fs, opOrganize, dir); err != nil {
		return nil, err
	}

	files, skipped, err := listFiles(s.fs, dir, domain.RenameOrderName)
	if err != nil {
		return nil, domain.NewPathError(opOrganize, dir, domain.ErrOSFailure, err)
	}

	logger.Section("Organize " + dir)
	plan := &domain.Plan{Operation: domain.OperationOrganize, Directory: dir, Skipped: skipped}
	dests := newDestinations(s.fs)

	for _, info := range files {
		src := filepath.Join(dir, info.Name())

		mimeType, ok, err := s.classifier.Classify(src)
		if err != nil {
			plan.Actions = append(plan.Actions, domain.PlannedAction{Source: src, Err: err})
			continue
		}
		if !ok {
			plan.Skipped = append(plan.Skipped, domain.SkippedItem{Path: src, Reason: SkipUnclassified})
			continue
		}

		categoryDir := filepath.Join(dir, mimeType.Category())
		action := domain.PlannedAction{
			Source:      src,
			Destination: filepath.Join(categoryDir, info.Name()),
		}
		if catInfo, err := s.fs.Stat(categoryDir); err == nil && !catInfo.IsDir() {
			action.Err = domain.NewPathError(opOrganize, categoryDir, domain.ErrConflict, errCategoryNotDir)
		} else {
			action.Err = dests.claim(opOrganize, src, action.Destination)
		}
		plan.Actions = append(plan.Actions, action)
	}

	return plan, nil
}

// Organize plans dir and, unless opts.DryRun is set, performs the moves.
func (s *OrganizerService) Organize(ctx context.Context, dir string, opts driving.OrganizeOptions) (*domain.BatchResult, error) {
	plan, err := s.Plan(dir)
	if err != nil {
		return nil, err
	}

	return runBatch(ctx, plan, opts.DryRun, s.apply, s.history)
}

func (s *OrganizerService) apply(action domain.PlannedAction) error {
	if err := s.fs.MkdirAll(filepath.Dir(action.Destination), 0755); err != nil {
		return domain.NewPathError(opOrganize, filepath.Dir(action.Destination), domain.ErrOSFailure, err)
	}
	return moveFile(s.fs, opOrganize, action.Source, action.Destination)
}

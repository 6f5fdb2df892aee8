package services

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
	"github.com/custodia-labs/smartfile/internal/logger"
)

// Ensure ClassifierService implements the interface.
var _ driving.Classifier = (*ClassifierService)(nil)

const opClassify = "classify"

// ClassifierService maps files to MIME types.
// The extension table is consulted first; content is only read when the
// extension is unknown.
type ClassifierService struct {
	fs      afero.Fs
	table   driven.ExtensionTable
	sniffer driven.SignatureSniffer
}

// NewClassifierService creates a new classifier.
func NewClassifierService(fs afero.Fs, table driven.ExtensionTable, sniffer driven.SignatureSniffer) *ClassifierService {
	return &ClassifierService{
		fs:      fs,
		table:   table,
		sniffer: sniffer,
	}
}

// Classify returns the MIME type of path, or false when neither the
// extension nor the leading bytes identify it.
func (s *ClassifierService) Classify(path string) (domain.MIMEType, bool, error) {
	if _, err := statFile(s.fs, opClassify, path); err != nil {
		return "", false, err
	}

	if ext := filepath.Ext(path); ext != "" {
		if mimeType, ok := s.table.Lookup(ext); ok {
			logger.Debug("classify %s: extension %s -> %s", path, ext, mimeType)
			return mimeType, true, nil
		}
	}

	header, err := s.readHeader(path)
	if err != nil {
		return "", false, err
	}

	mimeType, ok := s.sniffer.Sniff(header)
	if ok {
		logger.Debug("classify %s: signature -> %s", path, mimeType)
	} else {
		logger.Debug("classify %s: unknown", path)
	}
	return mimeType, ok, nil
}

func (s *ClassifierService) readHeader(path string) ([]byte, error) {
	f, err := openFile(s.fs, opClassify, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header := make([]byte, s.sniffer.HeaderSize())
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, domain.NewPathError(opClassify, path, domain.ErrOSFailure, err)
	}
	return header[:n], nil
}

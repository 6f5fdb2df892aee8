package services

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
	"github.com/custodia-labs/smartfile/internal/logger"
)

// Ensure MetadataService implements the interface.
var _ driving.MetadataExtractor = (*MetadataService)(nil)

const opMetadata = "metadata"

// decodableImages lists the image subtypes the image codec can read.
var decodableImages = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"tiff": true,
	"webp": true,
}

// MetadataService extracts per-category metadata.
type MetadataService struct {
	fs         afero.Fs
	images     driven.ImageCodec
	pdfs       driven.PDFReader
	times      driven.FileTimes
	classifier driving.Classifier
	dispatch   domain.MetadataDispatch
}

// NewMetadataService creates a new metadata extractor.
// classifier is only consulted when dispatch is MetadataDispatchClassifier.
func NewMetadataService(
	fs afero.Fs,
	images driven.ImageCodec,
	pdfs driven.PDFReader,
	times driven.FileTimes,
	classifier driving.Classifier,
	dispatch domain.MetadataDispatch,
) *MetadataService {
	if !dispatch.IsValid() {
		dispatch = domain.MetadataDispatchExtension
	}
	return &MetadataService{
		fs:         fs,
		images:     images,
		pdfs:       pdfs,
		times:      times,
		classifier: classifier,
		dispatch:   dispatch,
	}
}

// Extract returns the metadata record for path.
func (s *MetadataService) Extract(path string) (*domain.Metadata, error) {
	info, err := statFile(s.fs, opMetadata, path)
	if err != nil {
		return nil, err
	}

	kind, err := s.kindOf(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("metadata %s: %s reader (%s dispatch)", path, kind, s.dispatch)

	switch kind {
	case domain.MetadataKindImage:
		return s.extractImage(path)
	case domain.MetadataKindPDF:
		return s.extractPDF(path, info)
	default:
		return &domain.Metadata{
			Kind: domain.MetadataKindFile,
			Path: path,
			File: &domain.FileMetadata{
				Size:    info.Size(),
				Created: s.times.Created(path, info),
			},
		}, nil
	}
}

func (s *MetadataService) kindOf(path string) (domain.MetadataKind, error) {
	if s.dispatch == domain.MetadataDispatchClassifier && s.classifier != nil {
		mimeType, ok, err := s.classifier.Classify(path)
		if err != nil {
			return "", err
		}
		switch {
		case !ok:
			return domain.MetadataKindFile, nil
		case mimeType == domain.MIMEPDF:
			return domain.MetadataKindPDF, nil
		case mimeType.IsImage() && decodableImages[mimeType.Subtype()]:
			return domain.MetadataKindImage, nil
		default:
			return domain.MetadataKindFile, nil
		}
	}

	// Case-sensitive: "photo.JPG" is a generic file.
	switch {
	case strings.HasSuffix(path, ".jpg"), strings.HasSuffix(path, ".png"):
		return domain.MetadataKindImage, nil
	case strings.HasSuffix(path, ".pdf"):
		return domain.MetadataKindPDF, nil
	default:
		return domain.MetadataKindFile, nil
	}
}

func (s *MetadataService) extractImage(path string) (*domain.Metadata, error) {
	f, err := openFile(s.fs, opMetadata, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := s.images.Inspect(f)
	if err != nil {
		return nil, domain.NewPathError(opMetadata, path, domain.ErrDecode, err)
	}

	if img.Format == "JPEG" || img.Format == "TIFF" {
		if _, err := f.Seek(0, io.SeekStart); err == nil {
			img.EXIF = s.images.EXIF(f)
		}
	}

	return &domain.Metadata{Kind: domain.MetadataKindImage, Path: path, Image: img}, nil
}

func (s *MetadataService) extractPDF(path string, info os.FileInfo) (*domain.Metadata, error) {
	f, err := openFile(s.fs, opMetadata, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := s.pdfs.Read(f, info.Size())
	if err != nil {
		return nil, domain.NewPathError(opMetadata, path, domain.ErrDecode, err)
	}

	return &domain.Metadata{Kind: domain.MetadataKindPDF, Path: path, PDF: doc}, nil
}

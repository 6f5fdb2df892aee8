package services

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"
	"unicode"

	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
)

// Ensure PreviewService implements the interface.
var _ driving.Previewer = (*PreviewService)(nil)

const (
	opPreviewText  = "preview text"
	opPreviewImage = "preview image"
)

// PreviewService renders text excerpts and image thumbnails.
type PreviewService struct {
	fs     afero.Fs
	images driven.ImageCodec
	maxDim int
}

// NewPreviewService creates a new previewer. Thumbnails fit within
// maxDim pixels on both axes; maxDim <= 0 uses the default.
func NewPreviewService(fs afero.Fs, images driven.ImageCodec, maxDim int) *PreviewService {
	if maxDim <= 0 {
		maxDim = domain.DefaultThumbnailSize
	}
	return &PreviewService{
		fs:     fs,
		images: images,
		maxDim: maxDim,
	}
}

// PreviewText reads the first numLines lines of path. Trailing whitespace
// is stripped, lines left empty are dropped and the rest joined with "\n".
// Empty lines still count toward numLines.
func (s *PreviewService) PreviewText(path string, numLines int) (string, error) {
	if numLines < 0 {
		return "", domain.NewPathError(opPreviewText, path, domain.ErrInvalidArgument,
			fmt.Errorf("negative line count %d", numLines))
	}
	if _, err := statFile(s.fs, opPreviewText, path); err != nil {
		return "", err
	}
	if numLines == 0 {
		return "", nil
	}

	f, err := openFile(s.fs, opPreviewText, path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var lines []string
	for read := 0; read < numLines; read++ {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.ToValidUTF8(line, string(unicode.ReplacementChar))
			if trimmed := strings.TrimRightFunc(line, unicode.IsSpace); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", domain.NewPathError(opPreviewText, path, domain.ErrOSFailure, err)
		}
	}

	return strings.Join(lines, "\n"), nil
}

// PreviewImage decodes path and downscales it to the configured bound.
func (s *PreviewService) PreviewImage(path string) (image.Image, error) {
	if _, err := statFile(s.fs, opPreviewImage, path); err != nil {
		return nil, err
	}

	f, err := openFile(s.fs, opPreviewImage, path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := s.images.Decode(f)
	if err != nil {
		return nil, domain.NewPathError(opPreviewImage, path, domain.ErrDecode, err)
	}

	return s.images.Thumbnail(img, s.maxDim), nil
}

// Package pdf reads document information from PDF files.
package pdf

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.PDFReader = (*Reader)(nil)

// ErrNoPages indicates a document whose page tree is missing or empty.
var ErrNoPages = errors.New("pdf: document has no page tree")

// Reader implements driven.PDFReader using ledongthuc/pdf.
type Reader struct{}

// New creates a PDF reader.
func New() *Reader {
	return &Reader{}
}

// Read parses the trailer and returns the Info author and the page count.
func (r *Reader) Read(ra io.ReaderAt, size int64) (meta *domain.PDFMetadata, err error) {
	// The parser panics on some malformed object graphs.
	defer func() {
		if p := recover(); p != nil {
			meta = nil
			err = fmt.Errorf("pdf: malformed document: %v", p)
		}
	}()

	doc, err := pdf.NewReader(ra, size)
	if err != nil {
		return nil, err
	}

	pages := doc.Trailer().Key("Root").Key("Pages")
	if pages.IsNull() {
		return nil, ErrNoPages
	}

	return &domain.PDFMetadata{
		Author: strings.TrimSpace(doc.Trailer().Key("Info").Key("Author").Text()),
		Pages:  doc.NumPage(),
	}, nil
}

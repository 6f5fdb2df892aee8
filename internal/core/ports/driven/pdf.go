package driven

import (
	"io"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

// PDFReader parses PDF documents.
type PDFReader interface {
	// Read parses the document and returns its author and page count.
	Read(r io.ReaderAt, size int64) (*domain.PDFMetadata, error)
}

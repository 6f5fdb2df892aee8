package mimetypes

import (
	"github.com/h2non/filetype"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

// Ensure Sniffer implements the interface.
var _ driven.SignatureSniffer = (*Sniffer)(nil)

// headerSize covers every signature in the filetype matcher set.
const headerSize = 262

// Sniffer is the content tier of the type classifier.
type Sniffer struct{}

// NewSniffer creates a signature sniffer.
func NewSniffer() *Sniffer {
	return &Sniffer{}
}

// HeaderSize returns the number of leading bytes Sniff inspects.
func (s *Sniffer) HeaderSize() int {
	return headerSize
}

// Sniff matches header against known binary signatures.
func (s *Sniffer) Sniff(header []byte) (domain.MIMEType, bool) {
	if len(header) == 0 {
		return "", false
	}

	kind, err := filetype.Match(header)
	if err != nil || kind == filetype.Unknown {
		return "", false
	}

	return domain.ParseMIMEType(kind.MIME.Value)
}

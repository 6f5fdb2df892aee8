package driven

import "github.com/custodia-labs/smartfile/internal/core/domain"

// ExtensionTable maps file extensions to MIME types.
type ExtensionTable interface {
	// Lookup returns the MIME type registered for ext.
	// ext includes the leading dot; matching is case-insensitive.
	Lookup(ext string) (domain.MIMEType, bool)
}

// SignatureSniffer infers a MIME type from the leading bytes of a file.
type SignatureSniffer interface {
	// HeaderSize is the number of leading bytes Sniff needs.
	HeaderSize() int

	// Sniff matches header against known binary signatures.
	// An empty or unrecognised header returns false.
	Sniff(header []byte) (domain.MIMEType, bool)
}

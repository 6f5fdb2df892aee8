package driving

import "github.com/custodia-labs/smartfile/internal/core/domain"

// Classifier maps a file to its MIME type.
type Classifier interface {
	// Classify returns the MIME type of path, or false when unknown.
	// Errors are ErrInvalidArgument or ErrNotFound.
	Classify(path string) (domain.MIMEType, bool, error)
}

package driving

import "github.com/custodia-labs/smartfile/internal/core/domain"

// MetadataExtractor reads per-category metadata from a file.
type MetadataExtractor interface {
	// Extract returns the metadata record for path.
	Extract(path string) (*domain.Metadata, error)
}

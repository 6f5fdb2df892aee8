package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_Fields(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		meta     Metadata
		expected map[string]any
	}{
		{
			name: "image",
			meta: Metadata{
				Kind:  MetadataKindImage,
				Image: &ImageMetadata{Format: "PNG", Width: 100, Height: 50, Mode: "RGB"},
			},
			expected: map[string]any{"format": "PNG", "size": [2]int{100, 50}, "mode": "RGB"},
		},
		{
			name: "image with exif",
			meta: Metadata{
				Kind: MetadataKindImage,
				Image: &ImageMetadata{
					Format: "JPEG", Width: 4, Height: 3, Mode: "RGB",
					EXIF: &EXIFData{CameraMake: "Canon", TakenAt: created},
				},
			},
			expected: map[string]any{
				"format": "JPEG", "size": [2]int{4, 3}, "mode": "RGB",
				"camera_make": "Canon", "taken_at": created,
			},
		},
		{
			name:     "pdf with author",
			meta:     Metadata{Kind: MetadataKindPDF, PDF: &PDFMetadata{Author: "Jane", Pages: 3}},
			expected: map[string]any{"author": "Jane", "num_pages": 3},
		},
		{
			name:     "pdf without author",
			meta:     Metadata{Kind: MetadataKindPDF, PDF: &PDFMetadata{Pages: 1}},
			expected: map[string]any{"author": nil, "num_pages": 1},
		},
		{
			name:     "generic file",
			meta:     Metadata{Kind: MetadataKindFile, File: &FileMetadata{Size: 42, Created: created}},
			expected: map[string]any{"size": int64(42), "created": created},
		},
		{
			name:     "kind without payload",
			meta:     Metadata{Kind: MetadataKindPDF},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.meta.Fields())
		})
	}
}

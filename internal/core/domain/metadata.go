package domain

import "time"

// MetadataKind tags which variant of Metadata is populated.
type MetadataKind string

// Metadata kinds.
const (
	MetadataKindImage MetadataKind = "image"
	MetadataKindPDF   MetadataKind = "pdf"
	MetadataKindFile  MetadataKind = "file"
)

// Metadata is a tagged union of per-category file metadata.
// Exactly one of Image, PDF or File is non-nil, matching Kind.
type Metadata struct {
	Kind  MetadataKind
	Path  string
	Image *ImageMetadata
	PDF   *PDFMetadata
	File  *FileMetadata
}

// ImageMetadata describes a raster image.
type ImageMetadata struct {
	// Format is the upper-case codec name, e.g. "PNG" or "JPEG".
	Format string
	Width  int
	Height int
	// Mode is the colour mode, e.g. "RGB", "RGBA", "L", "P", "CMYK".
	Mode string
	// EXIF is nil when the image carries no readable EXIF block.
	EXIF *EXIFData
}

// EXIFData is the subset of EXIF tags smartfile reports.
type EXIFData struct {
	CameraMake  string
	CameraModel string
	TakenAt     time.Time
}

// PDFMetadata describes a PDF document.
type PDFMetadata struct {
	// Author is empty when the document info dictionary has none.
	Author string
	Pages  int
}

// FileMetadata is the generic fallback for any other file.
type FileMetadata struct {
	Size    int64
	Created time.Time
}

// Fields flattens the populated variant into an attribute map.
// An unset PDF author maps to nil.
func (m *Metadata) Fields() map[string]any {
	fields := make(map[string]any)

	switch m.Kind {
	case MetadataKindImage:
		if m.Image == nil {
			return fields
		}
		fields["format"] = m.Image.Format
		fields["size"] = [2]int{m.Image.Width, m.Image.Height}
		fields["mode"] = m.Image.Mode
		if m.Image.EXIF != nil {
			if m.Image.EXIF.CameraMake != "" {
				fields["camera_make"] = m.Image.EXIF.CameraMake
			}
			if m.Image.EXIF.CameraModel != "" {
				fields["camera_model"] = m.Image.EXIF.CameraModel
			}
			if !m.Image.EXIF.TakenAt.IsZero() {
				fields["taken_at"] = m.Image.EXIF.TakenAt
			}
		}
	case MetadataKindPDF:
		if m.PDF == nil {
			return fields
		}
		if m.PDF.Author == "" {
			fields["author"] = nil
		} else {
			fields["author"] = m.PDF.Author
		}
		fields["num_pages"] = m.PDF.Pages
	case MetadataKindFile:
		if m.File == nil {
			return fields
		}
		fields["size"] = m.File.Size
		fields["created"] = m.File.Created
	}

	return fields
}

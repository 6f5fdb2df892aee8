package driven

import (
	"image"
	"io"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

// ImageCodec decodes raster images and produces thumbnails.
// Decoding errors are returned as-is; services classify them as ErrDecode.
type ImageCodec interface {
	// Inspect reads format, dimensions and colour mode without decoding pixels.
	Inspect(r io.Reader) (*domain.ImageMetadata, error)

	// Decode reads a full image.
	Decode(r io.Reader) (image.Image, error)

	// Thumbnail downscales img to fit within maxDim on both axes.
	// Images already within bounds are returned at their original size.
	Thumbnail(img image.Image, maxDim int) image.Image

	// EXIF extracts an EXIF summary, or nil when none is readable.
	EXIF(r io.Reader) *domain.EXIFData
}

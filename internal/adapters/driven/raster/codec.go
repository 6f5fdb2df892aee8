// Package raster decodes raster images, reports their properties and
// renders thumbnails.
package raster

import (
	"bufio"
	"bytes"
	"image"
	"image/color"
	"io"
	"strings"

	// Register decoders for image.DecodeConfig and imaging.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.ImageCodec = (*Codec)(nil)

// Codec implements driven.ImageCodec with the standard decoders and imaging.
type Codec struct {
	filter imaging.ResampleFilter
}

// New creates a codec that resamples thumbnails with Lanczos.
func New() *Codec {
	return &Codec{filter: imaging.Lanczos}
}

// PNG signature plus the IHDR fields up to and including the colour type.
const pngHeaderLen = 26

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngGreyAlpha is the IHDR colour type for greyscale with alpha.
const pngGreyAlpha = 4

// Inspect reads format, dimensions and colour mode from the image header.
func (c *Codec) Inspect(r io.Reader) (*domain.ImageMetadata, error) {
	br := bufio.NewReader(r)
	greyAlpha := isGreyAlphaPNG(br)

	cfg, format, err := image.DecodeConfig(br)
	if err != nil {
		return nil, err
	}

	mode := colorMode(cfg.ColorModel)
	if greyAlpha {
		// image/png widens grey+alpha to NRGBA.
		mode = "LA"
	}

	return &domain.ImageMetadata{
		Format: strings.ToUpper(format),
		Width:  cfg.Width,
		Height: cfg.Height,
		Mode:   mode,
	}, nil
}

// isGreyAlphaPNG peeks at the IHDR colour type without consuming input.
func isGreyAlphaPNG(br *bufio.Reader) bool {
	header, err := br.Peek(pngHeaderLen)
	if err != nil {
		return false
	}
	return bytes.HasPrefix(header, pngSignature) &&
		string(header[12:16]) == "IHDR" &&
		header[pngHeaderLen-1] == pngGreyAlpha
}

// Decode reads a full image. EXIF orientation is not applied.
func (c *Codec) Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r)
}

// Thumbnail downscales img to fit within maxDim x maxDim, keeping aspect ratio.
func (c *Codec) Thumbnail(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxDim && b.Dy() <= maxDim {
		return img
	}
	return imaging.Fit(img, maxDim, maxDim, c.filter)
}

// EXIF extracts camera make, model and capture time.
func (c *Codec) EXIF(r io.Reader) *domain.EXIFData {
	x, err := exif.Decode(r)
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		return nil
	}

	data := &domain.EXIFData{
		CameraMake:  exifString(x, exif.Make),
		CameraModel: exifString(x, exif.Model),
	}
	if t, err := x.DateTime(); err == nil {
		data.TakenAt = t
	}

	if data.CameraMake == "" && data.CameraModel == "" && data.TakenAt.IsZero() {
		return nil
	}
	return data
}

func exifString(x *exif.Exif, field exif.FieldName) string {
	tag, err := x.Get(field)
	if err != nil {
		return ""
	}
	s, err := tag.StringVal()
	if err != nil {
		return ""
	}
	return strings.TrimRight(s, "\x00 ")
}

// colorMode names a colour model the way image tools usually report it.
// PNG truecolour without alpha decodes to RGBAModel, with alpha to NRGBAModel.
func colorMode(m color.Model) string {
	// Palettes are slices and must not reach the == comparisons below.
	if _, ok := m.(color.Palette); ok {
		return "P"
	}

	switch m {
	case color.GrayModel:
		return "L"
	case color.Gray16Model:
		return "I;16"
	case color.RGBAModel, color.RGBA64Model, color.YCbCrModel:
		return "RGB"
	case color.NRGBAModel, color.NRGBA64Model, color.NYCbCrAModel:
		return "RGBA"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "A"
	default:
		return "RGBA"
	}
}

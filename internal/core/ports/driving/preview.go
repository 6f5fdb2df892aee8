package driving

import "image"

// Previewer renders lightweight previews.
type Previewer interface {
	// PreviewText returns up to numLines leading lines, trailing whitespace
	// stripped and empty lines dropped, joined with "\n".
	PreviewText(path string, numLines int) (string, error)

	// PreviewImage returns a thumbnail bounded by the configured size.
	PreviewImage(path string) (image.Image, error)
}

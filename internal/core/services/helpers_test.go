package services

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/smartfile/internal/adapters/driven/mimetypes"
)

// pngSignature is enough for the sniffer to recognise a PNG.
var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func writeFile(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, data, 0644))
}

func writeFileAt(t *testing.T, fs afero.Fs, path string, data []byte, mtime time.Time) {
	t.Helper()
	writeFile(t, fs, path, data)
	require.NoError(t, fs.Chtimes(path, mtime, mtime))
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.NRGBA{R: 255, A: 128})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func newTestClassifier(fs afero.Fs) *ClassifierService {
	return NewClassifierService(fs, mimetypes.NewTable(false), mimetypes.NewSniffer())
}

func fileExists(t *testing.T, fs afero.Fs, path string) bool {
	t.Helper()
	ok, err := afero.Exists(fs, path)
	require.NoError(t, err)
	return ok
}

// renameFailFs fails Rename for one source path with err.
type renameFailFs struct {
	afero.Fs
	source string
	err    error
}

func (f *renameFailFs) Rename(oldname, newname string) error {
	if oldname == f.source || f.source == "*" {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: f.err}
	}
	return f.Fs.Rename(oldname, newname)
}

func readString(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

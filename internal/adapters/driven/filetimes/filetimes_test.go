package filetimes

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_OsFs(t *testing.T) {
	before := time.Now().Add(-time.Minute)

	path := filepath.Join(t.TempDir(), "created.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))
	info, err := os.Stat(path)
	require.NoError(t, err)

	created := New(afero.NewOsFs()).Created(path, info)

	assert.False(t, created.IsZero())
	assert.True(t, created.After(before), "created %v should be after %v", created, before)
	assert.True(t, created.Before(time.Now().Add(time.Minute)))
}

func TestResolver_OsFs_MissingFileFallsBackToModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.NoError(t, os.Remove(path))

	created := New(afero.NewOsFs()).Created(path, info)

	assert.Equal(t, info.ModTime(), created)
}

func TestResolver_MemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/a.txt", []byte("a"), 0644))
	mtime := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, fs.Chtimes("/data/a.txt", mtime, mtime))
	info, err := fs.Stat("/data/a.txt")
	require.NoError(t, err)

	created := New(fs).Created("/data/a.txt", info)

	assert.True(t, mtime.Equal(created))
}

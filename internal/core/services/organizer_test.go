package services

import (
	"context"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/smartfile/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/smartfile/internal/core/domain"
	"github.com/custodia-labs/smartfile/internal/core/ports/driving"
)

func seedMixedDir(t *testing.T, fs afero.Fs) {
	t.Helper()
	writeFile(t, fs, "/d/a.jpg", jpegBytes(t, 2, 2))
	writeFile(t, fs, "/d/b.txt", []byte("hello"))
	writeFile(t, fs, "/d/c.pdf", []byte("%PDF-1.4"))
	writeFile(t, fs, "/d/d.xyz", []byte("no signature here"))
}

func newTestOrganizer(fs afero.Fs, history driving.HistoryService) *OrganizerService {
	return NewOrganizerService(fs, newTestClassifier(fs), history)
}

func TestOrganizerService_Organize(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedMixedDir(t, fs)
	svc := newTestOrganizer(fs, nil)

	result, err := svc.Organize(context.Background(), "/d", driving.OrganizeOptions{})

	require.NoError(t, err)
	assert.False(t, result.HasFailures())
	assert.Len(t, result.Applied, 3)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "/d/d.xyz", result.Skipped[0].Path)
	assert.Equal(t, SkipUnclassified, result.Skipped[0].Reason)
	assert.NotEmpty(t, result.RunID)

	for _, path := range []string{"/d/image/a.jpg", "/d/text/b.txt", "/d/application/c.pdf", "/d/d.xyz"} {
		assert.True(t, fileExists(t, fs, path), path)
	}
	for _, path := range []string{"/d/a.jpg", "/d/b.txt", "/d/c.pdf"} {
		assert.False(t, fileExists(t, fs, path), path)
	}
	assert.Equal(t, "hello", readString(t, fs, "/d/text/b.txt"))
}

func TestOrganizerService_Organize_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedMixedDir(t, fs)
	svc := newTestOrganizer(fs, nil)

	_, err := svc.Organize(context.Background(), "/d", driving.OrganizeOptions{})
	require.NoError(t, err)

	second, err := svc.Organize(context.Background(), "/d", driving.OrganizeOptions{})

	require.NoError(t, err)
	assert.Empty(t, second.Applied)
	assert.Empty(t, second.Failed)
	assert.Len(t, second.Skipped, 1)
	assert.True(t, fileExists(t, fs, "/d/image/a.jpg"))
	assert.False(t, fileExists(t, fs, "/d/image/image/a.jpg"))
}

func TestOrganizerService_Organize_DryRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedMixedDir(t, fs)
	history := NewHistoryService(memory.NewHistoryStore(), true)
	svc := newTestOrganizer(fs, history)

	result, err := svc.Organize(context.Background(), "/d", driving.OrganizeOptions{DryRun: true})

	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.Len(t, result.Applied, 3)
	for _, path := range []string{"/d/a.jpg", "/d/b.txt", "/d/c.pdf", "/d/d.xyz"} {
		assert.True(t, fileExists(t, fs, path), path)
	}
	assert.False(t, fileExists(t, fs, "/d/image"))

	entries, err := history.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOrganizerService_Plan(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedMixedDir(t, fs)
	require.NoError(t, fs.MkdirAll("/d/existing", 0755))
	svc := newTestOrganizer(fs, nil)

	plan, err := svc.Plan("/d")

	require.NoError(t, err)
	assert.Equal(t, domain.OperationOrganize, plan.Operation)
	assert.Equal(t, []domain.PlannedAction{
		{Source: "/d/a.jpg", Destination: "/d/image/a.jpg"},
		{Source: "/d/b.txt", Destination: "/d/text/b.txt"},
		{Source: "/d/c.pdf", Destination: "/d/application/c.pdf"},
	}, plan.Actions)
	assert.Len(t, plan.Skipped, 1)
}

func TestOrganizerService_Conflicts(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/d/b.txt", []byte("new"))
	writeFile(t, fs, "/d/text/b.txt", []byte("old"))
	writeFile(t, fs, "/d/a.jpg", jpegBytes(t, 2, 2))
	writeFile(t, fs, "/d/image", []byte("a plain file named like a category"))
	writeFile(t, fs, "/d/c.txt", []byte("fine"))
	svc := newTestOrganizer(fs, nil)

	result, err := svc.Organize(context.Background(), "/d", driving.OrganizeOptions{})

	require.NoError(t, err)
	require.Len(t, result.Failed, 2)
	for _, failed := range result.Failed {
		assert.True(t, domain.IsConflict(failed.Err), failed.Err)
	}
	assert.Equal(t, "/d/a.jpg", result.Failed[0].Path)
	assert.Equal(t, "/d/b.txt", result.Failed[1].Path)

	// Nothing overwritten.
	assert.Equal(t, "new", readString(t, fs, "/d/b.txt"))
	assert.Equal(t, "old", readString(t, fs, "/d/text/b.txt"))
	assert.True(t, fileExists(t, fs, "/d/a.jpg"))

	// Unaffected files still move.
	require.Len(t, result.Applied, 1)
	assert.Equal(t, "/d/text/c.txt", result.Applied[0].Destination)
}

func TestOrganizerService_ContinuesAfterOSFailure(t *testing.T) {
	base := afero.NewMemMapFs()
	seedMixedDir(t, base)
	fs := &renameFailFs{Fs: base, source: "/d/b.txt", err: syscall.EACCES}
	svc := newTestOrganizer(fs, nil)

	result, err := svc.Organize(context.Background(), "/d", driving.OrganizeOptions{})

	require.NoError(t, err)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "/d/b.txt", result.Failed[0].Path)
	assert.ErrorIs(t, result.Failed[0].Err, domain.ErrOSFailure)
	assert.ErrorIs(t, result.Failed[0].Err, syscall.EACCES)
	assert.Len(t, result.Applied, 2)
	assert.True(t, fileExists(t, fs, "/d/b.txt"))
	assert.True(t, fileExists(t, fs, "/d/application/c.pdf"))
}

func TestOrganizerService_CrossDeviceFallback(t *testing.T) {
	base := afero.NewMemMapFs()
	writeFile(t, base, "/d/b.txt", []byte("moved by copy"))
	fs := &renameFailFs{Fs: base, source: "*", err: syscall.EXDEV}
	svc := newTestOrganizer(fs, nil)

	result, err := svc.Organize(context.Background(), "/d", driving.OrganizeOptions{})

	require.NoError(t, err)
	assert.Empty(t, result.Failed)
	assert.False(t, fileExists(t, fs, "/d/b.txt"))
	assert.Equal(t, "moved by copy", readString(t, fs, "/d/text/b.txt"))
}

func TestOrganizerService_RecordsHistory(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedMixedDir(t, fs)
	history := NewHistoryService(memory.NewHistoryStore(), true)
	svc := newTestOrganizer(fs, history)

	result, err := svc.Organize(context.Background(), "/d", driving.OrganizeOptions{})
	require.NoError(t, err)

	entries, err := history.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, result.RunID, e.RunID)
		assert.Equal(t, domain.OperationOrganize, e.Operation)
	}
}

func TestOrganizerService_Cancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	seedMixedDir(t, fs)
	svc := newTestOrganizer(fs, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := svc.Organize(ctx, "/d", driving.OrganizeOptions{})

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Empty(t, result.Applied)
	assert.True(t, fileExists(t, fs, "/d/a.jpg"))
}

func TestOrganizerService_InvalidDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/d/file.txt", []byte("x"))
	svc := newTestOrganizer(fs, nil)

	for _, dir := range []string{"/missing", "/d/file.txt", ""} {
		_, err := svc.Organize(context.Background(), dir, driving.OrganizeOptions{})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, dir)
	}
}

func TestOrganizerService_OsFs(t *testing.T) {
	dir := t.TempDir()
	fs := afero.NewOsFs()
	writeFile(t, fs, dir+"/notes.txt", []byte("on disk"))
	writeFile(t, fs, dir+"/blob.xyz", []byte("unknown"))

	result, err := newTestOrganizer(fs, nil).Organize(context.Background(), dir, driving.OrganizeOptions{})

	require.NoError(t, err)
	assert.Len(t, result.Applied, 1)
	assert.Equal(t, "on disk", readString(t, fs, dir+"/text/notes.txt"))
	assert.True(t, fileExists(t, fs, dir+"/blob.xyz"))
}

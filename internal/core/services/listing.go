package services

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

// listFiles returns the regular files directly inside dir in the given order.
// Symlinks are followed; a link to a regular file is listed under the link's
// name. Subdirectories, and links to them, are never included. Other entries
// (broken links, devices, pipes, sockets) are returned as skipped.
func listFiles(fs afero.Fs, dir string, order domain.RenameOrder) ([]os.FileInfo, []domain.SkippedItem, error) {
	d, err := fs.Open(dir)
	if err != nil {
		return nil, nil, err
	}
	defer d.Close()

	entries, err := d.Readdir(-1)
	if err != nil {
		return nil, nil, err
	}

	files := make([]os.FileInfo, 0, len(entries))
	var skipped []domain.SkippedItem
	for _, entry := range entries {
		mode := entry.Mode()
		switch {
		case mode.IsRegular():
			files = append(files, entry)
			continue
		case mode.IsDir():
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if mode&os.ModeSymlink != 0 {
			target, err := fs.Stat(path)
			if err == nil && target.Mode().IsRegular() {
				files = append(files, target)
				continue
			}
			if err == nil && target.IsDir() {
				continue
			}
		}
		skipped = append(skipped, domain.SkippedItem{Path: path, Reason: SkipNotRegular})
	}

	switch order {
	case domain.RenameOrderNative:
		// Keep the listing order.
	case domain.RenameOrderModified:
		sort.SliceStable(files, func(i, j int) bool {
			ti, tj := files[i].ModTime(), files[j].ModTime()
			if ti.Equal(tj) {
				return files[i].Name() < files[j].Name()
			}
			return ti.Before(tj)
		})
	default:
		sort.Slice(files, func(i, j int) bool {
			return files[i].Name() < files[j].Name()
		})
	}

	sort.Slice(skipped, func(i, j int) bool {
		return skipped[i].Path < skipped[j].Path
	})

	return files, skipped, nil
}

package services

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/domain"
)

var (
	errNotPathLike  = errors.New("path is empty or contains NUL")
	errIsDirectory  = errors.New("is a directory")
	errNotDirectory = errors.New("not a directory")
	errNotRegular   = errors.New("not a regular file")
)

// validatePath rejects values that cannot name a file.
func validatePath(op, path string) error {
	if path == "" || strings.ContainsRune(path, 0) {
		return domain.NewPathError(op, path, domain.ErrInvalidArgument, errNotPathLike)
	}
	return nil
}

// statFile returns info for an existing regular file. Symlinks are
// followed; pipes, devices and sockets are rejected before anything opens
// them.
func statFile(fs afero.Fs, op, path string) (os.FileInfo, error) {
	if err := validatePath(op, path); err != nil {
		return nil, err
	}

	info, err := fs.Stat(path)
	if err != nil {
		return nil, statError(op, path, err)
	}
	if info.IsDir() {
		return nil, domain.NewPathError(op, path, domain.ErrInvalidArgument, errIsDirectory)
	}
	if !info.Mode().IsRegular() {
		return nil, domain.NewPathError(op, path, domain.ErrInvalidArgument, errNotRegular)
	}
	return info, nil
}

// requireDir checks that dir exists and is a directory.
func requireDir(fs afero.Fs, op, dir string) error {
	if err := validatePath(op, dir); err != nil {
		return err
	}

	info, err := fs.Stat(dir)
	if err != nil {
		return domain.NewPathError(op, dir, domain.ErrInvalidArgument, err)
	}
	if !info.IsDir() {
		return domain.NewPathError(op, dir, domain.ErrInvalidArgument, errNotDirectory)
	}
	return nil
}

// openFile opens path for reading with errors mapped to domain kinds.
func openFile(fs afero.Fs, op, path string) (afero.File, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, statError(op, path, err)
	}
	return f, nil
}

func statError(op, path string, err error) error {
	if os.IsNotExist(err) {
		return domain.NewPathError(op, path, domain.ErrNotFound, err)
	}
	return domain.NewPathError(op, path, domain.ErrOSFailure, err)
}

// exists reports whether anything occupies path.
func exists(fs afero.Fs, path string) bool {
	if lstater, ok := fs.(afero.Lstater); ok {
		_, _, err := lstater.LstatIfPossible(path)
		return err == nil
	}
	_, err := fs.Stat(path)
	return err == nil
}

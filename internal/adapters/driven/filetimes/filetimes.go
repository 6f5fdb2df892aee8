// Package filetimes resolves file creation times across platforms.
package filetimes

import (
	"os"
	"time"

	"github.com/djherbis/times"
	"github.com/spf13/afero"

	"github.com/custodia-labs/smartfile/internal/core/ports/driven"
)

// Ensure Resolver implements the interface.
var _ driven.FileTimes = (*Resolver)(nil)

// Resolver reads creation times from the OS when the filesystem is the OS
// filesystem, and falls back to modification time otherwise.
type Resolver struct {
	native bool
}

// New creates a resolver for fs.
func New(fs afero.Fs) *Resolver {
	_, native := fs.(*afero.OsFs)
	return &Resolver{native: native}
}

// Created returns birth time, else status change time, else modification time.
func (r *Resolver) Created(path string, info os.FileInfo) time.Time {
	if !r.native {
		return info.ModTime()
	}

	ts, err := times.Stat(path)
	if err != nil {
		return info.ModTime()
	}

	switch {
	case ts.HasBirthTime():
		return ts.BirthTime()
	case ts.HasChangeTime():
		return ts.ChangeTime()
	default:
		return ts.ModTime()
	}
}

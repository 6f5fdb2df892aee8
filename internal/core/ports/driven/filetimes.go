package driven

import (
	"os"
	"time"
)

// FileTimes resolves a file's creation time.
type FileTimes interface {
	// Created returns the birth time where the platform records one,
	// otherwise the best available proxy (status change, then modification).
	Created(path string, info os.FileInfo) time.Time
}

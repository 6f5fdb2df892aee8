package domain

import "time"

// HistoryEntry records one applied move or rename.
// History is informational only; nothing replays or reverts it.
type HistoryEntry struct {
	RunID       string
	Operation   Operation
	Source      string
	Destination string
	AppliedAt   time.Time
}

package domain

// Operation names a batch operation.
type Operation string

// Batch operations.
const (
	OperationOrganize Operation = "organize"
	OperationRename   Operation = "rename"
)

// PlannedAction is one source -> destination mutation computed before
// anything on disk changes. A non-nil Err rejects the action.
type PlannedAction struct {
	Source      string
	Destination string
	Err         error
}

// SkippedItem is a file deliberately left in place.
type SkippedItem struct {
	Path   string
	Reason string
}

// Plan is the full, validated set of actions for one batch run.
type Plan struct {
	Operation Operation
	Directory string
	Actions   []PlannedAction
	Skipped   []SkippedItem
}

// Accepted returns the actions that passed validation, in order.
func (p *Plan) Accepted() []PlannedAction {
	accepted := make([]PlannedAction, 0, len(p.Actions))
	for _, a := range p.Actions {
		if a.Err == nil {
			accepted = append(accepted, a)
		}
	}
	return accepted
}

// Rejected returns the actions that failed validation, in order.
func (p *Plan) Rejected() []PlannedAction {
	var rejected []PlannedAction
	for _, a := range p.Actions {
		if a.Err != nil {
			rejected = append(rejected, a)
		}
	}
	return rejected
}

// Action is an applied mutation.
type Action struct {
	Source      string
	Destination string
}

// ItemError is a per-file failure inside a batch.
type ItemError struct {
	Path string
	Err  error
}

// BatchResult reports the outcome of a batch run.
type BatchResult struct {
	RunID     string
	Operation Operation
	DryRun    bool
	Applied   []Action
	Skipped   []SkippedItem
	Failed    []ItemError
}

// NewNames returns the base names of applied destinations, in order.
func (r *BatchResult) NewNames() []string {
	names := make([]string, 0, len(r.Applied))
	for _, a := range r.Applied {
		names = append(names, baseName(a.Destination))
	}
	return names
}

// HasFailures returns true if any item failed.
func (r *BatchResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// baseName avoids importing path/filepath for both separators.
func baseName(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' || p[i] == '\\' {
			return p[i+1:]
		}
	}
	return p
}

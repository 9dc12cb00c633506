package operation

import "github.com/walteh/stagesync/pkg/status"

// 📊 Result is the aggregate outcome of a run. The original deployment
// script only logged per-item failures, leaving callers unable to detect
// partial failure; Result exposes the counts and failed items alongside
// the logs.
type Result struct {
	Removed   int // Entries deleted during the clean phase
	Protected int // Entries left untouched by the ignore list
	Copied    int // Mappings copied successfully
	Skipped   int // Mappings skipped because their source was missing

	// Failures holds every isolated per-item error, clean and copy phase alike
	Failures []status.Item
}

// Failed reports whether any item failed
func (r *Result) Failed() bool {
	return len(r.Failures) > 0
}

// fail records a failed item and reports it
func (r *Result) fail(item status.Item) {
	r.Failures = append(r.Failures, item)
}

package types

import "time"

// Status classifies the outcome of mirroring a single source entry.
type Status string

const (
	// StatusCreated means the destination file did not exist before.
	StatusCreated Status = "created"
	// StatusModified means the destination existed with different content.
	StatusModified Status = "modified"
	// StatusUnchanged means the redacted content matches what is already
	// at the destination.
	StatusUnchanged Status = "unchanged"
	// StatusSkipped means the entry was not processed (non-regular entry,
	// or filtered out by globs).
	StatusSkipped Status = "skipped"
)

// Outcome records what happened to one entry during a run. Path is the
// destination path for processed files and the source path for skips.
type Outcome struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Result aggregates per-entry outcomes for a whole invocation.
type Result struct {
	Outcomes       []Outcome     `json:"outcomes"`
	FilesWritten   int           `json:"files_written"`
	FilesUnchanged int           `json:"files_unchanged"`
	Skipped        int           `json:"skipped"`
	DirsEnsured    int           `json:"dirs_ensured"`
	DryRun         bool          `json:"dry_run"`
	Duration       time.Duration `json:"duration_ns"`
}

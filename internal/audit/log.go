// Package audit keeps an append-only JSONL record of completed runs.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/metascrub/metascrub/internal/types"
)

// RunRecord is one line in the audit log.
type RunRecord struct {
	Timestamp      time.Time `json:"timestamp"`
	RunID          string    `json:"run_id"`
	Input          string    `json:"input"`
	Output         string    `json:"output"`
	DryRun         bool      `json:"dry_run"`
	FilesWritten   int       `json:"files_written"`
	FilesUnchanged int       `json:"files_unchanged"`
	Skipped        int       `json:"skipped"`
	Duration       string    `json:"duration"`
}

// Log appends run records to a JSONL file at a fixed path.
type Log struct {
	path string
}

func New(path string) *Log {
	return &Log{path: path}
}

// Append writes one record. The file is owner-only since it names the
// paths that were redacted.
func (l *Log) Append(rec RunRecord) error {
	if rec.RunID == "" {
		rec.RunID = fmt.Sprintf("run_%d", time.Now().Unix())
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// History returns all records, newest first. Malformed lines are skipped.
func (l *Log) History() ([]RunRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []RunRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec RunRecord
		if err := dec.Decode(&rec); err != nil {
			break
		}
		records = append(records, rec)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// NewRunRecord summarizes a walker result for the log.
func NewRunRecord(input, output string, res types.Result) RunRecord {
	return RunRecord{
		Timestamp:      time.Now(),
		Input:          input,
		Output:         output,
		DryRun:         res.DryRun,
		FilesWritten:   res.FilesWritten,
		FilesUnchanged: res.FilesUnchanged,
		Skipped:        res.Skipped,
		Duration:       res.Duration.String(),
	}
}

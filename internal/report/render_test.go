package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/metascrub/metascrub/internal/types"
)

func sampleResult() types.Result {
	return types.Result{
		Outcomes: []types.Outcome{
			{Path: "out/a.txt", Status: types.StatusCreated},
			{Path: "src/dev0", Status: types.StatusSkipped, Reason: "not a regular file or directory"},
		},
		FilesWritten: 1,
		Skipped:      1,
		Duration:     1500 * time.Millisecond,
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleResult(), PrintOptions{NoColor: true})
	out := buf.String()
	for _, want := range []string{"out/a.txt", "created", "skipped", "Files written: 1 (unchanged: 0, skipped: 1)", "Run duration: 1.50s"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintTableDryRun(t *testing.T) {
	res := sampleResult()
	res.DryRun = true
	var buf bytes.Buffer
	PrintTable(&buf, res, PrintOptions{NoColor: true})
	if !strings.Contains(buf.String(), "Files would be written: 1") {
		t.Fatalf("dry-run footer missing:\n%s", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintJSON(&buf, sampleResult()); err != nil {
		t.Fatalf("PrintJSON: %v", err)
	}
	var back types.Result
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.FilesWritten != 1 || len(back.Outcomes) != 2 {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

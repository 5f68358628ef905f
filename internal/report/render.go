// Package report renders run results for humans (table) and pipelines
// (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/metascrub/metascrub/internal/types"
)

// PrintOptions controls table rendering.
type PrintOptions struct {
	NoColor bool
}

// PrintTable writes per-entry outcomes and a summary footer.
func PrintTable(w io.Writer, res types.Result, opts PrintOptions) {
	if len(res.Outcomes) > 0 {
		table := tablewriter.NewWriter(w)
		table.Header("Path", "Status", "Reason")
		for _, o := range res.Outcomes {
			table.Append([]string{o.Path, colorStatus(o.Status, opts.NoColor), o.Reason})
		}
		table.Render()
	}

	verb := "written"
	if res.DryRun {
		verb = "would be written"
	}
	fmt.Fprintf(w, "Files %s: %d (unchanged: %d, skipped: %d)\n", verb, res.FilesWritten, res.FilesUnchanged, res.Skipped)
	if res.Duration > 0 {
		fmt.Fprintf(w, "Run duration: %.2fs\n", res.Duration.Seconds())
	}
}

// PrintJSON writes the whole result as indented JSON.
func PrintJSON(w io.Writer, res types.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func colorStatus(s types.Status, noColor bool) string {
	if noColor {
		return string(s)
	}
	switch s {
	case types.StatusCreated:
		return color.GreenString(string(s))
	case types.StatusModified:
		return color.YellowString(string(s))
	case types.StatusSkipped:
		return color.CyanString(string(s))
	default:
		return string(s)
	}
}

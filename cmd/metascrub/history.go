package metascrub

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metascrub/metascrub/internal/audit"
)

func init() {
	var auditPath string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs from an audit log, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			records, err := audit.New(auditPath).History()
			if err != nil {
				return err
			}
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(records)
			}
			for _, r := range records {
				fmt.Printf("%s  %s -> %s  written=%d unchanged=%d skipped=%d  %s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.Input, r.Output,
					r.FilesWritten, r.FilesUnchanged, r.Skipped, r.Duration)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&auditPath, "audit", "", "path to the audit JSONL file")
	_ = cmd.MarkFlagRequired("audit")
	rootCmd.AddCommand(cmd)
}

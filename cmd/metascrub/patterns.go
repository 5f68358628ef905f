package metascrub

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metascrub/metascrub/internal/redactor"
)

func init() {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List built-in redaction patterns in application order",
		Run: func(_ *cobra.Command, _ []string) {
			for _, r := range redactor.Builtin() {
				fmt.Printf("%-11s %s\n", r.Category, r.Pattern)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}

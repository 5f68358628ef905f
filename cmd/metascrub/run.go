package metascrub

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/metascrub/metascrub/internal/audit"
	"github.com/metascrub/metascrub/internal/config"
	"github.com/metascrub/metascrub/internal/redactor"
	"github.com/metascrub/metascrub/internal/report"
	"github.com/metascrub/metascrub/internal/walker"
)

var (
	flagInput          string
	flagOutput         string
	flagTimestamps     bool
	flagFilepaths      bool
	flagServerNames    bool
	flagCustomPatterns string
	flagDryRun         bool
	flagInclude        string
	flagExclude        string
	flagAudit          string
)

func init() {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Redact metadata from a file or directory tree",
		RunE:  runRun,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagInput, "input", "i", "", "input file or directory")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file or directory")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().BoolVar(&flagTimestamps, "remove-timestamps", false, "remove timestamp metadata")
	cmd.Flags().BoolVar(&flagFilepaths, "remove-filepaths", false, "remove file path metadata")
	cmd.Flags().BoolVar(&flagServerNames, "remove-servernames", false, "remove server name metadata")
	cmd.Flags().StringVar(&flagCustomPatterns, "custom-patterns", "", "file with one regex per line to remove")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "report intended changes without writing")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs (directory mode)")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs (directory mode)")
	cmd.Flags().StringVar(&flagAudit, "audit", "", "append a run record to this JSONL file")
}

func runRun(_ *cobra.Command, _ []string) error {
	// Config precedence: CLI > local file > global file.
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}

	logger := newLogger()

	w, err := walker.New(walker.Config{
		Redact: redactor.Config{
			Timestamps:     pickBool(flagTimestamps, lcfg.RemoveTimestamps, gcfg.RemoveTimestamps),
			Filepaths:      pickBool(flagFilepaths, lcfg.RemoveFilepaths, gcfg.RemoveFilepaths),
			ServerNames:    pickBool(flagServerNames, lcfg.RemoveServerNames, gcfg.RemoveServerNames),
			CustomPatterns: pickString(flagCustomPatterns, lcfg.CustomPatterns, gcfg.CustomPatterns),
			DryRun:         flagDryRun,
		},
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	res, err := w.Run(flagInput, flagOutput)
	if err != nil {
		return err
	}

	if flagJSON {
		if err := report.PrintJSON(os.Stdout, res); err != nil {
			return err
		}
	} else {
		noColor := pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor) ||
			!term.IsTerminal(int(os.Stdout.Fd()))
		report.PrintTable(os.Stdout, res, report.PrintOptions{NoColor: noColor})
	}

	if p := pickString(flagAudit, lcfg.AuditLog, gcfg.AuditLog); p != "" && !flagDryRun {
		if err := audit.New(p).Append(audit.NewRunRecord(flagInput, flagOutput, res)); err != nil {
			logger.Warn().Err(err).Msg("audit log write failed")
		}
	}
	return nil
}

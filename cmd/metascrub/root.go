package metascrub

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagNoColor bool
	flagVerbose int

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the metascrub CLI.
var rootCmd = &cobra.Command{
	Use:           "metascrub",
	Short:         "Redact sensitive metadata from text files",
	Long:          "metascrub strips timestamps, file paths, server names and custom patterns from a file or a mirrored directory tree.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the metascrub CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (-v, -vv)")
}

// newLogger builds the stderr console logger injected into components.
// There is no process-global logger.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case flagVerbose >= 2:
		level = zerolog.TraceLevel
	case flagVerbose == 1:
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: flagNoColor}
	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}

// Package cmd wires the guillotine-cli subcommands onto a cobra root
// command. Grounded on junjiewwang-perf-analysis/cmd/cli/cmd's
// root.go/analyze.go shape: a PersistentPreRunE that builds a logger
// from a verbose flag, an Execute() entrypoint that os.Exit(1)s on
// error, and subcommands registered from their own init().
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rectguillotine/solver/internal/logx"
)

var (
	cfgFile string
	verbose bool
	log     logx.Logger
)

var rootCmd = &cobra.Command{
	Use:   "guillotine-cli",
	Short: "A guillotine-cut rectangle packing solver",
	Long: `guillotine-cli solves the two/three-staged guillotine rectangle
packing problem with defects: it places a set of rectangular items into
one or more rectangular bins using only edge-to-edge cuts, avoiding
rectangular defect zones, under a chosen objective.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logx.LevelInfo
		if verbose {
			level = logx.LevelDebug
		}
		log = logx.New(level, os.Stdout)
		logx.SetGlobal(log)
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// any returned error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (default: guillotine.yaml in ., ./configs or /etc/guillotine)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	binName := BinName()
	rootCmd.Example = `  # Solve an instance and write the placement as JSON
  ` + binName + ` solve --items items.csv --bins bins.csv --output solution.json

  # Solve with defects and a custom config
  ` + binName + ` solve --items items.csv --bins bins.csv --defects defects.csv -c guillotine.yaml

  # Re-validate a previously written solution
  ` + binName + ` check --items items.csv --bins bins.csv --solution solution.json`
}

// GetLogger returns the logger built from the --verbose flag.
func GetLogger() logx.Logger {
	if log == nil {
		return logx.Null{}
	}
	return log
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}

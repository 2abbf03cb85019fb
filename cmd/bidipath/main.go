// Command bidipath benchmarks and runs the shortest-path searches.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("bidipath version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("bidipath version %s-dev", version)
}

// app carries state shared by subcommands.
type app struct {
	log      *logrus.Logger
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:   "bidipath",
		Short: "bidipath - unidirectional and bidirectional Dijkstra search",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.log.SetOutput(cmd.ErrOrStderr())
			if a.logLevel == "" {
				return nil
			}
			lvl, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			a.log.SetLevel(lvl)
			return nil
		},
		Version:      versionString(),
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error (default: config or info)")

	root.AddCommand(newBenchCmd(a))
	root.AddCommand(newPathCmd(a))
	root.AddCommand(newGenerateCmd(a))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

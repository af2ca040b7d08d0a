// Package cli implements the tourbound command-line interface.
//
// Commands:
//   - solve: generate one scenario and solve it with a chosen engine
//   - bench: run every engine over a range of city counts and average
//
// All commands support --verbose (-v) for debug-level logging and
// --config for a TOML file; every setting may also come from the
// environment with the TOURBOUND_ prefix. Loggers travel through
// context.Context.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	appName   = "tourbound"
	envPrefix = "TOURBOUND"
	version   = "0.3.0"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer

	configPath string
}

// New creates a CLI that logs to w. Command output goes to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects command output (tables, JSON) to w.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "tourbound solves asymmetric travelling salesman instances",
		Long:         `tourbound builds TSP scenarios with forbidden edges and solves them with branch-and-bound, greedy, tabu search or random tours, under a wall-clock budget.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.benchCommand())

	return root
}

// Package cli implements the ugraph command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger  *log.Logger
	verbose bool
}

// New creates a new CLI instance logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ugraph",
		Short:        "ugraph builds small undirected graphs and queries them",
		Long:         `ugraph builds an undirected graph from --edge/--vertex flags or a named shape, then prints it, inspects degrees, or runs breadth-first shortest-path queries.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(commandContext(cmd.Context(), c.Logger, cmd.Name()))
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log graph construction and traversal steps")

	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.degreeCommand())
	root.AddCommand(c.hubCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.walkCommand())

	return root
}

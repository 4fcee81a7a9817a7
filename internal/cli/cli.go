// Package cli implements the gravl command-line interface.
//
// The CLI loads graph descriptions from TOML files and runs the library
// algorithms over them:
//   - show: print the adjacency-list dump
//   - bfs: hop depths or a shortest-hop path from a source vertex
//   - topo: topological order
//   - scc: strongly connected components
//   - sssp: weighted shortest paths (dag, dijkstra or bellman-ford)
//
// All commands support --verbose (-v) for debug-level logging through
// charmbracelet/log; results go to stdout, logs to stderr.
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
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(logw, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		out: out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "gravl",
		Short:        "gravl runs graph algorithms over TOML graph files",
		Long:         `gravl is the demo harness for the gravl library: it loads adjacency-list graphs from TOML descriptions and runs traversals, orderings and shortest-path algorithms over them.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.showCommand())
	root.AddCommand(c.bfsCommand())
	root.AddCommand(c.topoCommand())
	root.AddCommand(c.sccCommand())
	root.AddCommand(c.ssspCommand())

	return root
}

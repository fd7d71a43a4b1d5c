// Package cli implements the gridwalk command-line interface.
//
// Every command reads a text grid, one row per line, and runs one of the
// gridwalk algorithms over it:
//   - path: cheapest route between the start and end markers, optionally
//     charging for turns
//   - reach: number of open cells reachable from a coordinate
//   - regions: connected areas of equal characters with their perimeters
//   - trails: hiking trails on a digit height map
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging written to
// stderr. Results are written to the command's output stream.
//
// # Configuration
//
// Marker characters and costs come from DefaultConfig and may be
// overridden with a TOML file passed via --config.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "gridwalk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Build metadata, set by SetVersion.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// SetVersion records build metadata shown by --version.
func SetVersion(v, c, d string) {
	version, commit, date = v, c, d
}

func versionString() string {
	s := version
	if commit != "" {
		s += " (" + commit + ")"
	}
	if date != "" {
		s += " built " + date
	}
	return s
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
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
		Use:          appName,
		Short:        "gridwalk searches paths and regions on text grids",
		Long:         `gridwalk loads a character grid as a 4-connected graph and runs shortest path, reachability, region and trail queries over it.`,
		Version:      versionString(),
		SilenceUsage: true,
	}

	root.AddCommand(c.pathCommand())
	root.AddCommand(c.reachCommand())
	root.AddCommand(c.regionsCommand())
	root.AddCommand(c.trailsCommand())

	return root
}

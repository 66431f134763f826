// Package cli implements the ringchart command-line interface.
//
// # Commands
//
//   - render: draw a chart definition to a PNG file
//   - view: open a chart definition in an interactive window
//   - inspect: print the computed layout as a table
//   - serve: serve the chart and a hit-test API over HTTP
//
// All commands accept --verbose (-v) for debug-level logging. The same
// logger is installed as the ringchart and gg slog logger, so library
// diagnostics appear alongside command output.
package cli

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/phanxgames/ringchart"
	"github.com/phanxgames/ringchart/chartfile"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	// Out receives command output (tables, file lines).
	Out io.Writer
}

// New creates a CLI writing logs to w at level.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level), Out: w}
	c.installLogger()
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	c.installLogger()
}

// installLogger routes library logging through the CLI logger.
func (c *CLI) installLogger() {
	l := slog.New(c.Logger)
	ringchart.SetLogger(l)
	gg.SetLogger(l)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "ringchart",
		Short:        "Ringchart draws hierarchical values as concentric rings",
		Long:         `Ringchart lays out hierarchical proportional data as a ring chart and renders it to PNG, an interactive window, or an HTTP endpoint.`,
		Version:      version,
		SilenceUsage: true,
	}
	root.SetVersionTemplate("ringchart {{.Version}}\ncommit: " + commit + "\nbuilt: " + date + "\n")
	root.SetOut(c.Out)

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())

	return root
}

// loadChart reads a definition file and builds its chart.
func (c *CLI) loadChart(path string) (*ringchart.Chart, error) {
	f, err := chartfile.Load(path)
	if err != nil {
		return nil, err
	}
	chart, err := f.Build()
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("Loaded chart", "file", path,
		"items", len(chart.Items()), "value", chart.Value(), "depth", chart.TreeDepth())
	return chart, nil
}

package cli

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/phanxgames/ringchart/ebitenhost"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	width   int    // window width
	height  int    // window height
	showFPS bool   // draw FPS counter
	script  string // JSON hover script path
	exit    bool   // close the window when the script finishes
	shotDir string // screenshot directory
}

func (c *CLI) viewCommand() *cobra.Command {
	opts := viewOpts{width: 640, height: 480, shotDir: "screenshots"}

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Open a chart definition in a window",
		Long:  "Open a chart definition in an interactive window. Hovering a sector highlights it and shows its tooltip.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", opts.width, "window width")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "window height")
	cmd.Flags().BoolVar(&opts.showFPS, "fps", false, "show FPS counter")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON hover script to play")
	cmd.Flags().BoolVar(&opts.exit, "exit", false, "close the window when the script finishes")
	cmd.Flags().StringVar(&opts.shotDir, "screenshots", opts.shotDir, "directory for script screenshots")

	return cmd
}

func (c *CLI) runView(path string, opts viewOpts) error {
	chart, err := c.loadChart(path)
	if err != nil {
		return err
	}

	g := ebitenhost.NewGame(chart, ebitenhost.RunConfig{
		Title:         "Ring chart: " + filepath.Base(path),
		Width:         opts.width,
		Height:        opts.height,
		ShowFPS:       opts.showFPS,
		ScreenshotDir: opts.shotDir,
	})

	if opts.script != "" {
		data, err := os.ReadFile(opts.script)
		if err != nil {
			return err
		}
		runner, err := ebitenhost.LoadScript(data)
		if err != nil {
			return err
		}
		g.SetScript(runner)
		if opts.exit {
			g.UpdateFunc = func() error {
				if runner.Done() {
					return ebiten.Termination
				}
				return nil
			}
		}
	}

	c.Logger.Info("Opening window", "file", path)
	return ebitenhost.RunGame(g)
}

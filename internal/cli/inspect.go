package cli

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/phanxgames/ringchart"
)

func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print the computed layout of a chart definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chart, err := c.loadChart(args[0])
			if err != nil {
				return err
			}
			if plain {
				writeLayoutPlain(c.Out, chart)
				return nil
			}
			writeLayout(c.Out, chart)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "tab-separated output without styling")
	return cmd
}

// layoutRow is one item of the layout table.
type layoutRow struct {
	path       string
	tooltip    string
	value      float64
	proportion float64
	depth      int
	minDeg     float64
	maxDeg     float64
	color      ringchart.Color
}

// layoutRows walks the chart in drawing order. Paths index children the
// same way chart definitions do, e.g. "1.0" is the first child of the
// second top-level item.
func layoutRows(chart *ringchart.Chart) []layoutRow {
	var rows []layoutRow
	var walk func(items []*ringchart.Item, prefix string)
	walk = func(items []*ringchart.Item, prefix string) {
		for i, it := range items {
			p := strconv.Itoa(i)
			if prefix != "" {
				p = prefix + "." + p
			}
			rows = append(rows, layoutRow{
				path:       p,
				tooltip:    it.Tooltip,
				value:      it.Value(),
				proportion: it.Proportion(),
				depth:      it.Depth(),
				minDeg:     degrees(it.MinAngle()),
				maxDeg:     degrees(it.MaxAngle()),
				color:      it.Color(),
			})
			walk(it.Children(), p)
		}
	}
	walk(chart.Items(), "")
	return rows
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func writeLayout(w io.Writer, chart *ringchart.Chart) {
	fmt.Fprintln(w, StyleTitle.Render("Ring chart layout"))
	printKeyValue(w, "total", strconv.FormatFloat(chart.Value(), 'g', -1, 64))
	printKeyValue(w, "depth", fmt.Sprintf("%d (limit %d)", chart.TreeDepth(), chart.DepthLimit()))
	printKeyValue(w, "inner hole", strconv.FormatBool(chart.InnerHole()))

	var rows [][]string
	for _, r := range layoutRows(chart) {
		indent := strings.Repeat("  ", strings.Count(r.path, "."))
		rows = append(rows, []string{
			r.path,
			indent + r.tooltip,
			strconv.FormatFloat(r.value, 'g', -1, 64),
			fmt.Sprintf("%.3f", r.proportion),
			strconv.Itoa(r.depth),
			fmt.Sprintf("%.1f°–%.1f°", r.minDeg, r.maxDeg),
			swatch(r.color),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Path", "Tooltip", "Value", "Share", "Depth", "Span", "Color").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader
			case col == 2 || col == 3:
				return StyleNumber
			case col == 0:
				return StyleDim
			default:
				return lipgloss.NewStyle()
			}
		})
	fmt.Fprintln(w, t.Render())
}

func writeLayoutPlain(w io.Writer, chart *ringchart.Chart) {
	fmt.Fprintln(w, "path\ttooltip\tvalue\tproportion\tdepth\tmin_deg\tmax_deg")
	for _, r := range layoutRows(chart) {
		fmt.Fprintf(w, "%s\t%s\t%g\t%.4f\t%d\t%.2f\t%.2f\n",
			r.path, r.tooltip, r.value, r.proportion, r.depth, r.minDeg, r.maxDeg)
	}
}

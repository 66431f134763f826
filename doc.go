// Package ringchart lays out and paints hierarchical values as concentric
// rings of annular sectors, and maps pointer positions back to the sector
// underneath.
//
// Each top-level [Item] takes a share of a full turn proportional to its value
// relative to the chart total. Children take a share of their parent's sector
// and are drawn one ring further out. Sector colors come from a six-stop
// [Palette] indexed by the sector's start angle.
//
// # Quick start
//
//	apple, _ := ringchart.NewItem(3, "apples")
//	pear, _ := ringchart.NewItem(1, "pears")
//	chart, err := ringchart.NewChart([]*ringchart.Item{apple, pear})
//	if err != nil {
//		return err
//	}
//	chart.Render(surface, 400, 400)
//	if tip, ok := chart.QueryTooltip(x, y); ok {
//		// show tip
//	}
//
// # Surfaces
//
// Painting goes through the [Surface] interface, a small subset of a
// Cairo-style path API. The ebitenhost package adapts it to an Ebitengine
// screen and the raster package to an offscreen gogpu/gg context, so the core
// package has no rendering dependency.
//
// # Layout
//
// [Chart.Layout] runs the proportion pass and then the angle pass. Rerun it
// whenever the tree or an item's value changes. Values must be finite and
// non-negative; a positive value under a zero-valued parent is reported as
// [ErrDegenerateChart].
//
// Rendering centers the chart in the allocation and splits the outer radius
// evenly between the drawn rings, plus one blank ring for the inner hole when
// it is enabled. At most [Chart.DepthLimit] rings are drawn; a top-level item
// whose subtree is deeper than that is skipped along with its descendants.
//
// # Hover
//
// [Chart.PointerMove] keeps at most one highlighted item per chart and paints
// each transition incrementally. Register [Chart.OnPointerEnter] and
// [Chart.OnPointerLeave] for chart-level notifications, or set the per-item
// callbacks on [Item].
//
// # Logging
//
// The package is silent by default. Call [SetLogger] with any [log/slog]
// logger to receive layout and render diagnostics.
package ringchart

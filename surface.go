package ringchart

// Surface is the drawing target a Chart paints onto. It follows the cairo
// path model: arcs extend the current path (joined to the previous point by
// a straight segment), NewSubPath breaks that join, ClosePath closes the
// current sub-path, FillPreserve fills without consuming the path and Stroke
// outlines and then clears it.
//
// Angles are radians measured from the positive X axis, increasing toward
// positive Y (clockwise on a Y-down screen). Arc sweeps in the increasing
// direction and ArcNegative in the decreasing one.
//
// A Surface is acquired by the host for a single render or pointer event and
// is never retained by the chart.
type Surface interface {
	Arc(xc, yc, radius, angle1, angle2 float64)
	ArcNegative(xc, yc, radius, angle1, angle2 float64)
	NewSubPath()
	ClosePath()
	SetSourceRGB(r, g, b float64)
	FillPreserve()
	SetLineWidth(width float64)
	Stroke()
}

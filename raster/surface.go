package raster

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/phanxgames/ringchart"
)

// maxArcSegment is the largest sweep approximated by one cubic Bézier.
const maxArcSegment = math.Pi / 2

// Surface paints ringchart sectors onto a gg.Context. Arcs are flattened to
// cubic Béziers so they can sweep in either direction and join the current
// point with a straight segment.
//
// gg reports fill and stroke failures as errors; the first one is kept and
// later calls still run. Check Err after painting.
type Surface struct {
	dc      *gg.Context
	subPath bool
	err     error
}

var _ ringchart.Surface = (*Surface)(nil)

// NewSurface wraps dc. The caller keeps ownership of dc.
func NewSurface(dc *gg.Context) *Surface {
	return &Surface{dc: dc}
}

// Err returns the first fill or stroke error, or nil.
func (s *Surface) Err() error { return s.err }

// Arc appends an arc from angle1 sweeping toward increasing angles.
func (s *Surface) Arc(xc, yc, radius, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	s.arc(xc, yc, radius, angle1, angle2)
}

// ArcNegative appends an arc from angle1 sweeping toward decreasing angles.
func (s *Surface) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	for angle2 > angle1 {
		angle2 -= 2 * math.Pi
	}
	s.arc(xc, yc, radius, angle1, angle2)
}

func (s *Surface) arc(xc, yc, r, a1, a2 float64) {
	x, y := xc+r*math.Cos(a1), yc+r*math.Sin(a1)
	if _, _, ok := s.dc.GetCurrentPoint(); !ok || s.subPath {
		s.dc.MoveTo(x, y)
		s.subPath = false
	} else {
		s.dc.LineTo(x, y)
	}

	n := int(math.Ceil(math.Abs(a2-a1) / maxArcSegment))
	if n == 0 {
		return
	}
	step := (a2 - a1) / float64(n)
	for i := range n {
		from := a1 + float64(i)*step
		s.segment(xc, yc, r, from, from+step)
	}
}

// segment appends one cubic approximating the arc from a1 to a2, which may
// run in either direction but spans at most maxArcSegment.
func (s *Surface) segment(cx, cy, r, a1, a2 float64) {
	d := a2 - a1
	t := math.Tan(d / 2)
	alpha := math.Sin(d) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)
	x1, y1 := cx+r*cos1, cy+r*sin1
	x2, y2 := cx+r*cos2, cy+r*sin2

	s.dc.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// NewSubPath makes the next arc start with a move instead of a line.
func (s *Surface) NewSubPath() {
	s.subPath = true
}

// ClosePath closes the current sub-path.
func (s *Surface) ClosePath() {
	s.dc.ClosePath()
}

// SetSourceRGB sets the paint color.
func (s *Surface) SetSourceRGB(r, g, b float64) {
	s.dc.SetRGB(r, g, b)
}

// SetLineWidth sets the stroke width.
func (s *Surface) SetLineWidth(width float64) {
	s.dc.SetLineWidth(width)
}

// FillPreserve fills the path with the nonzero rule and keeps it.
func (s *Surface) FillPreserve() {
	s.dc.SetFillRule(gg.FillRuleNonZero)
	s.keep(s.dc.FillPreserve())
}

// Stroke outlines and clears the path.
func (s *Surface) Stroke() {
	s.keep(s.dc.Stroke())
	s.subPath = false
}

func (s *Surface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

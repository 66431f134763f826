package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/ringchart"
)

// Surface paints ringchart sectors onto an ebiten image. Arcs are appended to
// a vector.Path that FillPreserve fills and Stroke outlines.
//
// A Surface wraps one destination image for one frame; it is not safe for
// concurrent use.
type Surface struct {
	dst *ebiten.Image

	path      vector.Path
	hasPath   bool // the path has a current point
	subPath   bool // next arc starts a new sub-path
	r, g, b   float32
	lineWidth float32

	// AntiAlias smooths sector edges. Default true.
	AntiAlias bool
}

var _ ringchart.Surface = (*Surface)(nil)

// NewSurface wraps dst. Painting starts with a black source and a 1px line.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst, lineWidth: 1, AntiAlias: true}
}

// Arc appends a clockwise arc (increasing angle on a Y-down screen). The arc
// is joined to the current point by a straight segment.
func (s *Surface) Arc(xc, yc, radius, angle1, angle2 float64) {
	s.startArc(xc, yc, radius, angle1)
	s.path.Arc(float32(xc), float32(yc), float32(radius), float32(angle1), float32(angle2), vector.Clockwise)
}

// ArcNegative appends an arc sweeping toward decreasing angles.
func (s *Surface) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	s.startArc(xc, yc, radius, angle1)
	s.path.Arc(float32(xc), float32(yc), float32(radius), float32(angle1), float32(angle2), vector.CounterClockwise)
}

// startArc moves or lines to the arc's start point.
func (s *Surface) startArc(xc, yc, radius, angle float64) {
	x := float32(xc + radius*math.Cos(angle))
	y := float32(yc + radius*math.Sin(angle))
	if !s.hasPath || s.subPath {
		s.path.MoveTo(x, y)
		s.hasPath = true
		s.subPath = false
		return
	}
	s.path.LineTo(x, y)
}

// NewSubPath makes the next arc start a separate sub-path instead of being
// joined to the current point.
func (s *Surface) NewSubPath() {
	s.subPath = true
}

// ClosePath closes the current sub-path.
func (s *Surface) ClosePath() {
	if s.hasPath {
		s.path.Close()
	}
}

// SetSourceRGB sets the color used by the next fill or stroke.
func (s *Surface) SetSourceRGB(r, g, b float64) {
	s.r, s.g, s.b = float32(r), float32(g), float32(b)
}

// SetLineWidth sets the stroke width in pixels.
func (s *Surface) SetLineWidth(width float64) {
	s.lineWidth = float32(width)
}

// FillPreserve fills the path with the nonzero rule and keeps it.
func (s *Surface) FillPreserve() {
	if !s.hasPath || s.dst == nil {
		return
	}
	vector.FillPath(s.dst, &s.path, &vector.FillOptions{
		FillRule: vector.FillRuleNonZero,
	}, s.drawOptions())
}

// Stroke outlines the path and then clears it.
func (s *Surface) Stroke() {
	if s.hasPath && s.dst != nil {
		vector.StrokePath(s.dst, &s.path, &vector.StrokeOptions{
			Width:    s.lineWidth,
			LineJoin: vector.LineJoinMiter,
		}, s.drawOptions())
	}
	s.clearPath()
}

func (s *Surface) drawOptions() *vector.DrawPathOptions {
	op := &vector.DrawPathOptions{AntiAlias: s.AntiAlias}
	op.ColorScale.SetR(s.r)
	op.ColorScale.SetG(s.g)
	op.ColorScale.SetB(s.b)
	op.ColorScale.SetA(1)
	return op
}

func (s *Surface) clearPath() {
	s.path = vector.Path{}
	s.hasPath = false
	s.subPath = false
}

package ringchart

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// recordingSurface is a Surface that logs every call.
type recordingSurface struct {
	ops   []string
	fills []Color // source color at each FillPreserve
	cur   Color
	width float64
}

func (s *recordingSurface) Arc(xc, yc, r, a1, a2 float64) {
	s.ops = append(s.ops, fmt.Sprintf("arc %.3f %.3f %.3f %.4f %.4f", xc, yc, r, a1, a2))
}

func (s *recordingSurface) ArcNegative(xc, yc, r, a1, a2 float64) {
	s.ops = append(s.ops, fmt.Sprintf("arcneg %.3f %.3f %.3f %.4f %.4f", xc, yc, r, a1, a2))
}

func (s *recordingSurface) NewSubPath() { s.ops = append(s.ops, "newsubpath") }
func (s *recordingSurface) ClosePath()  { s.ops = append(s.ops, "close") }

func (s *recordingSurface) SetSourceRGB(r, g, b float64) {
	s.cur = Color{r, g, b}
	s.ops = append(s.ops, "rgb")
}

func (s *recordingSurface) FillPreserve() {
	s.fills = append(s.fills, s.cur)
	s.ops = append(s.ops, "fill")
}

func (s *recordingSurface) SetLineWidth(w float64) {
	s.width = w
	s.ops = append(s.ops, "width")
}

func (s *recordingSurface) Stroke() { s.ops = append(s.ops, "stroke") }

func (s *recordingSurface) reset() {
	s.ops = nil
	s.fills = nil
}

// kinds strips the arguments from recorded ops.
func (s *recordingSurface) kinds() []string {
	out := make([]string, len(s.ops))
	for i, op := range s.ops {
		out[i], _, _ = strings.Cut(op, " ")
	}
	return out
}

func (s *recordingSurface) paints() int {
	n := 0
	for _, op := range s.ops {
		if op == "stroke" {
			n++
		}
	}
	return n
}

func TestPaintSequenceSector(t *testing.T) {
	a := mustItem(t, 1, "a")
	b := mustItem(t, 3, "b")
	c := mustChart(t, []*Item{a, b})

	s := &recordingSurface{}
	c.Render(s, 310, 310)

	want := []string{
		"arc", "arcneg", "close", "rgb", "fill", "width", "rgb", "stroke",
		"arc", "arcneg", "close", "rgb", "fill", "width", "rgb", "stroke",
	}
	if got := s.kinds(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	if s.ops[0] != "arc 155.000 155.000 0.000 0.0000 1.5708" {
		t.Errorf("first arc = %q", s.ops[0])
	}
	if s.ops[1] != "arcneg 155.000 155.000 150.000 1.5708 0.0000" {
		t.Errorf("first arcneg = %q", s.ops[1])
	}
	if s.width != defaultOutlineWidth {
		t.Errorf("line width = %v, want %v", s.width, defaultOutlineWidth)
	}
	if s.cur != ColorBlack {
		t.Errorf("outline = %v, want black", s.cur)
	}
}

func TestPaintSequenceRevolution(t *testing.T) {
	only := mustItem(t, 1, "only")
	c := mustChart(t, []*Item{only})

	s := &recordingSurface{}
	c.Render(s, 310, 310)

	want := "arc,newsubpath,arcneg,rgb,fill,width,rgb,stroke"
	if got := strings.Join(s.kinds(), ","); got != want {
		t.Fatalf("ops = %s, want %s", got, want)
	}
	if len(s.fills) != 1 || s.fills[0] != DefaultPalette[0] {
		t.Errorf("fills = %v, want [%v]", s.fills, DefaultPalette[0])
	}
}

func TestPaintSkipsZeroSpan(t *testing.T) {
	zero := mustItem(t, 0, "zero")
	one := mustItem(t, 1, "one")
	c := mustChart(t, []*Item{zero, one})

	s := &recordingSurface{}
	c.Render(s, 310, 310)

	if got := s.paints(); got != 1 {
		t.Errorf("paints = %d, want 1", got)
	}
	if !zero.Drawn() {
		t.Error("zero-valued item should still be laid out as drawn")
	}
}

func TestPaintNilSurface(t *testing.T) {
	a := mustItem(t, 1, "a")
	c := mustChart(t, []*Item{a})
	c.Render(nil, 310, 310)
	if !c.Rendered() || !a.Drawn() {
		t.Error("render with nil surface should still record geometry")
	}
}

func TestIsRevolution(t *testing.T) {
	tests := []struct {
		span float64
		want bool
	}{
		{fullTurn, true},
		{fullTurn - 1e-12, true},
		{fullTurn + 1e-12, true},
		{2 * fullTurn, true},
		{math.Pi, false},
		{fullTurn - 1e-6, false},
	}
	for _, tt := range tests {
		if got := isRevolution(tt.span); got != tt.want {
			t.Errorf("isRevolution(%v) = %v, want %v", tt.span, got, tt.want)
		}
	}
}

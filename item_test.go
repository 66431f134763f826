package ringchart

import (
	"errors"
	"math"
	"testing"
)

func mustItem(t *testing.T, value float64, tooltip string) *Item {
	t.Helper()
	it, err := NewItem(value, tooltip)
	if err != nil {
		t.Fatalf("NewItem(%v): %v", value, err)
	}
	return it
}

func mustChart(t *testing.T, items []*Item, opts ...Option) *Chart {
	t.Helper()
	c, err := NewChart(items, opts...)
	if err != nil {
		t.Fatalf("NewChart: %v", err)
	}
	return c
}

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }

// --- Construction ---

func TestNewItemValidation(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 12.5, false},
		{"negative", -1, true},
		{"nan", math.NaN(), true},
		{"inf", math.Inf(1), true},
		{"neg inf", math.Inf(-1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NewItem(tt.value, "x")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("err = %v, want ErrInvalidValue", err)
				}
				if it != nil {
					t.Error("item should be nil on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if it.Value() != tt.value || it.Tooltip != "x" {
				t.Errorf("item = (%v, %q)", it.Value(), it.Tooltip)
			}
			if it.Parent() != nil || it.Chart() != nil || it.NumChildren() != 0 {
				t.Error("new item should be detached and childless")
			}
		})
	}
}

// --- Tree manipulation ---

func TestAddChildReparents(t *testing.T) {
	p1 := mustItem(t, 1, "p1")
	p2 := mustItem(t, 1, "p2")
	child := mustItem(t, 1, "c")

	p1.AddChild(child)
	p2.AddChild(child)

	if child.Parent() != p2 {
		t.Error("child should belong to p2")
	}
	if p1.NumChildren() != 0 {
		t.Errorf("p1 children = %d, want 0", p1.NumChildren())
	}
	if p2.ChildAt(0) != child {
		t.Error("p2.ChildAt(0) should be child")
	}
}

func TestAddChildFromChart(t *testing.T) {
	top := mustItem(t, 1, "top")
	other := mustItem(t, 1, "other")
	c := mustChart(t, []*Item{top, other})

	parent := mustItem(t, 1, "parent")
	parent.AddChild(top)

	if len(c.Items()) != 1 || c.Items()[0] != other {
		t.Errorf("chart items = %v, want [other]", c.Items())
	}
	if top.Chart() != nil {
		t.Error("moved item should follow its new parent's chart")
	}
}

func TestAddChildCyclePanics(t *testing.T) {
	a := mustItem(t, 1, "a")
	b := mustItem(t, 1, "b")
	a.AddChild(b)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for cycle")
		}
	}()
	b.AddChild(a)
}

func TestAddChildSelfPanics(t *testing.T) {
	a := mustItem(t, 1, "a")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for self child")
		}
	}()
	a.AddChild(a)
}

func TestAddNilChildPanics(t *testing.T) {
	a := mustItem(t, 1, "a")
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil child")
		}
	}()
	a.AddChild(nil)
}

func TestRemoveChildWrongParentPanics(t *testing.T) {
	a := mustItem(t, 1, "a")
	b := mustItem(t, 1, "b")
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	a.RemoveChild(b)
}

func TestRemoveChild(t *testing.T) {
	top := mustItem(t, 2, "top")
	child := mustItem(t, 2, "child")
	top.AddChild(child)
	c := mustChart(t, []*Item{top})
	if child.Chart() != c {
		t.Fatal("child should inherit the chart")
	}

	top.RemoveChild(child)
	if child.Parent() != nil || child.Chart() != nil {
		t.Error("removed child should be detached")
	}
	if top.NumChildren() != 0 {
		t.Error("parent should have no children")
	}
}

func TestSetChildrenReplaces(t *testing.T) {
	p := mustItem(t, 2, "p")
	old := mustItem(t, 1, "old")
	p.AddChild(old)

	x := mustItem(t, 1, "x")
	y := mustItem(t, 1, "y")
	p.SetChildren(y, x)

	if old.Parent() != nil {
		t.Error("old child should be detached")
	}
	if p.NumChildren() != 2 || p.ChildAt(0) != y || p.ChildAt(1) != x {
		t.Errorf("children order wrong: %v", p.Children())
	}
}

// --- Layout ---

func TestComputeProportionDetached(t *testing.T) {
	it := mustItem(t, 1, "x")
	if _, err := it.ComputeProportion(); !errors.Is(err, ErrDetached) {
		t.Errorf("err = %v, want ErrDetached", err)
	}
}

func TestComputeProportionDepth(t *testing.T) {
	root := mustItem(t, 10, "root")
	mid := mustItem(t, 6, "mid")
	leaf := mustItem(t, 3, "leaf")
	side := mustItem(t, 4, "side")
	mid.AddChild(leaf)
	root.SetChildren(mid, side)

	c := mustChart(t, []*Item{root})

	tests := []struct {
		it    *Item
		depth int
		prop  float64
	}{
		{root, 3, 1},
		{mid, 2, 0.6},
		{side, 1, 0.4},
		{leaf, 1, 0.5},
	}
	for _, tt := range tests {
		if tt.it.Depth() != tt.depth {
			t.Errorf("%s depth = %d, want %d", tt.it.Tooltip, tt.it.Depth(), tt.depth)
		}
		if !near(tt.it.Proportion(), tt.prop) {
			t.Errorf("%s proportion = %v, want %v", tt.it.Tooltip, tt.it.Proportion(), tt.prop)
		}
	}
	if c.TreeDepth() != 3 {
		t.Errorf("TreeDepth = %d, want 3", c.TreeDepth())
	}
}

func TestComputeAnglePartitionsParent(t *testing.T) {
	root := mustItem(t, 4, "root")
	a := mustItem(t, 1, "a")
	b := mustItem(t, 3, "b")
	root.SetChildren(a, b)
	other := mustItem(t, 4, "other")
	mustChart(t, []*Item{root, other})

	if !near(root.MinAngle(), 0) || !near(root.MaxAngle(), math.Pi) {
		t.Errorf("root = [%v, %v], want [0, π]", root.MinAngle(), root.MaxAngle())
	}
	if !near(a.MinAngle(), 0) || !near(a.MaxAngle(), math.Pi/4) {
		t.Errorf("a = [%v, %v], want [0, π/4]", a.MinAngle(), a.MaxAngle())
	}
	if !near(b.MinAngle(), math.Pi/4) || !near(b.MaxAngle(), math.Pi) {
		t.Errorf("b = [%v, %v], want [π/4, π]", b.MinAngle(), b.MaxAngle())
	}
	if !near(other.MinAngle(), math.Pi) || !near(other.MaxAngle(), fullTurn) {
		t.Errorf("other = [%v, %v], want [π, 2π]", other.MinAngle(), other.MaxAngle())
	}
	if !colorNear(other.Color(), DefaultPalette[3]) {
		t.Errorf("other color = %v, want %v", other.Color(), DefaultPalette[3])
	}
	if !colorNear(a.Color(), root.Color()) {
		t.Error("first child starts with its parent and shares its color")
	}
}

func TestComputeAngleChildrenUnderfill(t *testing.T) {
	root := mustItem(t, 10, "root")
	child := mustItem(t, 5, "child")
	root.AddChild(child)
	mustChart(t, []*Item{root})

	if !near(child.Angle(), math.Pi) {
		t.Errorf("child angle = %v, want π", child.Angle())
	}
}

func TestZeroParentZeroChild(t *testing.T) {
	root := mustItem(t, 0, "root")
	child := mustItem(t, 0, "child")
	root.AddChild(child)
	other := mustItem(t, 1, "other")
	mustChart(t, []*Item{root, other})

	if child.Proportion() != 0 || child.Angle() != 0 {
		t.Errorf("child = (%v, %v), want zero", child.Proportion(), child.Angle())
	}
}

func TestDegenerateChart(t *testing.T) {
	root := mustItem(t, 0, "root")
	child := mustItem(t, 1, "child")
	root.AddChild(child)
	other := mustItem(t, 1, "other")

	_, err := NewChart([]*Item{other, root})
	if !errors.Is(err, ErrDegenerateChart) {
		t.Errorf("err = %v, want ErrDegenerateChart", err)
	}
}

// --- Hit testing ---

func TestItemHitTestRequiresDraw(t *testing.T) {
	a := mustItem(t, 1, "a")
	mustChart(t, []*Item{a})
	if a.HitTest(10, 1, true) != nil {
		t.Error("undrawn item should never match")
	}
}

func TestItemHitTestOwnRingWins(t *testing.T) {
	root := mustItem(t, 2, "root")
	child := mustItem(t, 2, "child")
	root.AddChild(child)
	c := mustChart(t, []*Item{root})
	c.Render(nil, 310, 310)

	// Rings: hole [0,50), root [50,100), child [100,150).
	tests := []struct {
		name    string
		radius  float64
		recurse bool
		want    *Item
	}{
		{"hole", 25, true, nil},
		{"own ring", 75, true, root},
		{"own ring no recurse", 75, false, root},
		{"child ring", 125, true, child},
		{"child ring no recurse", 125, false, nil},
		{"outside", 151, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := root.HitTest(tt.radius, 1, tt.recurse); got != tt.want {
				t.Errorf("HitTest(%v) = %v, want %v", tt.radius, got, tt.want)
			}
		})
	}
}

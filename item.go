package ringchart

import (
	"fmt"
	"math"
)

// revolutionEpsilon is the tolerance used to decide that a sector spans a
// whole number of turns.
const revolutionEpsilon = 1e-9

// --- Item ---

// Item is one node of the value hierarchy. A single flat struct holds the
// user data, the layout results and the geometry of the last render.
//
// Children are owned exclusively by their parent item; top-level items are
// owned by their Chart. The parent pointer is a lookup only.
type Item struct {
	// Tooltip is shown by hosts when the pointer rests on the item.
	// An empty tooltip means none.
	Tooltip string

	// Metadata
	UserData any

	// Per-item hover callbacks (nil by default).
	OnPointerEnter func(HoverContext)
	OnPointerLeave func(HoverContext)

	value float64

	// Hierarchy
	parent   *Item
	chart    *Chart
	children []*Item

	// Computed by the layout passes
	proportion float64
	depth      int
	angle      float64
	minAngle   float64
	maxAngle   float64
	color      Color

	// Set by the most recent draw pass
	drawn     bool
	centerX   float64
	centerY   float64
	minRadius float64
	maxRadius float64
}

// NewItem creates a detached item. It fails with ErrInvalidValue if value is
// negative, NaN or infinite.
func NewItem(value float64, tooltip string) (*Item, error) {
	if err := validateValue(value); err != nil {
		return nil, err
	}
	return &Item{value: value, Tooltip: tooltip}, nil
}

func validateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidValue, v)
	}
	if v < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidValue, v)
	}
	return nil
}

// Value returns the item's value.
func (it *Item) Value() float64 { return it.value }

// Parent returns the owning item, or nil for top-level and detached items.
func (it *Item) Parent() *Item { return it.parent }

// Chart returns the chart the item belongs to, or nil if detached.
func (it *Item) Chart() *Chart { return it.chart }

// Proportion returns value divided by the parent's value, as computed by the
// last proportion pass.
func (it *Item) Proportion() float64 { return it.proportion }

// Depth returns the height of the item's subtree: 1 for a leaf, otherwise
// one more than the deepest child.
func (it *Item) Depth() int { return it.depth }

// Angle returns the angular span in radians.
func (it *Item) Angle() float64 { return it.angle }

// MinAngle returns the start of the item's sector.
func (it *Item) MinAngle() float64 { return it.minAngle }

// MaxAngle returns the end of the item's sector.
func (it *Item) MaxAngle() float64 { return it.maxAngle }

// Color returns the sector's base fill color.
func (it *Item) Color() Color { return it.color }

// MinRadius returns the inner radius from the last render.
func (it *Item) MinRadius() float64 { return it.minRadius }

// MaxRadius returns the outer radius from the last render.
func (it *Item) MaxRadius() float64 { return it.maxRadius }

// Center returns the chart center the item was last drawn around.
func (it *Item) Center() Vec2 { return Vec2{it.centerX, it.centerY} }

// Drawn reports whether the item was painted by the most recent render.
func (it *Item) Drawn() bool { return it.drawn }

// Highlighted reports whether the item is its chart's highlighted item.
func (it *Item) Highlighted() bool {
	return it.chart != nil && it.chart.highlighted == it
}

// --- Tree manipulation ---

// SetChildren replaces the item's children wholesale. Previous children are
// detached; each new child is detached from its previous owner and attached
// here in the given order, which is also the angular drawing order.
// Panics if a child is nil or is an ancestor of it (cycle).
//
// Layout must be rerun afterwards.
func (it *Item) SetChildren(children ...*Item) {
	for _, child := range children {
		it.checkChild(child)
	}
	old := it.children
	it.children = nil
	for _, child := range old {
		child.parent = nil
		child.setChart(nil)
	}
	it.children = make([]*Item, 0, len(children))
	for _, child := range children {
		it.attach(child)
	}
}

// AddChild appends child to the item's children. If child already has an
// owner, it is removed from that owner first.
// Panics if child is nil or is an ancestor of it (cycle).
func (it *Item) AddChild(child *Item) {
	it.checkChild(child)
	it.attach(child)
}

// RemoveChild detaches child from the item.
// Panics if child's parent is not it.
func (it *Item) RemoveChild(child *Item) {
	if child.parent != it {
		panic("ringchart: child's parent is not this item")
	}
	it.removeChildByPtr(child)
	child.parent = nil
	child.setChart(nil)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (it *Item) Children() []*Item {
	return it.children
}

// NumChildren returns the number of children.
func (it *Item) NumChildren() int {
	return len(it.children)
}

// ChildAt returns the child at the given index.
func (it *Item) ChildAt(index int) *Item {
	return it.children[index]
}

func (it *Item) checkChild(child *Item) {
	if child == nil {
		panic("ringchart: cannot add nil child")
	}
	if isAncestor(child, it) {
		panic("ringchart: adding child would create a cycle")
	}
}

func (it *Item) attach(child *Item) {
	child.detach()
	child.parent = it
	child.setChart(it.chart)
	it.children = append(it.children, child)
}

// detach removes the item from whichever item or chart owns it.
func (it *Item) detach() {
	switch {
	case it.parent != nil:
		it.parent.removeChildByPtr(it)
		it.parent = nil
	case it.chart != nil:
		it.chart.removeItemByPtr(it)
	}
	it.setChart(nil)
}

// setChart records c as the owning chart of the whole subtree. A highlighted
// item leaving its chart drops the chart's reference to it.
func (it *Item) setChart(c *Chart) {
	if it.chart != nil && it.chart != c && it.chart.highlighted == it {
		it.chart.highlighted = nil
	}
	it.chart = c
	for _, child := range it.children {
		child.setChart(c)
	}
}

// --- Layout ---

// ComputeProportion runs the proportion pass over the item's subtree and
// returns the subtree depth. The parent's value must already be known: the
// parent item's value, or the chart total for top-level items.
//
// A positive value under a zero-valued parent fails with ErrDegenerateChart;
// a zero value under a zero-valued parent gets proportion 0.
func (it *Item) ComputeProportion() (int, error) {
	pv, err := it.parentValue()
	if err != nil {
		return 0, err
	}
	switch {
	case pv == 0 && it.value == 0:
		it.proportion = 0
	case pv == 0:
		return 0, fmt.Errorf("%w: value %v under a zero-valued parent", ErrDegenerateChart, it.value)
	default:
		it.proportion = it.value / pv
	}

	it.depth = 1
	for _, child := range it.children {
		d, err := child.ComputeProportion()
		if err != nil {
			return 0, err
		}
		it.depth = max(it.depth, d+1)
	}
	return it.depth, nil
}

// ComputeAngle runs the angle pass over the item's subtree, placing the item
// at minAngle, and returns its maxAngle. Children partition the item's span
// contiguously in insertion order. ComputeProportion must have run first.
func (it *Item) ComputeAngle(minAngle float64) float64 {
	it.angle = it.parentAngle() * it.proportion
	it.minAngle = minAngle
	it.maxAngle = minAngle + it.angle

	next := minAngle
	for _, child := range it.children {
		next = child.ComputeAngle(next)
	}

	it.color = it.palette().At(it.minAngle)
	return it.maxAngle
}

// checkHierarchy reports ErrDegenerateChart for the first positive value
// under a zero-valued parent in the subtree of it, without modifying anything.
func checkHierarchy(it *Item, parentValue float64) error {
	if parentValue == 0 && it.value > 0 {
		return fmt.Errorf("%w: value %v under a zero-valued parent", ErrDegenerateChart, it.value)
	}
	for _, child := range it.children {
		if err := checkHierarchy(child, it.value); err != nil {
			return err
		}
	}
	return nil
}

func (it *Item) parentValue() (float64, error) {
	switch {
	case it.parent != nil:
		return it.parent.value, nil
	case it.chart != nil:
		return it.chart.value, nil
	default:
		return 0, ErrDetached
	}
}

// parentAngle is the span the item takes its proportion of. Top-level and
// detached items take it of a full turn.
func (it *Item) parentAngle() float64 {
	if it.parent != nil {
		return it.parent.angle
	}
	return fullTurn
}

func (it *Item) palette() *Palette {
	if it.chart != nil {
		return &it.chart.cfg.palette
	}
	return &DefaultPalette
}

// --- Hit testing ---

// HitTest returns the item occupying the polar point (radius, angle), or nil.
//
// The item matches itself when radius falls inside its own ring, even if
// children exist further out. Otherwise, when recurse is set, children are
// tested in order and the first match wins. Items not drawn by the most
// recent render never match.
func (it *Item) HitTest(radius, angle float64, recurse bool) *Item {
	if !it.drawn || radius < it.minRadius {
		return nil
	}
	if angle < it.minAngle || angle > it.maxAngle {
		return nil
	}
	if radius < it.maxRadius {
		return it
	}
	if !recurse {
		return nil
	}
	for _, child := range it.children {
		if match := child.HitTest(radius, angle, true); match != nil {
			return match
		}
	}
	return nil
}

// --- Drawing ---

// Draw stores the ring geometry for the item and paints it and its
// descendants onto s. Children are drawn in the next ring outward with the
// same thickness.
//
// Nothing is drawn, descendants included, when the item's subtree depth
// exceeds maxDepth.
func (it *Item) Draw(s Surface, cx, cy, innerRadius, thickness float64, maxDepth int) {
	if it.depth > maxDepth {
		return
	}

	it.drawn = true
	it.centerX = cx
	it.centerY = cy
	it.minRadius = innerRadius
	it.maxRadius = innerRadius + thickness

	it.paint(s, it.fillColor())
	if it.chart != nil {
		it.chart.stats.itemsDrawn++
	}

	for _, child := range it.children {
		child.Draw(s, cx, cy, it.maxRadius, thickness, maxDepth)
	}
}

// Highlight repaints the item with its lightened color and makes it the
// chart's highlighted item, unhighlighting the previous one. No-op if the item
// is already highlighted or belongs to no chart. A nil s updates the state
// without painting.
func (it *Item) Highlight(s Surface) {
	c := it.chart
	if c == nil || c.highlighted == it {
		return
	}
	if c.highlighted != nil {
		c.highlighted.Unhighlight(s)
	}
	c.highlighted = it
	it.paint(s, it.color.Lighten())
}

// Unhighlight repaints the item with its base color and clears the chart's
// highlighted item. No-op if the item is not highlighted.
func (it *Item) Unhighlight(s Surface) {
	if !it.Highlighted() {
		return
	}
	it.chart.highlighted = nil
	it.paint(s, it.color)
}

func (it *Item) fillColor() Color {
	if it.Highlighted() {
		return it.color.Lighten()
	}
	return it.color
}

// paint fills the annular sector with fill and outlines it. A sector spanning
// whole turns is drawn as two concentric circles without radial seams.
// Zero-width sectors and items without geometry paint nothing.
func (it *Item) paint(s Surface, fill Color) {
	span := it.maxAngle - it.minAngle
	if s == nil || !it.drawn || span <= 0 {
		return
	}

	outline, width := ColorBlack, float64(defaultOutlineWidth)
	if it.chart != nil {
		outline, width = it.chart.cfg.outline, it.chart.cfg.outlineWidth
		it.chart.stats.paints++
	}

	revolution := isRevolution(span)
	s.Arc(it.centerX, it.centerY, it.minRadius, it.minAngle, it.maxAngle)
	if revolution {
		s.NewSubPath()
	}
	s.ArcNegative(it.centerX, it.centerY, it.maxRadius, it.maxAngle, it.minAngle)
	if !revolution {
		s.ClosePath()
	}
	s.SetSourceRGB(fill.R, fill.G, fill.B)
	s.FillPreserve()
	s.SetLineWidth(width)
	s.SetSourceRGB(outline.R, outline.G, outline.B)
	s.Stroke()
}

// isRevolution reports whether a positive span is a whole number of turns.
func isRevolution(span float64) bool {
	rem := math.Mod(span, fullTurn)
	return rem < revolutionEpsilon || fullTurn-rem < revolutionEpsilon
}

// --- Helpers ---

// isAncestor reports whether candidate is item or one of its ancestors.
func isAncestor(candidate, item *Item) bool {
	for p := item; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from it.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (it *Item) removeChildByPtr(child *Item) {
	for i, c := range it.children {
		if c == child {
			copy(it.children[i:], it.children[i+1:])
			it.children[len(it.children)-1] = nil
			it.children = it.children[:len(it.children)-1]
			return
		}
	}
}

// resetGeometry clears the draw-pass state of the item's subtree.
func (it *Item) resetGeometry() {
	it.drawn = false
	it.centerX, it.centerY = 0, 0
	it.minRadius, it.maxRadius = 0, 0
	for _, child := range it.children {
		child.resetGeometry()
	}
}

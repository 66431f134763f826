package ringchart

import (
	"fmt"
	"math"
	"time"
)

// Chart is the root container: it owns the top-level items, drives the
// layout passes and the render pass, converts pointer positions to polar
// coordinates and holds the single highlighted item.
//
// A Chart is not safe for concurrent use. Hosts call it from their event
// thread only.
type Chart struct {
	items []*Item
	cfg   config

	// Layout results
	value        float64
	treeDepth    int
	innerHole    bool
	proportioned bool // proportion pass current
	laidOut      bool // both passes current

	// Geometry of the most recent render
	rendered    bool
	centerX     float64
	centerY     float64
	startRadius float64
	outerRadius float64
	thickness   float64

	// Hover state
	highlighted *Item
	handlers    handlerRegistry
	pointer     pointerState

	debug bool
	stats renderStats
}

// NewChart creates a chart owning items as its top-level items, in angular
// order, and runs the layout passes. Items already owned elsewhere are
// detached first. Panics if an item is nil.
//
// It fails with ErrInvalidDepthLimit for a depth limit below 1 and with
// ErrDegenerateChart if the value hierarchy is inconsistent.
func NewChart(items []*Item, opts ...Option) (*Chart, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.depthLimit < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepthLimit, cfg.depthLimit)
	}

	c := &Chart{cfg: cfg}
	c.SetItems(items...)
	if err := c.Layout(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetItems replaces the top-level items wholesale. Previous items are
// detached. Layout must be rerun afterwards.
// Panics if an item is nil.
func (c *Chart) SetItems(items ...*Item) {
	for _, it := range items {
		if it == nil {
			panic("ringchart: cannot add nil item")
		}
	}
	old := c.items
	c.items = nil
	for _, it := range old {
		it.setChart(nil)
	}
	c.items = make([]*Item, 0, len(items))
	for _, it := range items {
		it.detach()
		it.setChart(c)
		c.items = append(c.items, it)
	}
	c.invalidateLayout()
}

// invalidateLayout marks the layout stale. Render draws nothing and
// hit-tests miss until the next successful layout.
func (c *Chart) invalidateLayout() {
	c.proportioned = false
	c.laidOut = false
	c.rendered = false
}

// Items returns the top-level items. The returned slice MUST NOT be mutated.
func (c *Chart) Items() []*Item {
	return c.items
}

// Value returns the sum of the top-level item values from the last layout.
func (c *Chart) Value() float64 { return c.value }

// TreeDepth returns the deepest subtree depth among the top-level items.
func (c *Chart) TreeDepth() int { return c.treeDepth }

// DepthLimit returns the maximum number of rings drawn.
func (c *Chart) DepthLimit() int { return c.cfg.depthLimit }

// SetDepthLimit changes the maximum number of rings drawn. It takes effect on
// the next render.
func (c *Chart) SetDepthLimit(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidDepthLimit, n)
	}
	c.cfg.depthLimit = n
	return nil
}

// InnerHole reports whether the innermost ring is left blank.
func (c *Chart) InnerHole() bool { return c.innerHole }

// SetInnerHole overrides the inner hole setting. It takes effect on the next
// render and survives later layouts.
func (c *Chart) SetInnerHole(enabled bool) {
	c.cfg.innerHole = &enabled
	c.innerHole = enabled
}

// Highlighted returns the highlighted item, or nil.
func (c *Chart) Highlighted() *Item { return c.highlighted }

// Center returns the center of the most recent render.
func (c *Chart) Center() Vec2 { return Vec2{c.centerX, c.centerY} }

// Radii returns the inner radius of the first drawn ring and the outer radius
// of the chart, as computed by the most recent render.
func (c *Chart) Radii() (inner, outer float64) { return c.startRadius, c.outerRadius }

// Thickness returns the ring thickness of the most recent render.
func (c *Chart) Thickness() float64 { return c.thickness }

// Rendered reports whether the most recent render drew anything.
func (c *Chart) Rendered() bool { return c.rendered }

// --- Layout ---

// Layout runs the proportion pass and then the angle pass. It must be rerun
// after any change to the tree or to item values.
func (c *Chart) Layout() error {
	if err := c.ComputeProportions(); err != nil {
		return err
	}
	c.ComputeAngles()
	Logger().Debug("ringchart: layout",
		"items", len(c.items), "value", c.value,
		"treeDepth", c.treeDepth, "innerHole", c.innerHole)
	return nil
}

// ComputeProportions recomputes the chart total, runs the proportion pass on
// every top-level item, records the tree depth and resolves the inner hole.
// A degenerate hierarchy fails the whole pass before anything is updated and
// leaves the chart unrenderable until the next successful layout.
func (c *Chart) ComputeProportions() error {
	total := 0.0
	for _, it := range c.items {
		total += it.value
	}
	for i, it := range c.items {
		if err := checkHierarchy(it, total); err != nil {
			c.invalidateLayout()
			return fmt.Errorf("%w (top-level item %d)", err, i)
		}
	}

	c.value = total
	c.treeDepth = 0
	for i, it := range c.items {
		d, err := it.ComputeProportion()
		if err != nil {
			c.invalidateLayout()
			return fmt.Errorf("%w (top-level item %d)", err, i)
		}
		c.treeDepth = max(c.treeDepth, d)
	}

	if c.cfg.innerHole != nil {
		c.innerHole = *c.cfg.innerHole
	} else {
		c.innerHole = c.treeDepth != 1
	}
	if c.debug && c.treeDepth > c.cfg.depthLimit {
		debugCheckDepthLimit(c)
	}
	c.proportioned = true
	c.laidOut = false
	return nil
}

// ComputeAngles runs the angle pass over the top-level items left to right,
// starting at angle 0. It is a no-op unless ComputeProportions has succeeded
// since the last change to the top-level items.
func (c *Chart) ComputeAngles() {
	if !c.proportioned {
		Logger().Debug("ringchart: angle pass skipped, proportions are stale")
		return
	}
	next := 0.0
	for _, it := range c.items {
		next = it.ComputeAngle(next)
	}
	c.laidOut = true
}

// Walk visits every item depth-first in drawing order. level is 0 for
// top-level items. Returning false from fn skips the item's children.
func (c *Chart) Walk(fn func(it *Item, level int) bool) {
	for _, it := range c.items {
		walkItem(it, 0, fn)
	}
}

func walkItem(it *Item, level int, fn func(*Item, int) bool) {
	if !fn(it, level) {
		return
	}
	for _, child := range it.children {
		walkItem(child, level+1, fn)
	}
}

// --- Rendering ---

// Render lays the rings out in a width×height allocation and draws every
// top-level item onto s. The chart is centered; its outer radius is half the
// smaller side minus the margin, split evenly between the drawn rings and
// the inner hole.
//
// A chart without items, with a zero total value or with no room draws
// nothing, and every hit-test misses until the next successful render.
func (c *Chart) Render(s Surface, width, height float64) {
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}
	c.stats = renderStats{}

	for _, it := range c.items {
		it.resetGeometry()
	}
	c.rendered = false
	c.centerX = width / 2
	c.centerY = height / 2
	c.outerRadius = (math.Min(width, height) - c.cfg.margin) / 2
	c.startRadius = 0
	c.thickness = 0

	depth := min(c.cfg.depthLimit, c.treeDepth)
	switch {
	case !c.laidOut:
		Logger().Debug("ringchart: layout is stale, nothing rendered")
		return
	case len(c.items) == 0 || c.value == 0 || depth < 1:
		Logger().Debug("ringchart: nothing to render", "items", len(c.items), "value", c.value)
		return
	case c.outerRadius <= 0:
		Logger().Warn("ringchart: allocation too small", "width", width, "height", height)
		return
	}

	hole := 0
	if c.innerHole {
		hole = 1
	}
	c.thickness = c.outerRadius / float64(depth+hole)
	if c.innerHole {
		c.startRadius = c.thickness
	}
	c.rendered = true

	for _, it := range c.items {
		it.Draw(s, c.centerX, c.centerY, c.startRadius, c.thickness, depth)
	}

	if c.debug {
		c.stats.drawTime = time.Since(t0)
		c.stats.rings = depth
		c.stats.thickness = c.thickness
		c.debugLog(c.stats)
	}
}

// --- Coordinates ---

// PolarFromPoint converts a surface point to polar coordinates around the
// center of the most recent render. The angle is in [0, 2π).
func (c *Chart) PolarFromPoint(x, y float64) (radius, angle float64) {
	dx := x - c.centerX
	dy := y - c.centerY
	radius = math.Hypot(dx, dy)
	angle = math.Atan2(dy, dx)
	if angle < 0 {
		angle += fullTurn
	}
	return radius, angle
}

// HitTest returns the item drawn under the surface point (x, y), or nil.
func (c *Chart) HitTest(x, y float64) *Item {
	r, a := c.PolarFromPoint(x, y)
	return c.hitTestPolar(r, a)
}

// hitTestPolar tests the top-level items in order; the first match wins.
func (c *Chart) hitTestPolar(radius, angle float64) *Item {
	if !c.rendered {
		return nil
	}
	for _, it := range c.items {
		if match := it.HitTest(radius, angle, true); match != nil {
			return match
		}
	}
	return nil
}

// QueryTooltip returns the tooltip of the item under (x, y). ok is false when
// the point lies outside the drawn rings, hits no item, or hits an item
// without a tooltip.
func (c *Chart) QueryTooltip(x, y float64) (tooltip string, ok bool) {
	if !c.rendered {
		return "", false
	}
	r, a := c.PolarFromPoint(x, y)
	if r <= c.startRadius || r >= c.outerRadius {
		return "", false
	}
	match := c.hitTestPolar(r, a)
	if match == nil || match.Tooltip == "" {
		return "", false
	}
	return match.Tooltip, true
}

// removeItemByPtr removes it from the top-level items without touching it.chart.
func (c *Chart) removeItemByPtr(it *Item) {
	for i, x := range c.items {
		if x == it {
			copy(c.items[i:], c.items[i+1:])
			c.items[len(c.items)-1] = nil
			c.items = c.items[:len(c.items)-1]
			return
		}
	}
}

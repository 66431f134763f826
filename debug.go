package ringchart

import "time"

// renderStats holds per-render timing and paint metrics.
// Timing is only collected when the chart is in debug mode.
type renderStats struct {
	drawTime   time.Duration
	itemsDrawn int
	paints     int
	rings      int
	thickness  float64
}

// SetDebugMode enables or disables debug mode. When enabled, per-render
// timing and paint counts are logged at debug level, and a layout whose tree
// is deeper than the depth limit logs which top-level items will be skipped.
func (c *Chart) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// debugLog writes render stats through the package logger.
func (c *Chart) debugLog(stats renderStats) {
	if !c.debug {
		return
	}
	Logger().Debug("ringchart: render",
		"draw", stats.drawTime,
		"rings", stats.rings,
		"thickness", stats.thickness,
		"items", stats.itemsDrawn,
		"paints", stats.paints)
}

// debugCheckDepthLimit warns about top-level items whose subtree is deeper
// than the depth limit. Draw skips such items together with their
// descendants.
func debugCheckDepthLimit(c *Chart) {
	for i, it := range c.items {
		if it.depth > c.cfg.depthLimit {
			Logger().Warn("ringchart: item deeper than depth limit is not drawn",
				"item", i, "depth", it.depth, "limit", c.cfg.depthLimit)
		}
	}
}

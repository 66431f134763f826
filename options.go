package ringchart

// Option configures a Chart during creation.
//
// Example:
//
//	chart, err := ringchart.NewChart(items,
//	    ringchart.WithDepthLimit(3),
//	    ringchart.WithInnerHole(false),
//	)
type Option func(*config)

// config holds the chart settings that options can change.
type config struct {
	depthLimit   int
	innerHole    *bool // nil = derive from tree depth
	palette      Palette
	margin       float64
	outline      Color
	outlineWidth float64
}

const (
	defaultDepthLimit   = 5
	defaultMargin       = 10
	defaultOutlineWidth = 1
)

func defaultConfig() config {
	return config{
		depthLimit:   defaultDepthLimit,
		palette:      DefaultPalette,
		margin:       defaultMargin,
		outline:      ColorBlack,
		outlineWidth: defaultOutlineWidth,
	}
}

// WithDepthLimit sets the maximum number of rings drawn. Items whose subtree
// is deeper than the limit are laid out but not drawn. Must be at least 1.
func WithDepthLimit(n int) Option {
	return func(c *config) {
		c.depthLimit = n
	}
}

// WithInnerHole forces the innermost ring to be left blank (true) or filled
// by the top-level items (false). Without this option the hole is present
// unless every top-level item is a leaf.
func WithInnerHole(enabled bool) Option {
	return func(c *config) {
		c.innerHole = &enabled
	}
}

// WithPalette replaces the six-stop color wheel.
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithMargin sets the pixels subtracted from the smaller allocation side
// before the outer radius is computed. Default 10.
func WithMargin(px float64) Option {
	return func(c *config) {
		c.margin = px
	}
}

// WithOutline sets the sector outline color and stroke width. Default black, 1px.
func WithOutline(col Color, width float64) Option {
	return func(c *config) {
		c.outline = col
		c.outlineWidth = width
	}
}

// Package raster renders a ringchart.Chart to an image without a window,
// using the gogpu/gg software rasterizer.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/phanxgames/ringchart"
)

// ErrInvalidSize is returned for a non-positive image size.
var ErrInvalidSize = errors.New("raster: image size must be positive")

// Options control an offscreen render.
type Options struct {
	// Width and Height of the image in pixels.
	Width, Height int
	// Background fills the image before the chart is drawn. Nil leaves it
	// transparent.
	Background *ringchart.Color
	// Highlight, when set, is a pixel position fed to Chart.PointerMove after
	// the chart is drawn, so the hovered sector appears highlighted.
	Highlight *ringchart.Vec2
}

// Render draws chart into a new image. The chart's render geometry and
// highlight state are updated as if it had been shown on screen.
func Render(chart *ringchart.Chart, opts Options) (image.Image, error) {
	dc, err := draw(chart, opts)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	return dc.Image(), nil
}

// EncodePNG renders chart and writes it to w as a PNG.
func EncodePNG(w io.Writer, chart *ringchart.Chart, opts Options) error {
	dc, err := draw(chart, opts)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

// draw paints chart onto a new context. The caller closes it.
func draw(chart *ringchart.Chart, opts Options) (*gg.Context, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	if bg := opts.Background; bg != nil {
		dc.ClearWithColor(gg.RGB(bg.R, bg.G, bg.B))
	}

	s := NewSurface(dc)
	chart.Render(s, float64(opts.Width), float64(opts.Height))
	if h := opts.Highlight; h != nil {
		chart.PointerMove(h.X, h.Y, s)
	}
	if err := s.Err(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("raster: paint: %w", err)
	}

	ringchart.Logger().Debug("raster: rendered",
		"width", opts.Width, "height", opts.Height, "drawn", chart.Rendered())
	return dc, nil
}

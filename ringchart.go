package ringchart

import (
	"image/color"
	"math"
)

// fullTurn is one revolution in radians. The chart root hands it to its
// top-level items as their parent angle.
const fullTurn = 2 * math.Pi

// Color represents an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// Outline and background defaults.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{1, 1, 1}
)

// Lerp returns the color t of the way from c to other. t is not clamped.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R - (c.R-other.R)*t,
		G: c.G - (c.G-other.G)*t,
		B: c.B - (c.B-other.B)*t,
	}
}

// Lighten returns c moved halfway toward white. Highlighted sectors are
// filled with the lightened color.
func (c Color) Lighten() Color {
	return Color{
		R: c.R + (1-c.R)/2,
		G: c.G + (1-c.G)/2,
		B: c.B + (1-c.B)/2,
	}
}

// ToRGBA converts c to an opaque color.RGBA, clamping each channel.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: 255,
	}
}

func channel8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Palette is the six-stop color wheel sectors are colored from. Stop i sits
// at angle i*60°; angles between stops are linearly interpolated.
type Palette [6]Color

// DefaultPalette holds the Tango colors: scarlet red, plum, sky blue,
// chameleon, chocolate and orange.
var DefaultPalette = Palette{
	{0.94, 0.16, 0.16},
	{0.68, 0.49, 0.66},
	{0.45, 0.62, 0.82},
	{0.54, 0.89, 0.20},
	{0.91, 0.73, 0.43},
	{0.99, 0.68, 0.25},
}

// At returns the palette color for a sector starting at angle (radians).
// The mapping is periodic: At(a) and At(a+2π) agree.
func (p Palette) At(angle float64) Color {
	x := math.Mod(6*angle/fullTurn, 6)
	if x < 0 {
		x += 6
	}
	a := math.Floor(x)
	frac := x - a
	i := int(a) % 6
	return p[i].Lerp(p[(i+1)%6], frac)
}

// Vec2 is a 2D point in surface (pixel) coordinates.
type Vec2 struct {
	X, Y float64
}

// EventType identifies a kind of hover event.
type EventType uint8

const (
	EventPointerEnter EventType = iota // fires when an item becomes highlighted under the pointer
	EventPointerLeave                  // fires when the pointer leaves the highlighted item
)

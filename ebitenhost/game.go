// Package ebitenhost shows a ringchart.Chart in an Ebitengine window. It feeds
// cursor movement into the chart's highlight state machine, repaints the
// chart every frame and prints the hovered item's tooltip next to the cursor.
package ebitenhost

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/ringchart"
)

// RunConfig holds optional parameters for [Run].
type RunConfig struct {
	// Title sets the window title. Ignored on platforms without title bars.
	Title string
	// Width and Height set the window size in device-independent pixels.
	// If zero, defaults to 640x480.
	Width, Height int
	// ClearColor fills the window before the chart is drawn. Defaults to white.
	ClearColor *ringchart.Color
	// ShowFPS draws the current FPS and TPS in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is where queued screenshots are written. Defaults to
	// "screenshots".
	ScreenshotDir string
}

const (
	defaultWidth         = 640
	defaultHeight        = 480
	defaultScreenshotDir = "screenshots"

	// Tooltip offset from the cursor, in pixels.
	tooltipOffsetX = 12
	tooltipOffsetY = 16
)

// Game implements ebiten.Game for a single chart.
type Game struct {
	chart *ringchart.Chart
	cfg   RunConfig

	width, height int

	cursorX, cursorY float64
	tooltip          string

	injectQueue     []syntheticPointerEvent
	runner          *ScriptRunner
	screenshotQueue []string

	// UpdateFunc, if set, runs at the start of every Update.
	UpdateFunc func() error
}

// NewGame wraps chart in an ebiten.Game. The chart's layout must be current.
func NewGame(chart *ringchart.Chart, cfg RunConfig) *Game {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = defaultHeight
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = defaultScreenshotDir
	}
	return &Game{chart: chart, cfg: cfg, width: cfg.Width, height: cfg.Height}
}

// Chart returns the displayed chart.
func (g *Game) Chart() *ringchart.Chart { return g.chart }

// Tooltip returns the tooltip currently shown, or "".
func (g *Game) Tooltip() string { return g.tooltip }

// Update feeds one pointer sample into the chart. Injected events take
// priority over the real cursor.
func (g *Game) Update() error {
	if g.UpdateFunc != nil {
		if err := g.UpdateFunc(); err != nil {
			return err
		}
	}
	if g.runner != nil {
		g.runner.step(g)
	}
	if g.processInjectedInput() {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	if image.Pt(mx, my).In(image.Rect(0, 0, g.width, g.height)) {
		g.pointerMove(float64(mx), float64(my))
	} else {
		g.pointerExit()
	}
	return nil
}

// pointerMove updates highlight state only; Draw repaints the whole chart
// every frame, highlighted item included.
func (g *Game) pointerMove(x, y float64) {
	g.cursorX, g.cursorY = x, y
	g.chart.PointerMove(x, y, nil)
	g.tooltip, _ = g.chart.QueryTooltip(x, y)
}

func (g *Game) pointerExit() {
	g.chart.PointerExit(nil)
	g.tooltip = ""
}

// Draw clears the screen, renders the chart and overlays the tooltip.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := ringchart.ColorWhite
	if g.cfg.ClearColor != nil {
		bg = *g.cfg.ClearColor
	}
	screen.Fill(bg.ToRGBA())

	b := screen.Bounds()
	g.chart.Render(NewSurface(screen), float64(b.Dx()), float64(b.Dy()))

	if g.tooltip != "" {
		ebitenutil.DebugPrintAt(screen, g.tooltip,
			int(g.cursorX)+tooltipOffsetX, int(g.cursorY)+tooltipOffsetY)
	}
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	g.flushScreenshots(screen)
}

// Layout tracks the window size so the chart follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a resizable window showing chart and blocks until it is closed.
func Run(chart *ringchart.Chart, cfg RunConfig) error {
	return RunGame(NewGame(chart, cfg))
}

// RunGame opens a window for g and blocks until it is closed.
func RunGame(g *Game) error {
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ringchart.Logger().Debug("ebitenhost: run", "title", g.cfg.Title,
		"width", g.cfg.Width, "height", g.cfg.Height)
	return ebiten.RunGame(g)
}

package ringchart

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// captureLogs routes the package logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestDebugMode_RenderStats(t *testing.T) {
	buf := captureLogs(t)
	c, _, _, _, _ := twoLevelChart(t)
	c.SetDebugMode(true)
	t.Cleanup(func() { c.SetDebugMode(false) })

	c.Render(&recordingSurface{}, 310, 310)

	if c.stats.itemsDrawn != 4 {
		t.Errorf("itemsDrawn = %d, want 4", c.stats.itemsDrawn)
	}
	if c.stats.paints != 4 {
		t.Errorf("paints = %d, want 4", c.stats.paints)
	}
	if c.stats.rings != 2 || c.stats.thickness != 50 {
		t.Errorf("rings/thickness = %d/%v", c.stats.rings, c.stats.thickness)
	}
	if !strings.Contains(buf.String(), "ringchart: render") {
		t.Errorf("render stats not logged: %q", buf.String())
	}
}

func TestDebugMode_DepthLimitWarning(t *testing.T) {
	buf := captureLogs(t)
	c, _, _, _, _ := twoLevelChart(t, WithDepthLimit(1))
	c.SetDebugMode(true)
	t.Cleanup(func() { c.SetDebugMode(false) })

	if err := c.Layout(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "deeper than depth limit") {
		t.Errorf("expected depth warning, got %q", out)
	}
	if !strings.Contains(out, "item=0") || strings.Contains(out, "item=1") {
		t.Errorf("only top-level item 0 should be reported: %q", out)
	}
}

func TestReleaseMode_NoRenderLog(t *testing.T) {
	buf := captureLogs(t)
	c, _, _, _, _ := twoLevelChart(t)
	c.Render(nil, 310, 310)
	if strings.Contains(buf.String(), `msg="ringchart: render"`) {
		t.Errorf("render stats logged outside debug mode: %q", buf.String())
	}
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestDebugMode_IsPerChart(t *testing.T) {
	buf := captureLogs(t)
	debugged, _, _, _, _ := twoLevelChart(t, WithDepthLimit(1))
	debugged.SetDebugMode(true)

	quiet, _, _, _, _ := twoLevelChart(t, WithDepthLimit(1))
	buf.Reset()
	if err := quiet.Layout(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "deeper than depth limit") {
		t.Errorf("chart without debug mode logged a depth warning: %q", buf.String())
	}

	quiet.SetDebugMode(false)
	buf.Reset()
	if err := debugged.Layout(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "deeper than depth limit") {
		t.Error("disabling debug on one chart silenced another")
	}
}

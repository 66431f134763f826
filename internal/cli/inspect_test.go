package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestLayoutRows(t *testing.T) {
	c, _ := newTestCLI(t)
	chart, err := c.loadChart(writeChartFile(t))
	if err != nil {
		t.Fatal(err)
	}

	rows := layoutRows(chart)
	want := []struct {
		path       string
		tooltip    string
		proportion float64
		depth      int
		minDeg     float64
		maxDeg     float64
	}{
		{"0", "fruit", 0.5, 2, 0, 180},
		{"0.0", "apples", 0.75, 1, 0, 135},
		{"0.1", "pears", 0.25, 1, 135, 180},
		{"1", "veg", 0.5, 1, 180, 360},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		r := rows[i]
		if r.path != w.path || r.tooltip != w.tooltip || r.depth != w.depth {
			t.Errorf("row %d = %s %q depth %d, want %s %q depth %d",
				i, r.path, r.tooltip, r.depth, w.path, w.tooltip, w.depth)
		}
		if !near(r.proportion, w.proportion) || !near(r.minDeg, w.minDeg) || !near(r.maxDeg, w.maxDeg) {
			t.Errorf("row %d = %.3f [%.3f, %.3f], want %.3f [%.3f, %.3f]",
				i, r.proportion, r.minDeg, r.maxDeg, w.proportion, w.minDeg, w.maxDeg)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func TestInspectCommandPlain(t *testing.T) {
	c, _ := newTestCLI(t)
	var out bytes.Buffer
	c.Out = &out

	root := c.RootCommand()
	root.SetArgs([]string{"inspect", "--plain", writeChartFile(t)})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 4 rows:\n%s", len(lines), out.String())
	}
	if lines[2] != "0.0\tapples\t3\t0.7500\t1\t0.00\t135.00" {
		t.Errorf("apples row = %q", lines[2])
	}
}

func TestInspectCommandTable(t *testing.T) {
	c, _ := newTestCLI(t)
	var out bytes.Buffer
	c.Out = &out

	root := c.RootCommand()
	root.SetArgs([]string{"inspect", writeChartFile(t)})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Ring chart layout", "fruit", "apples", "pears", "veg", "#"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("table output missing %q:\n%s", want, out.String())
		}
	}
}

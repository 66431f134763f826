package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gogpu/gg"

	"github.com/phanxgames/ringchart"
)

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	t.Cleanup(func() {
		ringchart.SetLogger(nil)
		gg.SetLogger(nil)
	})
	var buf bytes.Buffer
	return New(&buf, log.InfoLevel), &buf
}

func TestRootCommandSubcommands(t *testing.T) {
	c, _ := newTestCLI(t)
	root := c.RootCommand()

	want := []string{"render", "view", "inspect", "serve"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetVersion(t *testing.T) {
	oldV, oldC, oldD := version, commit, date
	t.Cleanup(func() { SetVersion(oldV, oldC, oldD) })

	SetVersion("1.2.3", "abc123", "2026-01-02")

	c, buf := newTestCLI(t)
	root := c.RootCommand()
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"ringchart 1.2.3", "commit: abc123", "built: 2026-01-02"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output %q missing %q", out, want)
		}
	}
}

func TestCommandsRequireFile(t *testing.T) {
	for _, name := range []string{"render", "view", "inspect", "serve"} {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			root := c.RootCommand()
			root.SetArgs([]string{name})
			if err := root.Execute(); err == nil {
				t.Errorf("%s with no file: want error", name)
			}
		})
	}
}

func TestLoadChartMissingFile(t *testing.T) {
	c, _ := newTestCLI(t)
	if _, err := c.loadChart("does-not-exist.toml"); err == nil {
		t.Error("loadChart on missing file: want error")
	}
}

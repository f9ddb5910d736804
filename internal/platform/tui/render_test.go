package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/camelrace/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "camel")
	s.DrawTextColored(2, 1, "W", core.ColorWhite)
	s.DrawTextColored(3, 1, "O", core.ColorOrange)

	out := ansi.Strip(RenderScreen(s))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "camel     " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "  WO      " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if out := ansi.Strip(RenderScreen(s)); out != "x  " {
		t.Errorf("RenderScreen = %q, want %q", out, "x  ")
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("size = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetColored(3, 2, '♞', ColorOrange)
	if c := s.GetCell(3, 2); c.Rune != '♞' || c.Color != ColorOrange {
		t.Errorf("GetCell(3, 2) = %+v, expected orange knight", c)
	}

	s.Set(3, 2, 'x')
	if c := s.GetCell(3, 2); c.Color != ColorDefault {
		t.Errorf("Set should reset colour, got %v", c.Color)
	}

	// Out of bounds is silent
	s.SetColored(-1, 0, 'A', ColorRed)
	s.SetColored(10, 0, 'A', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenDrawTextClipsAndCountsRunes(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColored(5, 0, "▲▼ab", ColorGreen)

	if s.Get(5, 0) != '▲' || s.Get(6, 0) != '▼' || s.Get(7, 0) != 'a' {
		t.Errorf("row = %q", s.Row(0))
	}
	if s.GetCell(6, 0).Color != ColorGreen {
		t.Error("text colour not applied")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "Hi")

	x := (20 - 2) / 2
	if s.Get(x, 1) != 'H' || s.Get(x+1, 1) != 'i' {
		t.Errorf("DrawTextCentered row = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 4, 3), ColorGray)

	want := []string{
		"",
		" ┌──┐",
		" │  │",
		" └──┘",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("row %d = %q, want %q", y, got, line)
		}
	}
	if s.GetCell(1, 1).Color != ColorGray {
		t.Error("box colour not applied")
	}
}

func TestScreenStringAndClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q", got)
	}

	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Error("Clear should blank the screen")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 3)
	s.SetColored(1, 1, 'X', ColorRed)
	s.Set(4, 2, 'Y')

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size after shrink = %dx%d", s.Width(), s.Height())
	}
	if c := s.GetCell(1, 1); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("content not preserved: %+v", c)
	}

	s.Resize(6, 4)
	if s.Get(1, 1) != 'X' || s.Get(5, 3) != ' ' {
		t.Error("grow should keep content and blank new cells")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if len(f.Actions) != 0 {
		t.Error("new frame should be empty")
	}

	f.Set(ActionAdvance)
	if !f.Has(ActionAdvance) || f.Has(ActionNewRace) {
		t.Error("Has does not match Set")
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Error("Clear should drop all actions")
	}

	var zero InputFrame
	if zero.Has(ActionAdvance) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/camelrace/internal/core"
	"github.com/vovakirdan/camelrace/internal/registry"
)

func init() {
	registry.Register("menu_stub_a", func() registry.Game { return &titledStub{title: "Alpha Race"} })
	registry.Register("menu_stub_b", func() registry.Game { return &titledStub{title: "Beta Race"} })
}

type titledStub struct {
	stubGame
	title string
}

func (g *titledStub) Title() string { return g.title }

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	view := m.View()
	for _, want := range []string{"Alpha Race", "Beta Race", "> Alpha Race"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("selecting should end the menu")
	}
	if m.Selected() == nil || m.Selected().GameID != "menu_stub_b" {
		t.Errorf("selected = %+v, want menu_stub_b", m.Selected())
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}

	for range 10 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, want %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuQuitAndResize(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(MenuModel)
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}

	next, _ = m.Update(runeKey('q'))
	m = next.(MenuModel)
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestSessionMenuToRaceAndBack(t *testing.T) {
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}, testLogger())

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.race == nil {
		t.Fatal("selecting a variant should start a race")
	}

	next, _ = s.Update(runeKey('b'))
	s = next.(SessionModel)
	if s.race != nil {
		t.Fatal("back should return to the menu")
	}
	if s.menu.Selected() != nil {
		t.Error("menu should be fresh after returning")
	}
}

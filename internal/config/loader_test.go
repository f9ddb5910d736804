package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/camelrace/internal/race"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(defaultCamelRaceYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	want := DefaultCamelRaceConfig()
	if cfg.Autoplay != want.Autoplay || cfg.Engine != want.Engine || cfg.Render != want.Render {
		t.Errorf("embedded defaults = %+v, builtin = %+v", cfg, want)
	}
	if len(cfg.Board.Modifiers) != 0 {
		t.Errorf("embedded defaults place %d markers, expected none", len(cfg.Board.Modifiers))
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "race.yaml")
	data := []byte(`
autoplay:
  enabled: true
board:
  modifiers:
    - cell: 4
      kind: trap
    - cell: 9
      kind: boost
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCamelRace(path)
	if err != nil {
		t.Fatalf("LoadCamelRace() failed: %v", err)
	}

	if !cfg.Autoplay.Enabled {
		t.Error("autoplay should be enabled")
	}
	if cfg.Autoplay.IntervalTicks != 30 {
		t.Errorf("unset keys should keep defaults, interval = %d", cfg.Autoplay.IntervalTicks)
	}
	if !cfg.Render.ShowRanks {
		t.Error("render defaults lost")
	}

	placements := cfg.Board.Placements()
	if placements[4] != race.ModifierTrap || placements[9] != race.ModifierBoost {
		t.Errorf("placements = %v", placements)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCamelRace(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	tests := map[string]string{
		"bad yaml":       "autoplay: [",
		"zero interval":  "autoplay:\n  interval_ticks: 0\n",
		"cell zero":      "board:\n  modifiers:\n    - cell: 0\n      kind: boost\n",
		"cell too big":   "board:\n  modifiers:\n    - cell: 16\n      kind: boost\n",
		"unknown kind":   "board:\n  modifiers:\n    - cell: 3\n      kind: oasis\n",
		"duplicate cell": "board:\n  modifiers:\n    - cell: 3\n      kind: boost\n    - cell: 3\n      kind: trap\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadCamelRace(path); err == nil {
				t.Errorf("expected error for %s", name)
			}
		})
	}
}

func TestValidateDuplicateCell(t *testing.T) {
	cfg := DefaultCamelRaceConfig()
	cfg.Board.Modifiers = []ModifierPlacement{
		{Cell: 4, Kind: "boost"},
		{Cell: 9, Kind: "trap"},
		{Cell: 4, Kind: "trap"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("duplicate cell should fail validation")
	}
	if !strings.Contains(err.Error(), "board.modifiers[2]") || !strings.Contains(err.Error(), "board.modifiers[0]") {
		t.Errorf("error %q should name both entries", err)
	}
}

func TestApplyPacePreset(t *testing.T) {
	tests := []struct {
		preset PacePreset
		want   int
	}{
		{PaceSlow, 60},
		{PaceNormal, 30},
		{PaceFast, 8},
		{"", 30},
		{"warp", 30},
	}
	for _, tt := range tests {
		cfg := DefaultCamelRaceConfig()
		ApplyPacePreset(&cfg, tt.preset)
		if cfg.Autoplay.IntervalTicks != tt.want {
			t.Errorf("ApplyPacePreset(%q) interval = %d, want %d", tt.preset, cfg.Autoplay.IntervalTicks, tt.want)
		}
	}
}

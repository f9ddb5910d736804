package config

import (
	_ "embed"
)

//go:embed defaults/camelrace.yaml
var defaultCamelRaceYAML []byte

// DefaultCamelRaceConfig returns the built-in configuration.
func DefaultCamelRaceConfig() CamelRaceConfig {
	return CamelRaceConfig{
		Autoplay: AutoplayConfig{
			Enabled:       false,
			IntervalTicks: 30,
		},
		Engine: EngineConfig{
			DebugInvariants: true,
			StartRace:       true,
		},
		Render: RenderConfig{
			ShowRanks:    true,
			ShowLastMove: true,
		},
	}
}

package config

// PacePreset is a named autoplay speed.
type PacePreset string

const (
	PaceSlow   PacePreset = "slow"
	PaceNormal PacePreset = "normal"
	PaceFast   PacePreset = "fast"
)

// IntervalForPace returns the ticks between advances for a preset, or 0 for
// an unknown preset.
func IntervalForPace(preset PacePreset) int {
	switch preset {
	case PaceSlow:
		return 60
	case PaceNormal:
		return 30
	case PaceFast:
		return 8
	default:
		return 0
	}
}

// ApplyPacePreset sets the autoplay interval from a preset. An empty or
// unknown preset leaves the config unchanged.
func ApplyPacePreset(cfg *CamelRaceConfig, preset PacePreset) {
	if ticks := IntervalForPace(preset); ticks > 0 {
		cfg.Autoplay.IntervalTicks = ticks
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// DefaultSweeperConfig returns the built-in configuration.
// Used when the embedded YAML cannot be parsed.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Board: BoardConfig{
			Cols:            16,
			Rows:            16,
			MineProbability: 0.15,
		},
		Display: DisplayConfig{
			ShowZeroes:           false,
			RevealAnimationTicks: 8, // ~126ms at 60fps
			ValueColors: []string{
				"gray", "bright_blue", "green", "bright_red",
				"blue", "red", "cyan", "magenta", "bright_white",
			},
			MineColor: "bright_red",
			FlagColor: "orange",
			GridColor: "gray",
		},
		Scoring: ScoringConfig{
			PerMine:          100,
			TimeBonus:        1000,
			PenaltyPerSecond: 5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSweeperYAML
}

package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named board size and mine density.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom" // Board taken from the config file as is
)

// presetBoards holds the grid of every built-in preset.
var presetBoards = map[DifficultyPreset]BoardConfig{
	DifficultyEasy:   {Cols: 9, Rows: 9, MineProbability: 0.12},
	DifficultyNormal: {Cols: 16, Rows: 16, MineProbability: 0.15},
	DifficultyHard:   {Cols: 30, Rows: 16, MineProbability: 0.20},
}

// Presets returns all presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom}
}

// ParsePreset resolves a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(name))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", name)
}

// PresetBoard returns the board of a built-in preset.
// Returns false for custom or unknown presets.
func PresetBoard(preset DifficultyPreset) (BoardConfig, bool) {
	b, ok := presetBoards[preset]
	return b, ok
}

// ApplySweeperPreset replaces the board section with the preset's grid.
// The custom preset leaves the config untouched.
func ApplySweeperPreset(cfg *SweeperConfig, preset DifficultyPreset) {
	if b, ok := PresetBoard(preset); ok {
		cfg.Board = b
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the sweeper platform.
package config

// SweeperConfig contains all configuration for a Minesweeper game.
type SweeperConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the grid and how mines are placed.
type BoardConfig struct {
	Cols            int     `yaml:"cols"`
	Rows            int     `yaml:"rows"`
	MineProbability float64 `yaml:"mine_probability"` // Per-cell Bernoulli chance

	// Layout, when set, replaces random generation with a fixed board.
	// '*' marks a mine, '.' a safe cell; Cols and Rows are taken from it.
	Layout []string `yaml:"layout"`
}

// DisplayConfig defines how cells are drawn.
type DisplayConfig struct {
	ShowZeroes           bool     `yaml:"show_zeroes"`
	RevealAnimationTicks int      `yaml:"reveal_animation_ticks"` // 0 disables the animation
	ValueColors          []string `yaml:"value_colors"`           // Indexed by value, last entry repeats
	MineColor            string   `yaml:"mine_color"`
	FlagColor            string   `yaml:"flag_color"`
	GridColor            string   `yaml:"grid_color"`
}

// ScoringConfig defines how a win is scored.
type ScoringConfig struct {
	PerMine          int `yaml:"per_mine"`
	TimeBonus        int `yaml:"time_bonus"`
	PenaltyPerSecond int `yaml:"penalty_per_second"`
}

// Score returns the score for a win with the given mine count and time.
func (s ScoringConfig) Score(mines, seconds int) int {
	bonus := s.TimeBonus - s.PenaltyPerSecond*seconds
	if bonus < 0 {
		bonus = 0
	}
	return s.PerMine*mines + bonus
}

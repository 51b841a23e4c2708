// Package config provides YAML-based game configuration loading,
// visual themes and difficulty presets for the snake game.
package config

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Rules RulesConfig `yaml:"rules"`
	Audio AudioConfig `yaml:"audio"`
	HUD   HUDConfig   `yaml:"hud"`
	Theme string      `yaml:"theme"` // Optional path to a theme YAML
}

// GridConfig describes the playfield. The grid is derived from a window size
// and a cell size, in the same units.
type GridConfig struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	CellSize     int `yaml:"cell_size"`
}

// Width returns the number of grid columns.
func (g GridConfig) Width() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.WindowWidth / g.CellSize
}

// Height returns the number of grid rows.
func (g GridConfig) Height() int {
	if g.CellSize <= 0 {
		return 0
	}
	return g.WindowHeight / g.CellSize
}

// RulesConfig defines movement cadence, scoring and speed progression.
type RulesConfig struct {
	FrameRate      int `yaml:"frame_rate"`      // Simulation frames per second
	BaseSpeed      int `yaml:"base_speed"`      // Moves per second at start
	SpeedStep      int `yaml:"speed_step"`      // Added each time the threshold is hit
	MaxSpeed       int `yaml:"max_speed"`       // Speed cap
	SpeedThreshold int `yaml:"speed_threshold"` // Score multiple that triggers a speed-up
	FoodPoints     int `yaml:"food_points"`     // Score per food
}

// AudioConfig points at the sound assets.
type AudioConfig struct {
	Enabled       bool    `yaml:"enabled"`
	EatSound      string  `yaml:"eat_sound"`
	GameOverSound string  `yaml:"game_over_sound"`
	Volume        float64 `yaml:"volume"` // 0.0 - 1.0
}

// HUDConfig controls the status line above the board.
type HUDConfig struct {
	// Format is a text/template over the game snapshot.
	// Sprig functions are available.
	Format string `yaml:"format"`
}

// Theme is the visual style used to draw the board.
type Theme struct {
	Name   string      `yaml:"name"`
	Glyphs ThemeGlyphs `yaml:"glyphs"`
	Colors ThemeColors `yaml:"colors"`
}

// ThemeGlyphs are the strings drawn for one grid cell. All glyphs must
// have the same width; that width is the on-screen cell width.
type ThemeGlyphs struct {
	Head  string `yaml:"head"`
	Body  string `yaml:"body"`
	Food  string `yaml:"food"`
	Empty string `yaml:"empty"`
}

// ThemeColors are ANSI 256 codes ("208") or hex triplets ("#ff8800").
// BodyFrom/BodyTo form the head-to-tail gradient when both are hex.
type ThemeColors struct {
	Head     string `yaml:"head"`
	BodyFrom string `yaml:"body_from"`
	BodyTo   string `yaml:"body_to"`
	Food     string `yaml:"food"`
	Empty    string `yaml:"empty"`
	Border   string `yaml:"border"`
	HUD      string `yaml:"hud"`
	GameOver string `yaml:"game_over"`
	Paused   string `yaml:"paused"`
}

// CellWidth returns the on-screen width of a grid cell.
func (t Theme) CellWidth() int {
	return len([]rune(t.Glyphs.Head))
}

package config

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pixil98/go-errors"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate reports every problem with the configuration at once.
func (c *SnakeConfig) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Grid.Validate())
	el.Add(c.Rules.Validate())
	el.Add(c.Audio.Validate())

	return el.Err()
}

func (g *GridConfig) Validate() error {
	el := errors.NewErrorList()

	if g.CellSize <= 0 {
		el.Add(fmt.Errorf("grid.cell_size must be positive"))
	} else {
		if g.Width() < 2 {
			el.Add(fmt.Errorf("grid.window_width must fit at least 2 cells"))
		}
		if g.Height() < 2 {
			el.Add(fmt.Errorf("grid.window_height must fit at least 2 cells"))
		}
	}

	return el.Err()
}

func (r *RulesConfig) Validate() error {
	el := errors.NewErrorList()

	if r.FrameRate < 1 {
		el.Add(fmt.Errorf("rules.frame_rate must be at least 1"))
	}
	if r.BaseSpeed < 1 {
		el.Add(fmt.Errorf("rules.base_speed must be at least 1"))
	}
	if r.SpeedStep < 0 {
		el.Add(fmt.Errorf("rules.speed_step must not be negative"))
	}
	if r.MaxSpeed < r.BaseSpeed {
		el.Add(fmt.Errorf("rules.max_speed (%d) must not be below base_speed (%d)", r.MaxSpeed, r.BaseSpeed))
	}
	if r.SpeedThreshold < 1 {
		el.Add(fmt.Errorf("rules.speed_threshold must be at least 1"))
	}
	if r.FoodPoints < 1 {
		el.Add(fmt.Errorf("rules.food_points must be at least 1"))
	}

	return el.Err()
}

func (a *AudioConfig) Validate() error {
	if a.Volume < 0 || a.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1]")
	}
	return nil
}

// Validate checks glyph widths and color syntax.
func (t *Theme) Validate() error {
	el := errors.NewErrorList()

	width := t.CellWidth()
	if width == 0 {
		el.Add(fmt.Errorf("glyphs.head must not be empty"))
	}
	glyphs := map[string]string{
		"body":  t.Glyphs.Body,
		"food":  t.Glyphs.Food,
		"empty": t.Glyphs.Empty,
	}
	for name, g := range glyphs {
		if len([]rune(g)) != width {
			el.Add(fmt.Errorf("glyphs.%s must be %d characters wide, got %q", name, width, g))
		}
	}

	colors := map[string]string{
		"head":      t.Colors.Head,
		"body_from": t.Colors.BodyFrom,
		"body_to":   t.Colors.BodyTo,
		"food":      t.Colors.Food,
		"empty":     t.Colors.Empty,
		"border":    t.Colors.Border,
		"hud":       t.Colors.HUD,
		"game_over": t.Colors.GameOver,
		"paused":    t.Colors.Paused,
	}
	for name, c := range colors {
		if !validColor(c) {
			el.Add(fmt.Errorf("colors.%s: %q is neither an ANSI code nor #rrggbb", name, c))
		}
	}

	return el.Err()
}

func validColor(c string) bool {
	if c == "" || hexColor.MatchString(c) {
		return true
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255
}

// ParseHex splits a #rrggbb color into channels.
func ParseHex(c string) (r, g, b uint8, ok bool) {
	if !hexColor.MatchString(c) {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(c[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

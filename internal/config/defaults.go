package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/theme.yaml
var defaultThemeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			WindowWidth:  800,
			WindowHeight: 600,
			CellSize:     20,
		},
		Rules: RulesConfig{
			FrameRate:      60,
			BaseSpeed:      10,
			SpeedStep:      2,
			MaxSpeed:       20,
			SpeedThreshold: 50,
			FoodPoints:     10,
		},
		Audio: AudioConfig{
			Enabled:       true,
			EatSound:      "eat.wav",
			GameOverSound: "gameover.wav",
			Volume:        0.8,
		},
		HUD: HUDConfig{
			Format: "Score: {{ .Score }}  Speed: {{ .Speed }}",
		},
	}
}

// DefaultTheme returns the built-in theme. It is also the fallback when a
// theme file cannot be loaded.
func DefaultTheme() Theme {
	return Theme{
		Name: "classic",
		Glyphs: ThemeGlyphs{
			Head:  "██",
			Body:  "██",
			Food:  "██",
			Empty: "· ",
		},
		Colors: ThemeColors{
			Head:     "#32cd32",
			BodyFrom: "#32cd32", // rgb(50, 205, 50)
			BodyTo:   "#ff6932", // rgb(255, 105, 50)
			Food:     "#ff0000",
			Empty:    "#323232",
			Border:   "245",
			HUD:      "15",
			GameOver: "#ff0000",
			Paused:   "#ffff00",
		},
	}
}

// ASCIITheme is a plain-character theme for terminals without block glyphs.
func ASCIITheme() Theme {
	return Theme{
		Name: "ascii",
		Glyphs: ThemeGlyphs{
			Head:  "O",
			Body:  "o",
			Food:  "*",
			Empty: " ",
		},
		Colors: ThemeColors{},
	}
}

// GetDefaultYAML returns the embedded default YAML for the given document
// ("snake" or "theme").
func GetDefaultYAML(name string) []byte {
	switch name {
	case "snake":
		return defaultSnakeYAML
	case "theme":
		return defaultThemeYAML
	default:
		return nil
	}
}

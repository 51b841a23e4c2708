package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// Description is the one-line summary shown in the difficulty picker.
func (p DifficultyPreset) Description() string {
	switch p {
	case DifficultyEasy:
		return "Slower start, gentle speed-ups"
	case DifficultyNormal:
		return "Classic pace"
	case DifficultyHard:
		return "Fast start, higher cap"
	case DifficultyFixed:
		return "No speed progression"
	default:
		return ""
	}
}

// ApplySnakePreset modifies the rules based on a difficulty preset.
// Normal leaves the configured rules untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.BaseSpeed = max(1, cfg.Rules.BaseSpeed-4)
		cfg.Rules.SpeedStep = max(1, cfg.Rules.SpeedStep/2)
		cfg.Rules.MaxSpeed = max(cfg.Rules.BaseSpeed, cfg.Rules.MaxSpeed-4)
	case DifficultyHard:
		cfg.Rules.BaseSpeed += 4
		cfg.Rules.MaxSpeed += 4
	case DifficultyFixed:
		cfg.Rules.SpeedStep = 0
	}
}

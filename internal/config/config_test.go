package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SnakeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("snake"), &fromYAML); err != nil {
		t.Fatalf("embedded snake.yaml does not parse: %v", err)
	}
	def := DefaultSnakeConfig()

	testutil.AssertEqual(t, "grid", fromYAML.Grid, def.Grid)
	testutil.AssertEqual(t, "rules", fromYAML.Rules, def.Rules)
	testutil.AssertEqual(t, "audio", fromYAML.Audio, def.Audio)
	testutil.AssertEqual(t, "hud format", fromYAML.HUD.Format, def.HUD.Format)

	var theme Theme
	if err := yaml.Unmarshal(GetDefaultYAML("theme"), &theme); err != nil {
		t.Fatalf("embedded theme.yaml does not parse: %v", err)
	}
	testutil.AssertEqual(t, "theme", theme, DefaultTheme())
}

func TestGridDimensions(t *testing.T) {
	g := DefaultSnakeConfig().Grid
	testutil.AssertEqual(t, "width", g.Width(), 40)
	testutil.AssertEqual(t, "height", g.Height(), 30)

	testutil.AssertEqual(t, "zero cell width", GridConfig{WindowWidth: 100}.Width(), 0)
}

func TestLoadSnakeCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	doc := "rules:\n  base_speed: 6\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	testutil.AssertEqual(t, "base speed", cfg.Rules.BaseSpeed, 6)
	testutil.AssertEqual(t, "max speed kept", cfg.Rules.MaxSpeed, 20)
	testutil.AssertEqual(t, "cell size kept", cfg.Grid.CellSize, 20)
}

func TestLoadSnakeErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSnake(filepath.Join(dir, "missing.yaml"))
	testutil.AssertErrorContains(t, err, "failed to read config")

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = LoadSnake(bad)
	testutil.AssertErrorContains(t, err, "failed to parse config")

	invalid := filepath.Join(dir, "invalid.yaml")
	doc := "rules:\n  base_speed: 30\n  max_speed: 20\n  frame_rate: 0\n"
	if err := os.WriteFile(invalid, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = LoadSnake(invalid)
	testutil.AssertErrorContains(t, err, "max_speed")
	testutil.AssertErrorContains(t, err, "frame_rate")
}

func TestValidateDefaults(t *testing.T) {
	cfg := DefaultSnakeConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}

	theme := DefaultTheme()
	if err := theme.Validate(); err != nil {
		t.Errorf("default theme should be valid: %v", err)
	}

	ascii := ASCIITheme()
	if err := ascii.Validate(); err != nil {
		t.Errorf("ascii theme should be valid: %v", err)
	}
}

func TestThemeValidate(t *testing.T) {
	theme := DefaultTheme()
	theme.Glyphs.Food = "*"
	theme.Colors.Food = "red"

	err := theme.Validate()
	testutil.AssertErrorContains(t, err, "glyphs.food")
	testutil.AssertErrorContains(t, err, "colors.food")
}

func TestLoadThemeFallback(t *testing.T) {
	theme, err := LoadTheme(filepath.Join(t.TempDir(), "nope.yaml"))
	testutil.AssertErrorContains(t, err, "failed to read theme")
	testutil.AssertEqual(t, "fallback theme", theme, DefaultTheme())

	path := filepath.Join(t.TempDir(), "mono.yaml")
	doc := "name: mono\nglyphs:\n  head: \"@@\"\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}
	theme, err = LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme() failed: %v", err)
	}
	testutil.AssertEqual(t, "name", theme.Name, "mono")
	testutil.AssertEqual(t, "head glyph", theme.Glyphs.Head, "@@")
	testutil.AssertEqual(t, "body glyph kept", theme.Glyphs.Body, "██")
}

func TestParseHex(t *testing.T) {
	r, g, b, ok := ParseHex("#32cd32")
	testutil.AssertEqual(t, "ok", ok, true)
	testutil.AssertEqual(t, "rgb", [3]uint8{r, g, b}, [3]uint8{50, 205, 50})

	_, _, _, ok = ParseHex("245")
	testutil.AssertEqual(t, "ansi is not hex", ok, false)
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		base     int
		step     int
		maxSpeed int
	}{
		{DifficultyNormal, 10, 2, 20},
		{DifficultyEasy, 6, 1, 16},
		{DifficultyHard, 14, 2, 24},
		{DifficultyFixed, 10, 0, 20},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, tc.preset)
			testutil.AssertEqual(t, "base", cfg.Rules.BaseSpeed, tc.base)
			testutil.AssertEqual(t, "step", cfg.Rules.SpeedStep, tc.step)
			testutil.AssertEqual(t, "max", cfg.Rules.MaxSpeed, tc.maxSpeed)
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s produced invalid rules: %v", tc.preset, err)
			}
		})
	}

	p, err := ParsePreset("")
	testutil.AssertEqual(t, "empty preset", p, DifficultyNormal)
	if err != nil {
		t.Errorf("ParsePreset(\"\") returned error: %v", err)
	}

	_, err = ParsePreset("insane")
	testutil.AssertErrorContains(t, err, "unknown difficulty")
}

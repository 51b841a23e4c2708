package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagRecord     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Space           - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Esc/Ctrl+C      - Quit

Difficulty options:
  easy   - Slower start, gentle speed-ups
  normal - Classic pace
  hard   - Fast start, higher cap
  fixed  - No speed progression

Without --difficulty a picker is shown first.

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --record
  snake play --config ./my-snake.yaml --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags. The root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	cmd.Flags().BoolVar(&flagRecord, "record", false, "Store the session so it can be replayed")
}

// settings is everything loaded from config files for one session.
type settings struct {
	cfg   config.SnakeConfig
	rules snake.Rules
	theme config.Theme
	hud   snake.HUDFunc
}

// loadSettings reads the config, applies the preset and the --fps override,
// and resolves the theme and HUD. A broken theme falls back to the default.
func loadSettings(preset config.DifficultyPreset) (settings, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return settings{}, err
	}
	config.ApplySnakePreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Rules.FrameRate = flagFPS
	}

	rules := snake.RulesFromConfig(cfg)
	if err := rules.Validate(); err != nil {
		return settings{}, fmt.Errorf("invalid rules: %w", err)
	}

	theme, err := config.LoadTheme(cfg.Theme)
	if err != nil {
		logger.Warn("using default theme", "error", err)
	}

	hud, err := tui.NewHUD(cfg.HUD.Format, rules.FrameRate)
	if err != nil {
		logger.Warn("invalid hud format, using default", "format", cfg.HUD.Format, "error", err)
		hud = snake.DefaultHUD
	}

	return settings{cfg: cfg, rules: rules, theme: theme, hud: hud}, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	width, height := terminalSize()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty == "" {
		picked, ok, pickErr := tui.RunDifficultySelector(width, height)
		if pickErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pickErr)
			os.Exit(1)
		}
		// User quit the picker
		if !ok {
			return
		}
		preset = picked
	}

	s, err := loadSettings(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.rules.FrameRate,
		Seed:     seed,
	}

	game := snake.NewGame(s.rules, s.theme)
	game.SetHUD(s.hud)
	game.Reset(cfg)

	var sound audio.Sink = audio.Nop{}
	if !flagMute {
		sound = audio.New(s.cfg.Audio, logger)
	}
	defer sound.Close()

	opts := tui.Options{Logger: logger, Sound: sound}
	if flagRecord {
		opts.Recorder = replay.NewRecorder(seed, string(preset), s.rules)
	}

	logger.Info("starting session", "difficulty", preset, "seed", seed, "grid", fmt.Sprintf("%dx%d", s.rules.GridW, s.rules.GridH))

	if err := tui.Run(game, cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.Recorder != nil {
		saveRecording(opts.Recorder.Recording())
	}
}

// saveRecording stores a finished session. Failures only warn; the game
// itself already ran.
func saveRecording(rec replay.Recording) {
	if rec.Frames == 0 {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open recordings database: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.SaveReplay(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save recording: %v\n", err)
		return
	}
	fmt.Printf("Saved recording %s (%d frames). Watch it with: snake replay %s\n", rec.ID, rec.Frames, rec.ID[:8])
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Watch a recorded session",
	Long: `Play back a session recorded with --record.

The id may be shortened to any unique prefix, as shown by 'snake replays'.
With --headless the recording is simulated without a screen and the final
state is printed.

Examples:
  snake replay 0a1b2c3d
  snake replay 0a1b --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Print the final state instead of opening the TUI")
}

func runReplay(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.ResolveID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake replays' to see stored recordings.")
		os.Exit(1)
	}

	rec, err := store.LoadReplay(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagHeadless {
		printSimulation(rec)
		return
	}

	if err := watch(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// watch plays a recording in the TUI. The keyboard only quits.
func watch(rec replay.Recording) error {
	width, height := terminalSize()

	theme := config.DefaultTheme()
	if cfg, err := config.LoadSnake(flagConfig); err == nil {
		if loaded, themeErr := config.LoadTheme(cfg.Theme); themeErr == nil {
			theme = loaded
		} else {
			logger.Warn("using default theme", "error", themeErr)
		}
	}

	game := replay.NewGame(rec, theme, width, height)

	// --fps changes playback speed only; the recording fixes the rules.
	tickRate := rec.Rules.FrameRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	logger.Info("watching recording", "id", rec.ID, "frames", rec.Frames, "seed", rec.Seed)

	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     rec.Seed,
	}, tui.Options{
		Logger: logger,
		Player: replay.NewPlayer(rec),
	})
}

// printSimulation runs a recording without a screen and prints the outcome.
func printSimulation(rec replay.Recording) {
	res := replay.Simulate(rec)
	final := res.Final

	fmt.Printf("Recording %s\n", rec.ID)
	fmt.Printf("  Difficulty: %s\n", rec.Difficulty)
	fmt.Printf("  Seed:       %d\n", rec.Seed)
	fmt.Printf("  Frames:     %d\n", rec.Frames)
	fmt.Printf("  Food eaten: %d\n", res.Eats)
	fmt.Printf("  Game overs: %d\n", res.GameOvers)
	fmt.Printf("  Final:      %s\n", final)
	fmt.Printf("  Length:     %d\n", final.Length())
}

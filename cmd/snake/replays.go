package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse recorded sessions",
	Long: `Browse recordings stored with 'snake play --record'.

Controls:
  Up/Down  - Move
  Enter    - Watch the selected recording
  D        - Delete the selected recording
  Q/Esc    - Quit

Examples:
  snake replays
  snake replays --db ./snake.db`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func runReplays(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := terminalSize()

	// Durations are shown at the configured frame rate.
	frameRate := config.DefaultSnakeConfig().Rules.FrameRate
	if cfg, cfgErr := config.LoadSnake(""); cfgErr == nil {
		frameRate = cfg.Rules.FrameRate
	}

	id, err := tui.RunReplayBrowser(store, frameRate, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if id == "" {
		return
	}

	rec, err := store.LoadReplay(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := watch(rec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package snake implements the snake game: a grid state machine (Machine)
// and the Game adapter the terminal platform drives frame by frame.
package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 1 // Rows above the board
	minCellW  = 1
)

// HUDFunc formats the status line drawn above the board.
type HUDFunc func(Snapshot) string

// Game adapts a Machine to the platform loop: it feeds input frames, tracks
// the frame count and draws into a core.Screen.
type Game struct {
	rules   Rules
	theme   config.Theme
	machine *Machine
	hud     HUDFunc
	tick    uint64

	screenW  int
	screenH  int
	tooSmall bool
}

// NewGame creates a game with the given rules and visual theme.
// Reset must be called before the first Step.
func NewGame(rules Rules, theme config.Theme) *Game {
	return &Game{
		rules: rules,
		theme: theme,
		hud:   DefaultHUD,
	}
}

// DefaultHUD renders the classic score line.
func DefaultHUD(s Snapshot) string {
	return fmt.Sprintf("Score: %d  Speed: %d", s.Score, s.Speed)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Rules returns the rules new machines are created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// SetHUD replaces the status line formatter. A nil formatter restores the default.
func (g *Game) SetHUD(f HUDFunc) {
	if f == nil {
		f = DefaultHUD
	}
	g.hud = f
}

// Reset starts a fresh machine seeded from cfg and adopts the screen size.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.machine = NewMachine(g.rules, cfg.Seed)
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records a new screen size without touching the simulation.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	reqW, reqH := g.RequiredSize()
	g.tooSmall = w < reqW || h < reqH
}

// RequiredSize is the smallest screen that fits the HUD and the bordered board.
func (g *Game) RequiredSize() (w, h int) {
	cellW := max(minCellW, g.theme.CellWidth())
	return g.rules.GridW*cellW + 2, g.rules.GridH + 2 + hudHeight
}

// TooSmall reports whether the last known screen cannot fit the board.
// The platform stops stepping while this is true.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// Step applies the frame's actions in order, then advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Actions() {
		g.machine.HandleInput(a)
	}
	events := g.machine.AdvanceTick()

	return core.StepResult{
		State:  g.State(),
		Events: events,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	status := g.machine.Status()
	return core.GameState{
		Score:    g.machine.score,
		GameOver: status == StatusOver,
		Paused:   status == StatusPaused,
	}
}

// Snapshot returns the current state including the frame count.
func (g *Game) Snapshot() Snapshot {
	if g.machine == nil {
		return Snapshot{}
	}
	s := g.machine.RenderState()
	s.Tick = g.tick
	return s
}

// DebugState returns a multi-line dump of the simulation for logs.
func (g *Game) DebugState() string {
	return g.Snapshot().Debug()
}

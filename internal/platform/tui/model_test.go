package tui

import (
	"io"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

type recordingSink struct {
	events []core.Event
}

func (s *recordingSink) Play(ev core.Event) { s.events = append(s.events, ev) }
func (s *recordingSink) Close() error       { return nil }

func newTestModel(t *testing.T, w, h int, opts Options) (Model, *snake.Game) {
	t.Helper()
	rules := snake.DefaultRules()
	game := snake.NewGame(rules, config.ASCIITheme())
	cfg := core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 42}
	game.Reset(cfg)
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return NewModel(game, cfg, opts), game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m = update(t, m, TickMsg(time.Now()))
	}
	return m
}

func TestModelStepsAndRecords(t *testing.T) {
	rec := replay.NewRecorder(42, "normal", snake.DefaultRules())
	m, game := newTestModel(t, 80, 40, Options{Recorder: rec})

	m = update(t, m, runeKey('s'))
	m = tick(t, m, 10)

	if got := game.Snapshot().Direction; got != snake.DirDown {
		t.Errorf("Expected direction down, got %v", got)
	}
	if rec.Frames() != 10 {
		t.Errorf("Expected 10 recorded frames, got %d", rec.Frames())
	}
	r := rec.Recording()
	if len(r.Inputs) != 1 || r.Inputs[0].Frame != 1 || r.Inputs[0].Actions[0] != core.ActionDown {
		t.Errorf("Unexpected recorded inputs %+v", r.Inputs)
	}
}

func TestModelHoldsWhenTooSmall(t *testing.T) {
	rec := replay.NewRecorder(42, "normal", snake.DefaultRules())
	m, game := newTestModel(t, 30, 10, Options{Recorder: rec})

	m = tick(t, m, 20)
	if game.Snapshot().Tick != 0 || rec.Frames() != 0 {
		t.Error("Simulation should hold while the window is too small")
	}
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("Expected too-small message")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	m = tick(t, m, 3)
	if game.Snapshot().Tick != 3 {
		t.Errorf("Expected 3 frames after resize, got %d", game.Snapshot().Tick)
	}
}

func TestModelDispatchesEvents(t *testing.T) {
	sink := &recordingSink{}
	m, game := newTestModel(t, 80, 40, Options{Sound: sink})

	// Steer up into the top wall: 15 moves from the center row.
	m = update(t, m, runeKey('w'))
	m = tick(t, m, 16*6)

	if !game.State().GameOver {
		t.Fatalf("Expected game over, got %s", game.Snapshot())
	}
	if !m.State().GameOver {
		t.Error("Model should track game over")
	}

	overs := 0
	for _, ev := range sink.events {
		if ev == core.EventGameOver {
			overs++
		}
	}
	if overs != 1 {
		t.Errorf("Expected one game over sound, got %d (%v)", overs, sink.events)
	}
}

func TestModelReplayIgnoresKeys(t *testing.T) {
	rec := replay.Recording{
		Seed:   42,
		Rules:  snake.DefaultRules(),
		Frames: 12,
		Inputs: []replay.InputEvent{{Frame: 1, Actions: []core.Action{core.ActionDown}}},
	}
	game := replay.NewGame(rec, config.ASCIITheme(), 80, 40)
	player := replay.NewPlayer(rec)
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60}, Options{
		Logger: log.New(io.Discard),
		Player: player,
	})

	m = update(t, m, runeKey('a'))
	m = tick(t, m, 20)

	s := game.Snapshot()
	if s.Direction != snake.DirDown {
		t.Errorf("Replay input should win over keys, got %v", s.Direction)
	}
	if s.Tick != 12 || !player.Done() {
		t.Errorf("Expected replay to stop at frame 12, tick %d", s.Tick)
	}
	if !strings.Contains(m.View(), "finished") {
		t.Error("Footer should report the finished replay")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModel(t, 80, 40, Options{ScreenshotDir: dir})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.lastShot == "" {
		t.Fatal("Screenshot path not recorded")
	}
	data, err := os.ReadFile(m.lastShot)
	if err != nil {
		t.Fatalf("Screenshot not written: %v", err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("Screenshot should contain the HUD")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, 80, 40, Options{})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View should be empty after quitting")
	}
}

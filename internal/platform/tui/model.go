package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/audio"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// footerHeight is the row reserved below the game for key help.
const footerHeight = 1

// Options are the optional collaborators of a session.
type Options struct {
	Logger   *log.Logger
	Sound    audio.Sink       // nil means silent
	Recorder *replay.Recorder // Records every stepped frame when set
	Player   *replay.Player   // Drives the game from a recording instead of the keyboard
	// ScreenshotDir defaults to ~/.arcade/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for running a snake session.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	replayDone bool
	overLogged bool // Whether the current game over has been logged
	lastShot   string
}

// NewModel creates a model for an already reset game.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.Rules().FrameRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.Sound == nil {
		opts.Sound = audio.Nop{}
	}

	h := help.New()
	h.ShowAll = false

	screenH := max(0, cfg.ScreenH-footerHeight)
	game.Resize(cfg.ScreenW, screenH)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, screenH),
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	// A replay ignores everything except quitting.
	if m.opts.Player != nil {
		if _, isQuit := m.keys.MapKey(msg); isQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adopts the new terminal size. The simulation is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	h := max(0, msg.Height-footerHeight)
	m.screen.Resize(msg.Width, h)
	m.game.Resize(msg.Width, h)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The board does not fit: hold the simulation until it does.
	if m.game.TooSmall() || m.replayDone {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	in := m.inputFrame
	if m.opts.Player != nil {
		next, ok := m.opts.Player.Next()
		if !ok {
			m.replayDone = true
			return m, tickCmd(m.config.TickRate)
		}
		in = next
	}

	result := m.game.Step(in)
	if m.opts.Recorder != nil {
		m.opts.Recorder.Record(in)
	}
	m.gameState = result.State

	for _, ev := range result.Events {
		m.opts.Sound.Play(ev)
	}

	if m.gameState.GameOver && !m.overLogged {
		m.opts.Logger.Info("game over", "score", m.gameState.Score)
		m.opts.Logger.Debug("final state", "state", m.game.DebugState())
		m.overLogged = true
	} else if !m.gameState.GameOver {
		m.overLogged = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.opts.Logger.Warn("cannot locate home for screenshot", "error", err)
			return
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.lastShot = path
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// footer returns the help line, or the replay status.
func (m Model) footer() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if p := m.opts.Player; p != nil {
		status := fmt.Sprintf("replay %d/%d", p.Frame(), p.Recording().Frames)
		if m.replayDone {
			status += " - finished"
		}
		return style.Render(status + "  •  q quit")
	}
	return style.Render(m.help.View(m.keys.Keys()))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(game *snake.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

package snake

import (
	"fmt"
	"math/rand"

	"github.com/pixil98/go-errors"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the machine's lifecycle state.
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Rules are the constants the machine runs under. They are fixed for the
// lifetime of a Machine.
type Rules struct {
	GridW          int `yaml:"grid_w"`
	GridH          int `yaml:"grid_h"`
	FrameRate      int `yaml:"frame_rate"` // frames per second driving AdvanceTick
	BaseSpeed      int `yaml:"base_speed"` // moves per second after Reset
	SpeedStep      int `yaml:"speed_step"`
	MaxSpeed       int `yaml:"max_speed"`
	SpeedThreshold int `yaml:"speed_threshold"` // speed-up when score is a multiple of this
	FoodPoints     int `yaml:"food_points"`
}

// DefaultRules are the classic 40x30 board at 60 fps.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultSnakeConfig())
}

// RulesFromConfig extracts machine rules from a loaded configuration.
func RulesFromConfig(cfg config.SnakeConfig) Rules {
	return Rules{
		GridW:          cfg.Grid.Width(),
		GridH:          cfg.Grid.Height(),
		FrameRate:      cfg.Rules.FrameRate,
		BaseSpeed:      cfg.Rules.BaseSpeed,
		SpeedStep:      cfg.Rules.SpeedStep,
		MaxSpeed:       cfg.Rules.MaxSpeed,
		SpeedThreshold: cfg.Rules.SpeedThreshold,
		FoodPoints:     cfg.Rules.FoodPoints,
	}
}

// Validate rejects rules the machine cannot run under.
func (r Rules) Validate() error {
	el := errors.NewErrorList()

	if r.GridW < 2 || r.GridH < 2 {
		el.Add(fmt.Errorf("grid %dx%d is smaller than 2x2", r.GridW, r.GridH))
	}
	if r.FrameRate < 1 || r.BaseSpeed < 1 {
		el.Add(fmt.Errorf("frame rate and base speed must be positive"))
	}
	if r.MaxSpeed < r.BaseSpeed || r.SpeedStep < 0 {
		el.Add(fmt.Errorf("speed progression %d+%d up to %d is invalid", r.BaseSpeed, r.SpeedStep, r.MaxSpeed))
	}
	if r.SpeedThreshold < 1 || r.FoodPoints < 1 {
		el.Add(fmt.Errorf("speed threshold and food points must be positive"))
	}

	return el.Err()
}

// Machine is the snake state machine. It owns all simulation state and
// performs no I/O: side effects come back from AdvanceTick as events.
// A Machine is not safe for concurrent use; the game loop owns it.
type Machine struct {
	rules Rules
	rng   *rand.Rand

	snake           []core.Point // Head at index 0
	direction       Direction
	directionLocked bool // a direction change was accepted since the last move
	food            core.Point
	hasFood         bool
	score           int
	speed           int
	status          Status
	ticksSinceMove  int
	moves           uint64
}

// NewMachine creates a machine in its initial Running state.
func NewMachine(rules Rules, seed int64) *Machine {
	m := &Machine{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
	m.Reset()
	return m
}

// Reset restores the initial state: one segment at the grid center heading
// right, zero score, base speed, fresh food.
func (m *Machine) Reset() {
	m.snake = []core.Point{{X: m.rules.GridW / 2, Y: m.rules.GridH / 2}}
	m.direction = DirRight
	m.directionLocked = false
	m.score = 0
	m.speed = m.rules.BaseSpeed
	m.status = StatusRunning
	m.ticksSinceMove = 0
	m.moves = 0
	m.placeFood()
}

// HandleInput applies one input action. Inputs that do not apply to the
// current state are ignored.
func (m *Machine) HandleInput(a core.Action) {
	if dir, ok := directionFor(a); ok {
		m.turn(dir)
		return
	}

	switch a {
	case core.ActionPause:
		switch m.status {
		case StatusRunning:
			m.status = StatusPaused
		case StatusPaused:
			m.status = StatusRunning
		}
	case core.ActionRestart:
		if m.status == StatusOver {
			m.Reset()
		}
	}
}

// turn accepts at most one direction change per move and never a reversal.
func (m *Machine) turn(dir Direction) {
	if m.status == StatusOver || m.directionLocked {
		return
	}
	if dir.Opposite(m.direction) {
		return
	}
	m.direction = dir
	m.directionLocked = true
}

// AdvanceTick advances one frame. The snake moves once every
// FrameRate/Speed frames; events raised by that move are returned.
func (m *Machine) AdvanceTick() []core.Event {
	if m.status != StatusRunning {
		return nil
	}

	m.ticksSinceMove++
	if m.ticksSinceMove < m.moveInterval() {
		return nil
	}
	m.ticksSinceMove = 0

	return m.move()
}

// moveInterval is the number of frames between moves at the current speed.
func (m *Machine) moveInterval() int {
	if m.speed <= 0 {
		return max(1, m.rules.FrameRate)
	}
	return max(1, m.rules.FrameRate/m.speed)
}

// move performs one movement step.
func (m *Machine) move() []core.Event {
	var events []core.Event
	m.moves++

	newHead := m.snake[0].Add(m.direction.Delta())
	m.snake = append(m.snake, core.Point{})
	copy(m.snake[1:], m.snake[:len(m.snake)-1])
	m.snake[0] = newHead

	m.directionLocked = false

	if m.hasFood && newHead == m.food {
		m.score += m.rules.FoodPoints
		events = append(events, core.EventEat)
		m.placeFood()
		if m.score%m.rules.SpeedThreshold == 0 && m.speed < m.rules.MaxSpeed {
			m.speed = min(m.speed+m.rules.SpeedStep, m.rules.MaxSpeed)
		}
	} else {
		m.snake = m.snake[:len(m.snake)-1]
	}

	if !m.inBounds(newHead) {
		m.status = StatusOver
		return append(events, core.EventGameOver)
	}

	// The body is compared after the grow/shrink decision: a tail that just
	// moved away no longer counts.
	for _, seg := range m.snake[1:] {
		if seg == newHead {
			m.status = StatusOver
			return append(events, core.EventGameOver)
		}
	}

	return events
}

func (m *Machine) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < m.rules.GridW && p.Y >= 0 && p.Y < m.rules.GridH
}

// Status returns the current lifecycle state.
func (m *Machine) Status() Status {
	return m.status
}

// Rules returns the rules the machine was created with.
func (m *Machine) Rules() Rules {
	return m.rules
}

// RenderState returns a read-only snapshot of the current state.
func (m *Machine) RenderState() Snapshot {
	segments := make([]core.Point, len(m.snake))
	copy(segments, m.snake)

	return Snapshot{
		Segments:  segments,
		Food:      m.food,
		HasFood:   m.hasFood,
		Score:     m.score,
		Speed:     m.speed,
		Status:    m.status,
		Direction: m.direction,
		GridW:     m.rules.GridW,
		GridH:     m.rules.GridH,
		Moves:     m.moves,
	}
}

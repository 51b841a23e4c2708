// Package replay records the per-frame input of a snake session and plays
// it back. A recording holds only the seed, the rules and the actions; the
// same inputs fed to a machine with the same seed reproduce the session.
package replay

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// InputEvent is the ordered list of actions applied on one frame.
// Frames are numbered from 1, matching the game tick after the step.
type InputEvent struct {
	Frame   uint64        `yaml:"frame"`
	Actions []core.Action `yaml:"actions,flow"`
}

// Recording is a complete, replayable session.
type Recording struct {
	ID         string       `yaml:"id"`
	Seed       int64        `yaml:"seed"`
	Difficulty string       `yaml:"difficulty"`
	Rules      snake.Rules  `yaml:"rules"`
	Frames     uint64       `yaml:"frames"`
	Inputs     []InputEvent `yaml:"inputs"`
	CreatedAt  time.Time    `yaml:"created_at"`
}

// Marshal encodes a recording as YAML.
func Marshal(rec Recording) ([]byte, error) {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode recording: %w", err)
	}
	return data, nil
}

// Unmarshal decodes and validates a YAML recording.
func Unmarshal(data []byte) (Recording, error) {
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("replay: cannot decode recording: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return Recording{}, err
	}
	return rec, nil
}

// Validate checks the rules and that input frames are ordered and in range.
func (r Recording) Validate() error {
	if err := r.Rules.Validate(); err != nil {
		return fmt.Errorf("replay: invalid rules: %w", err)
	}
	var last uint64
	for _, ev := range r.Inputs {
		if ev.Frame == 0 || ev.Frame <= last || ev.Frame > r.Frames {
			return fmt.Errorf("replay: input frame %d out of order or range (frames=%d)", ev.Frame, r.Frames)
		}
		last = ev.Frame
	}
	return nil
}

// Recorder collects the frames of a live session.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording for a game seeded with seed.
func NewRecorder(seed int64, difficulty string, rules snake.Rules) *Recorder {
	return &Recorder{
		rec: Recording{
			ID:         uuid.New().String(),
			Seed:       seed,
			Difficulty: difficulty,
			Rules:      rules,
		},
	}
}

// Record captures the input of one stepped frame. It must be called exactly
// once per Game.Step; empty frames only advance the frame count.
func (r *Recorder) Record(in core.InputFrame) {
	r.rec.Frames++
	if in.Empty() {
		return
	}
	r.rec.Inputs = append(r.rec.Inputs, InputEvent{
		Frame:   r.rec.Frames,
		Actions: in.Actions(),
	})
}

// Frames returns the number of frames recorded so far.
func (r *Recorder) Frames() uint64 {
	return r.rec.Frames
}

// Recording returns the session so far, stamped with the current time.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Inputs = append([]InputEvent(nil), r.rec.Inputs...)
	rec.CreatedAt = time.Now().UTC().Truncate(time.Second)
	return rec
}

// Player yields the recorded input frame by frame.
type Player struct {
	rec   Recording
	frame uint64
	next  int // Index into rec.Inputs
}

// NewPlayer creates a player positioned before the first frame.
func NewPlayer(rec Recording) *Player {
	return &Player{rec: rec}
}

// Next returns the input for the next frame. ok is false once every
// recorded frame has been played.
func (p *Player) Next() (in core.InputFrame, ok bool) {
	if p.frame >= p.rec.Frames {
		return core.InputFrame{}, false
	}
	p.frame++

	in = core.NewInputFrame()
	if p.next < len(p.rec.Inputs) && p.rec.Inputs[p.next].Frame == p.frame {
		for _, a := range p.rec.Inputs[p.next].Actions {
			in.Set(a)
		}
		p.next++
	}
	return in, true
}

// Frame returns the number of frames played so far.
func (p *Player) Frame() uint64 {
	return p.frame
}

// Done reports whether all frames have been played.
func (p *Player) Done() bool {
	return p.frame >= p.rec.Frames
}

// Recording returns the recording being played.
func (p *Player) Recording() Recording {
	return p.rec
}

// Package audio plays the sound effects raised by the game as events.
// Playback is fire-and-forget: Play never blocks the game loop, and any
// missing asset or device degrades to a synthesized tone or to silence.
package audio

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// queueSize bounds pending sounds; extra events are dropped.
const queueSize = 8

// Sink receives game events and turns them into sound.
type Sink interface {
	Play(ev core.Event)
	Close() error
}

// Nop is a silent Sink.
type Nop struct{}

func (Nop) Play(core.Event) {}
func (Nop) Close() error    { return nil }

// Output starts playback of one PCM clip. Implementations may block until
// the clip is done; the Dispatcher calls them off the game loop.
type Output interface {
	PlayPCM(pcm []byte)
}

// Dispatcher maps events to clips and hands them to an Output from a
// background goroutine.
type Dispatcher struct {
	sounds map[core.Event][]byte
	queue  chan []byte
	out    Output

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewDispatcher starts a dispatcher. Events without a clip are ignored.
func NewDispatcher(out Output, sounds map[core.Event][]byte) *Dispatcher {
	d := &Dispatcher{
		sounds: sounds,
		queue:  make(chan []byte, queueSize),
		out:    out,
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for pcm := range d.queue {
		d.out.PlayPCM(pcm)
	}
}

// Play queues the clip for ev without blocking. When the queue is full the
// sound is dropped so the game keeps its pace.
func (d *Dispatcher) Play(ev core.Event) {
	pcm, ok := d.sounds[ev]
	if !ok || len(pcm) == 0 {
		return
	}
	select {
	case d.queue <- pcm:
	default:
	}
}

// Close stops accepting sounds and waits for the queue to drain.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
	return nil
}

// fallback tones when an asset is missing, in Hz and seconds.
var fallbackTones = map[core.Event][2]float64{
	core.EventEat:      {880, 0.08},
	core.EventGameOver: {220, 0.5},
}

// LoadSounds resolves the configured assets. Files that cannot be read or
// decoded are replaced by a synthesized tone and logged.
func LoadSounds(cfg config.AudioConfig, logger *log.Logger) map[core.Event][]byte {
	files := map[core.Event]string{
		core.EventEat:      cfg.EatSound,
		core.EventGameOver: cfg.GameOverSound,
	}

	sounds := make(map[core.Event][]byte, len(files))
	for ev, name := range files {
		pcm := loadFirst(name, logger)
		if pcm == nil {
			tone := fallbackTones[ev]
			pcm = Beep(tone[0], tone[1])
		}
		scaleVolume(pcm, cfg.Volume)
		sounds[ev] = pcm
	}
	return sounds
}

func loadFirst(name string, logger *log.Logger) []byte {
	if name == "" {
		return nil
	}
	var lastErr error
	for _, path := range config.SoundSearchPaths(name) {
		pcm, err := LoadWAV(path)
		if err == nil {
			logger.Debug("loaded sound", "path", path)
			return pcm
		}
		lastErr = err
	}
	logger.Warn("sound asset unavailable, using synthesized tone", "sound", name, "error", lastErr)
	return nil
}

// New builds the audio sink for a session. Disabled audio or a missing
// output device yields a silent sink.
func New(cfg config.AudioConfig, logger *log.Logger) Sink {
	if !cfg.Enabled {
		logger.Debug("audio disabled")
		return Nop{}
	}

	dev, err := OpenDevice()
	if err != nil {
		logger.Warn("audio device unavailable, continuing without sound", "error", err)
		return Nop{}
	}

	return NewDispatcher(dev, LoadSounds(cfg, logger))
}

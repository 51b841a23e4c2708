package audio

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func writeWAV(t *testing.T, path string, rate, channels int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeWAVResamplesMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eat.wav")
	data := make([]int, 100)
	for i := range data {
		data[i] = 16384
	}
	writeWAV(t, path, 22050, 1, data)

	pcm, err := LoadWAV(path)
	if err != nil {
		t.Fatalf("LoadWAV() failed: %v", err)
	}

	if got := len(pcm) / frameBytes; got != 200 {
		t.Errorf("Expected 200 frames at 44.1kHz, got %d", got)
	}
	if l, r := readF32(pcm), readF32(pcm[4:]); l != 0.5 || r != 0.5 {
		t.Errorf("Expected 0.5 on both channels, got %v/%v", l, r)
	}
}

func TestDecodeWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(path, []byte("definitely not RIFF"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadWAV(path); err == nil {
		t.Error("Expected an error for a non-WAV file")
	}
	if _, err := LoadWAV(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestBeep(t *testing.T) {
	pcm := Beep(440, 0.1)
	if got := len(pcm) / frameBytes; got != 4410 {
		t.Errorf("Expected 4410 frames, got %d", got)
	}
	for i := 0; i < len(pcm); i += 4 {
		if v := readF32(pcm[i:]); v < -1 || v > 1 {
			t.Fatalf("Sample %d out of range: %v", i/4, v)
		}
	}
}

func TestLoadSoundsFallsBack(t *testing.T) {
	logger := log.New(io.Discard)
	cfg := config.AudioConfig{
		Enabled:       true,
		EatSound:      filepath.Join(t.TempDir(), "nope.wav"),
		GameOverSound: "",
		Volume:        1,
	}

	sounds := LoadSounds(cfg, logger)
	for _, ev := range []core.Event{core.EventEat, core.EventGameOver} {
		if len(sounds[ev]) == 0 {
			t.Errorf("Expected synthesized fallback for %s", ev)
		}
	}
}

func TestLoadSoundsUsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "over.wav")
	writeWAV(t, path, 44100, 2, []int{1000, -1000, 2000, -2000})

	sounds := LoadSounds(config.AudioConfig{GameOverSound: path, Volume: 1}, log.New(io.Discard))
	if got := len(sounds[core.EventGameOver]) / frameBytes; got != 2 {
		t.Errorf("Expected the 2-frame file, got %d frames", got)
	}
}

func TestScaleVolume(t *testing.T) {
	pcm := make([]byte, frameBytes)
	putStereoF32(pcm, 0, 0.8, -0.4)
	scaleVolume(pcm, 0.5)

	if l, r := readF32(pcm), readF32(pcm[4:]); l != 0.4 || r != -0.2 {
		t.Errorf("Expected 0.4/-0.2, got %v/%v", l, r)
	}
}

// blockingOutput plays nothing until released.
type blockingOutput struct {
	mu      sync.Mutex
	release chan struct{}
	played  int
}

func (b *blockingOutput) PlayPCM([]byte) {
	<-b.release
	b.mu.Lock()
	b.played++
	b.mu.Unlock()
}

func TestDispatcherNeverBlocks(t *testing.T) {
	out := &blockingOutput{release: make(chan struct{})}
	d := NewDispatcher(out, map[core.Event][]byte{core.EventEat: {1}})

	done := make(chan struct{})
	go func() {
		for range queueSize * 10 {
			d.Play(core.EventEat)
		}
		d.Play(core.EventGameOver) // No clip: ignored
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Play blocked on a stalled output")
	}

	close(out.release)
	if err := d.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	out.mu.Lock()
	defer out.mu.Unlock()
	if out.played == 0 || out.played > queueSize+1 {
		t.Errorf("Expected between 1 and %d plays, got %d", queueSize+1, out.played)
	}
}

func TestNopSink(t *testing.T) {
	var s Sink = Nop{}
	s.Play(core.EventEat)
	if err := s.Close(); err != nil {
		t.Errorf("Nop.Close() = %v", err)
	}
}

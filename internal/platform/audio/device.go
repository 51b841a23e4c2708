package audio

import (
	"bytes"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

// Device is the system audio output.
type Device struct {
	ctx   *oto.Context
	ready chan struct{}
}

// OpenDevice opens the default output at 44.1kHz stereo float32.
func OpenDevice() (*Device, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Device{ctx: ctx, ready: ready}, nil
}

// PlayPCM starts the clip and returns immediately. Clips arriving before the
// device is ready are dropped.
func (d *Device) PlayPCM(pcm []byte) {
	select {
	case <-d.ready:
	default:
		return
	}

	go func() {
		player := d.ctx.NewPlayer(bytes.NewReader(pcm))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

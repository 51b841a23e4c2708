package audio

import (
	"fmt"
	"io"
	"math"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // float32 LE, two channels
)

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, left, right float64) {
	l := math.Float32bits(float32(left))
	r := math.Float32bits(float32(right))
	buf[i*8] = byte(l)
	buf[i*8+1] = byte(l >> 8)
	buf[i*8+2] = byte(l >> 16)
	buf[i*8+3] = byte(l >> 24)
	buf[i*8+4] = byte(r)
	buf[i*8+5] = byte(r >> 8)
	buf[i*8+6] = byte(r >> 16)
	buf[i*8+7] = byte(r >> 24)
}

// LoadWAV reads a WAV file and converts it to device PCM.
func LoadWAV(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	pcm, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("audio: %s: %w", path, err)
	}
	return pcm, nil
}

// DecodeWAV decodes integer PCM WAV data of any rate and channel count into
// 44.1kHz stereo float32 LE, the format the output device is opened with.
func DecodeWAV(r io.ReadSeeker) ([]byte, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file")
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("cannot decode PCM: %w", err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 || buf.Format.SampleRate < 1 {
		return nil, fmt.Errorf("missing format information")
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(d.BitDepth)
	}
	if bitDepth < 8 || bitDepth > 32 {
		return nil, fmt.Errorf("unsupported bit depth %d", bitDepth)
	}

	return convert(buf, bitDepth), nil
}

// convert normalizes, remixes to stereo and linearly resamples to SampleRate.
func convert(buf *goaudio.IntBuffer, bitDepth int) []byte {
	channels := buf.Format.NumChannels
	srcFrames := len(buf.Data) / channels
	if srcFrames == 0 {
		return nil
	}

	scale := float64(int64(1) << (bitDepth - 1))
	sample := func(frame, ch int) float64 {
		if ch >= channels {
			ch = channels - 1
		}
		v := float64(buf.Data[frame*channels+ch])
		if bitDepth == 8 {
			// 8-bit WAV is unsigned.
			v -= 128
		}
		return v / scale
	}

	ratio := float64(buf.Format.SampleRate) / SampleRate
	dstFrames := int(float64(srcFrames) / ratio)
	out := make([]byte, dstFrames*frameBytes)

	for i := range dstFrames {
		pos := float64(i) * ratio
		j := int(pos)
		frac := pos - float64(j)
		k := min(j+1, srcFrames-1)

		left := sample(j, 0)*(1-frac) + sample(k, 0)*frac
		right := sample(j, 1)*(1-frac) + sample(k, 1)*frac
		putStereoF32(out, i, clamp(left), clamp(right))
	}
	return out
}

// Beep synthesizes a decaying sine tone.
func Beep(freq float64, dur float64) []byte {
	n := int(float64(SampleRate) * dur)
	buf := make([]byte, n*frameBytes)
	for i := range n {
		t := float64(i) / SampleRate
		envelope := math.Exp(-3 * t / dur)
		v := math.Sin(2*math.Pi*freq*t) * 0.25 * envelope
		putStereoF32(buf, i, v, v)
	}
	return buf
}

// scaleVolume multiplies every sample by gain in place.
func scaleVolume(pcm []byte, gain float64) {
	if gain == 1 {
		return
	}
	for i := 0; i+8 <= len(pcm); i += 8 {
		frame := i / 8
		l := readF32(pcm[i:])
		r := readF32(pcm[i+4:])
		putStereoF32(pcm, frame, clamp(float64(l)*gain), clamp(float64(r)*gain))
	}
}

func readF32(b []byte) float32 {
	return math.Float32frombits(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
}

func clamp(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

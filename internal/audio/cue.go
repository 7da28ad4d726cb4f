package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// CueFormat is the format of rendered cue tracks
var CueFormat = beep.Format{
	SampleRate:  beep.SampleRate(44100),
	NumChannels: 2,
	Precision:   2,
}

const cueLength = 150 * time.Millisecond

// Tone pitch per cue category
const (
	rotationFreq = 440.0
	scaleFreq    = 660.0
	particleFreq = 880.0
)

// ToneGenerator produces a short sine blip with exponential decay
type ToneGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewToneGenerator creates a blip of the given pitch and length
func NewToneGenerator(sr beep.SampleRate, freq float64, length time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(length),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.samples)

		// Envelope: 5ms attack, exponential tail
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-5*progress)
		sample := 0.3 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// CueTrack mixes a blip for every trigger into a stream of exactly duration
func CueTrack(triggers CueTriggers, duration float64, sr beep.SampleRate) beep.Streamer {
	mixer := &beep.Mixer{}

	add := func(times []float64, freq float64) {
		for _, at := range times {
			if at < 0 || at >= duration {
				continue
			}
			offset := sr.N(secondsToDuration(at))
			mixer.Add(beep.Seq(
				beep.Silence(offset),
				NewToneGenerator(sr, freq, cueLength),
			))
		}
	}
	add(triggers.Rotation, rotationFreq)
	add(triggers.Scale, scaleFreq)
	add(triggers.Particle, particleFreq)

	return beep.Take(sr.N(secondsToDuration(duration)), mixer)
}

// WriteCueTrack renders the cue track to a WAV file at path
func WriteCueTrack(path string, triggers CueTriggers, duration float64) error {
	if duration <= 0 {
		return fmt.Errorf("cue track duration must be > 0, got %g", duration)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	stream := CueTrack(triggers, duration, CueFormat.SampleRate)
	if err := wav.Encode(f, stream, CueFormat); err != nil {
		f.Close()
		return fmt.Errorf("encode cue track: %w", err)
	}
	return f.Close()
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

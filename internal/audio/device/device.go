// Package device plays audio previews on the default output device. It is
// kept apart from package audio because the speaker backend needs the
// platform sound libraries at build time.
package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/ivlev/logo2video/internal/audio"
)

// Player implements audio.Player on the speaker. The speaker is initialized
// on first use.
type Player struct {
	rate    beep.SampleRate
	once    sync.Once
	initErr error
}

// NewPlayer creates a player mixing at 48kHz
func NewPlayer() *Player {
	return &Player{rate: beep.SampleRate(48000)}
}

func (p *Player) Play(path string) (audio.Handle, error) {
	p.once.Do(func() {
		p.initErr = speaker.Init(p.rate, p.rate.N(100*time.Millisecond))
	})
	if p.initErr != nil {
		return nil, fmt.Errorf("speaker init: %w", p.initErr)
	}

	stream, format, err := audio.Decode(path)
	if err != nil {
		return nil, err
	}

	var s beep.Streamer = stream
	if format.SampleRate != p.rate {
		s = beep.Resample(4, format.SampleRate, p.rate, stream)
	}

	ctrl := &beep.Ctrl{Streamer: s}
	speaker.Play(ctrl)

	return &handle{ctrl: ctrl, stream: stream}, nil
}

type handle struct {
	ctrl   *beep.Ctrl
	stream beep.StreamSeekCloser
	once   sync.Once
	err    error
}

func (h *handle) Stop() error {
	h.once.Do(func() {
		speaker.Lock()
		h.ctrl.Paused = true
		h.ctrl.Streamer = nil
		speaker.Unlock()
		h.err = h.stream.Close()
	})
	return h.err
}

package session

import (
	"math"
	"sync"
)

// Playback drives the playhead: play/pause/seek/reset plus Advance, which a
// render loop calls with the wall-clock time elapsed since the last tick.
type Playback struct {
	mu       sync.Mutex
	duration float64
	current  float64
	playing  bool
}

// NewPlayback creates a stopped playhead at zero
func NewPlayback(duration float64) *Playback {
	return &Playback{duration: duration}
}

func (p *Playback) Play() {
	p.mu.Lock()
	if p.current < p.duration {
		p.playing = true
	}
	p.mu.Unlock()
}

func (p *Playback) Pause() {
	p.mu.Lock()
	p.playing = false
	p.mu.Unlock()
}

// Seek moves the playhead, clamped to [0, duration]
func (p *Playback) Seek(time float64) {
	p.mu.Lock()
	p.current = clamp(time, 0, p.duration)
	p.mu.Unlock()
}

// Reset stops playback and rewinds to zero
func (p *Playback) Reset() {
	p.mu.Lock()
	p.current = 0
	p.playing = false
	p.mu.Unlock()
}

// SetDuration changes the timeline length and pulls the playhead inside it
func (p *Playback) SetDuration(duration float64) {
	p.mu.Lock()
	p.duration = math.Max(0, duration)
	p.current = clamp(p.current, 0, p.duration)
	p.mu.Unlock()
}

// Advance moves a playing playhead forward by dt seconds. Reaching the end
// stops playback at exactly duration. It returns the new playhead time.
func (p *Playback) Advance(dt float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.playing || dt <= 0 {
		return p.current
	}

	p.current += dt
	if p.current >= p.duration {
		p.current = p.duration
		p.playing = false
	}
	return p.current
}

func (p *Playback) Current() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Playback) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

func (p *Playback) Duration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

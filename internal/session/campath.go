package session

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ivlev/logo2video/internal/camera"
)

// RecordingState tells whether camera moves are being captured
type RecordingState string

const (
	Idle      RecordingState = "idle"
	Recording RecordingState = "recording"
)

// CameraPath is the session-owned list of camera keyframes, kept in time order
type CameraPath struct {
	mu        sync.RWMutex
	keyframes []camera.Keyframe
	state     RecordingState
	selected  string
	ids       *IDGenerator
}

// NewCameraPath creates an idle path seeded with existing keyframes
func NewCameraPath(initial []camera.Keyframe) *CameraPath {
	return &CameraPath{
		keyframes: camera.Sorted(initial),
		state:     Idle,
		ids:       NewIDGenerator("cam-kf"),
	}
}

func (p *CameraPath) StartRecording() {
	p.mu.Lock()
	p.state = Recording
	p.mu.Unlock()
}

func (p *CameraPath) StopRecording() {
	p.mu.Lock()
	p.state = Idle
	p.mu.Unlock()
}

func (p *CameraPath) State() RecordingState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Add inserts a keyframe at time with the given pose and returns its id
func (p *CameraPath) Add(time float64, pose camera.Pose) (string, error) {
	if time < 0 {
		return "", fmt.Errorf("negative camera keyframe time %g", time)
	}

	kf := camera.Keyframe{ID: p.ids.Next(), Time: time, Pose: pose}

	p.mu.Lock()
	p.keyframes = camera.Sorted(append(p.keyframes, kf))
	p.mu.Unlock()

	return kf.ID, nil
}

// Update edits the keyframe with the given id and restores time order
func (p *CameraPath) Update(id string, edit func(*camera.Keyframe)) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.keyframes {
		if p.keyframes[i].ID != id {
			continue
		}
		kf := p.keyframes[i]
		edit(&kf)
		kf.ID = id
		if kf.Time < 0 {
			return fmt.Errorf("camera keyframe %s: negative time %g", id, kf.Time)
		}
		p.keyframes[i] = kf
		sort.SliceStable(p.keyframes, func(a, b int) bool {
			return p.keyframes[a].Time < p.keyframes[b].Time
		})
		return nil
	}
	return fmt.Errorf("%w: %s", ErrKeyframeNotFound, id)
}

// Remove deletes a keyframe, clearing the selection if it pointed at it
func (p *CameraPath) Remove(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.keyframes {
		if p.keyframes[i].ID == id {
			p.keyframes = append(p.keyframes[:i], p.keyframes[i+1:]...)
			if p.selected == id {
				p.selected = ""
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrKeyframeNotFound, id)
}

// Clear drops the whole path and the selection
func (p *CameraPath) Clear() {
	p.mu.Lock()
	p.keyframes = nil
	p.selected = ""
	p.mu.Unlock()
}

// Select marks a keyframe as selected; an empty id clears the selection
func (p *CameraPath) Select(id string) {
	p.mu.Lock()
	p.selected = id
	p.mu.Unlock()
}

func (p *CameraPath) Selected() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.selected
}

// ApplyPreset replaces the path with generated keyframes under fresh ids
func (p *CameraPath) ApplyPreset(preset camera.Preset, opts camera.PresetOptions) {
	generated := preset(opts)
	for i := range generated {
		generated[i].ID = p.ids.Next()
	}

	p.mu.Lock()
	p.keyframes = camera.Sorted(generated)
	p.selected = ""
	p.mu.Unlock()
}

// Snapshot returns a copy of the keyframes in time order
func (p *CameraPath) Snapshot() []camera.Keyframe {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]camera.Keyframe, len(p.keyframes))
	copy(out, p.keyframes)
	return out
}

// PoseAt interpolates the path at time
func (p *CameraPath) PoseAt(time float64) (camera.Pose, bool) {
	return camera.Interpolate(p.Snapshot(), time)
}

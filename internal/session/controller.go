package session

import (
	"fmt"
	"log"
	"sync"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/ivlev/logo2video/internal/audio"
	"github.com/ivlev/logo2video/internal/camera"
	"github.com/ivlev/logo2video/internal/recommend"
)

// Snapshot is what the renderer needs for the current playhead
type Snapshot struct {
	Time       float64              `yaml:"time"`
	Parameters animation.Parameters `yaml:"parameters"`
	Camera     *camera.Pose         `yaml:"camera,omitempty"` // nil without a camera path
}

// Controller is one editing session. It owns the base settings, both
// keyframe lists, the playhead and the audio preview that is currently
// playing, if any.
type Controller struct {
	Keyframes *KeyframeStore
	Camera    *CameraPath
	Playback  *Playback
	Scene     *SceneStore

	mu      sync.Mutex
	base    animation.Settings // keyframes live in the store
	player  audio.Player
	preview audio.Handle
}

// NewController starts a session from saved settings and camera keyframes.
// player may be nil when previews are not needed.
func NewController(settings animation.Settings, cameraPath []camera.Keyframe, player audio.Player) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	base := settings
	base.Keyframes = nil

	return &Controller{
		Keyframes: NewKeyframeStore(settings.Keyframes),
		Camera:    NewCameraPath(cameraPath),
		Playback:  NewPlayback(settings.Duration),
		Scene:     NewSceneStore(nil),
		base:      base,
		player:    player,
	}, nil
}

// Settings assembles the current settings with a copy of the keyframes
func (c *Controller) Settings() animation.Settings {
	c.mu.Lock()
	s := c.base
	c.mu.Unlock()

	s.Keyframes = c.Keyframes.Snapshot()
	return s
}

// SetParameters replaces the base parameters shown without keyframes
func (c *Controller) SetParameters(p animation.Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	c.base.Parameters = p
	c.mu.Unlock()
	return nil
}

// SetDuration changes the timeline length
func (c *Controller) SetDuration(duration float64) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be > 0, got %g", duration)
	}
	c.mu.Lock()
	c.base.Duration = duration
	c.mu.Unlock()

	c.Playback.SetDuration(duration)
	return nil
}

// Apply runs recommendation patches through the reducer and adopts the
// result. The read, patch and write happen as one step.
func (c *Controller) Apply(patches ...recommend.Patch) error {
	return c.Replace(func(s animation.Settings) animation.Settings {
		return recommend.ApplyAll(s, patches...)
	})
}

// Replace swaps the whole settings for what fn derives from the current
// ones. Nothing changes when the result is invalid. fn runs under the
// controller lock and must not call back into c.
func (c *Controller) Replace(fn func(animation.Settings) animation.Settings) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.Keyframes.modify(func(kfs []animation.Keyframe) ([]animation.Keyframe, error) {
		current := c.base
		current.Keyframes = kfs

		next := fn(current)
		if err := next.Validate(); err != nil {
			return nil, fmt.Errorf("patched settings rejected: %w", err)
		}

		c.base.Parameters = next.Parameters
		c.base.Duration = next.Duration
		c.base.RenderMode = next.RenderMode
		c.Playback.SetDuration(next.Duration)
		return next.Keyframes, nil
	})
}

// Snapshot interpolates the timeline and camera path at the playhead
func (c *Controller) Snapshot() (Snapshot, error) {
	return c.SnapshotAt(c.Playback.Current())
}

// SnapshotAt interpolates the timeline and camera path at an arbitrary time
func (c *Controller) SnapshotAt(time float64) (Snapshot, error) {
	settings, err := animation.Interpolate(c.Settings(), time)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{Time: time, Parameters: settings.Parameters}
	if pose, ok := c.Camera.PoseAt(time); ok {
		snap.Camera = &pose
	}
	return snap, nil
}

// AddKeyframeAtPlayhead captures the parameters currently on screen as a
// keyframe at the playhead
func (c *Controller) AddKeyframeAtPlayhead() (string, error) {
	snap, err := c.Snapshot()
	if err != nil {
		return "", err
	}
	return c.Keyframes.AddAt(snap.Time, snap.Parameters)
}

// PlayPreview stops any running preview and starts path in its place
func (c *Controller) PlayPreview(path string) error {
	if c.player == nil {
		return fmt.Errorf("no audio player configured")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopPreviewLocked()

	h, err := c.player.Play(path)
	if err != nil {
		return fmt.Errorf("preview %s: %w", path, err)
	}
	c.preview = h
	return nil
}

// StopPreview silences the running preview, if any
func (c *Controller) StopPreview() {
	c.mu.Lock()
	c.stopPreviewLocked()
	c.mu.Unlock()
}

// PreviewActive reports whether a preview handle is held
func (c *Controller) PreviewActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preview != nil
}

func (c *Controller) stopPreviewLocked() {
	if c.preview == nil {
		return
	}
	if err := c.preview.Stop(); err != nil {
		log.Printf("[!] Failed to stop audio preview: %v", err)
	}
	c.preview = nil
}

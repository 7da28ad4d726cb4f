package animation

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// RenderMode selects the 2D or 3D workflow of the editor
type RenderMode string

const (
	Mode2D RenderMode = "2D"
	Mode3D RenderMode = "3D"
)

// Parameters is the flat set of visual parameters captured by a keyframe
type Parameters struct {
	RotationSpeed  float64 `yaml:"rotation_speed"`
	RotationAxis   r3.Vec  `yaml:"rotation_axis"` // usually normalized, not enforced
	Scale          float64 `yaml:"scale"`
	EnableRotation bool    `yaml:"enable_rotation"`

	PositionX float64 `yaml:"position_x"`
	PositionY float64 `yaml:"position_y"`
	PositionZ float64 `yaml:"position_z"`

	Opacity   float64 `yaml:"opacity"`    // 0-1
	ColorTint string  `yaml:"color_tint"` // #rrggbb

	GlowEnabled          bool    `yaml:"glow_enabled"`
	GlowIntensity        float64 `yaml:"glow_intensity"` // 0-1
	ParticleTrailEnabled bool    `yaml:"particle_trail_enabled"`
	ShadowIntensity      float64 `yaml:"shadow_intensity"` // 0-1
}

// Keyframe is a timestamped snapshot of parameters the timeline passes through
type Keyframe struct {
	ID        string     `yaml:"id"`
	Timestamp float64    `yaml:"timestamp"` // seconds
	Settings  Parameters `yaml:"settings"`
}

// Settings is the editable animation state: the base parameters shown when
// no keyframes exist, plus the timeline itself.
type Settings struct {
	Parameters `yaml:",inline"`

	RenderMode RenderMode `yaml:"render_mode"`
	Keyframes  []Keyframe `yaml:"keyframes"`
	Duration   float64    `yaml:"duration"` // seconds
}

// DefaultParameters returns the parameters of a freshly opened editor
func DefaultParameters() Parameters {
	return Parameters{
		RotationSpeed:   1,
		RotationAxis:    r3.Vec{X: 0, Y: 1, Z: 0},
		Scale:           1,
		EnableRotation:  true,
		Opacity:         1,
		ColorTint:       "#ffffff",
		GlowIntensity:   0.5,
		ShadowIntensity: 0.5,
	}
}

// DefaultSettings returns default parameters with an empty 5 second timeline
func DefaultSettings() Settings {
	return Settings{
		Parameters: DefaultParameters(),
		RenderMode: Mode3D,
		Duration:   5,
	}
}

// Validate checks the documented ranges of every field
func (p Parameters) Validate() error {
	if p.RotationSpeed < 0 {
		return fmt.Errorf("rotation speed must be >= 0, got %g", p.RotationSpeed)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("scale must be > 0, got %g", p.Scale)
	}
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"opacity", p.Opacity},
		{"glow intensity", p.GlowIntensity},
		{"shadow intensity", p.ShadowIntensity},
	} {
		if f.value < 0 || f.value > 1 {
			return fmt.Errorf("%s must be in [0,1], got %g", f.name, f.value)
		}
	}
	if _, err := parseColor(p.ColorTint); err != nil {
		return err
	}
	return nil
}

// Validate checks the timeline and every keyframe it carries
func (s Settings) Validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("duration must be > 0, got %g", s.Duration)
	}
	if err := s.Parameters.Validate(); err != nil {
		return err
	}
	for _, kf := range s.Keyframes {
		if kf.Timestamp < 0 {
			return fmt.Errorf("keyframe %s: negative timestamp %g", kf.ID, kf.Timestamp)
		}
		if err := kf.Settings.Validate(); err != nil {
			return fmt.Errorf("keyframe %s: %w", kf.ID, err)
		}
	}
	return nil
}

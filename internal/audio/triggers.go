package audio

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ivlev/logo2video/internal/animation"
)

// scaleJump is the minimum scale change between keyframes that earns a cue
const scaleJump = 0.1

// SoundEffects toggles the cue categories mixed into an export
type SoundEffects struct {
	Rotation bool `yaml:"rotation"`
	Scale    bool `yaml:"scale"`
	Particle bool `yaml:"particle"`
}

// Any reports whether at least one category is enabled
func (e SoundEffects) Any() bool {
	return e.Rotation || e.Scale || e.Particle
}

// CueTriggers holds the times (seconds) at which each sound effect fires
type CueTriggers struct {
	Rotation []float64 `yaml:"rotation"`
	Scale    []float64 `yaml:"scale"`
	Particle []float64 `yaml:"particle"`
}

// Triggers derives sound effect cue times from the animation timeline.
//
// With keyframes: a rotation cue for each keyframe that rotates, a scale cue
// where scale jumps by more than 0.1 from the previous keyframe and a particle
// cue where the trail is on. Without keyframes the base settings fire their
// rotation/particle cues once at zero.
func Triggers(settings animation.Settings) CueTriggers {
	var out CueTriggers

	if len(settings.Keyframes) == 0 {
		if settings.EnableRotation {
			out.Rotation = append(out.Rotation, 0)
		}
		if settings.ParticleTrailEnabled {
			out.Particle = append(out.Particle, 0)
		}
		return out
	}

	sorted := make([]animation.Keyframe, len(settings.Keyframes))
	copy(sorted, settings.Keyframes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})

	for i, kf := range sorted {
		p := kf.Settings
		if p.EnableRotation && p.RotationSpeed > 0 {
			out.Rotation = append(out.Rotation, kf.Timestamp)
		}
		if i > 0 && math.Abs(p.Scale-sorted[i-1].Settings.Scale) > scaleJump {
			out.Scale = append(out.Scale, kf.Timestamp)
		}
		if p.ParticleTrailEnabled {
			out.Particle = append(out.Particle, kf.Timestamp)
		}
	}
	return out
}

// Only drops the categories that are switched off
func (c CueTriggers) Only(effects SoundEffects) CueTriggers {
	var out CueTriggers
	if effects.Rotation {
		out.Rotation = c.Rotation
	}
	if effects.Scale {
		out.Scale = c.Scale
	}
	if effects.Particle {
		out.Particle = c.Particle
	}
	return out
}

// Count returns the total number of cues
func (c CueTriggers) Count() int {
	return len(c.Rotation) + len(c.Scale) + len(c.Particle)
}

// ParseEffects reads a comma separated list of cue categories. "none"
// switches every category off.
func ParseEffects(list string) (SoundEffects, error) {
	var e SoundEffects
	for _, name := range strings.Split(list, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "rotation":
			e.Rotation = true
		case "scale":
			e.Scale = true
		case "particle", "particles":
			e.Particle = true
		case "none", "":
		default:
			return SoundEffects{}, fmt.Errorf("unknown sound effect: %s", name)
		}
	}
	return e, nil
}

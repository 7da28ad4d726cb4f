package recommend

import (
	"github.com/ivlev/logo2video/internal/animation"
	"gonum.org/v1/gonum/spatial/r3"
)

// Patch is one typed change to animation settings. The set of patches is
// closed; Apply knows every variant.
type Patch interface {
	isPatch()
}

// RotationPatch changes the spin of the logo. Nil fields are left alone.
type RotationPatch struct {
	Enable *bool
	Speed  *float64
	Axis   *r3.Vec
}

type ScalePatch struct {
	Scale float64
}

type PositionPatch struct {
	Position r3.Vec
}

// AppearancePatch changes opacity and tint. Nil fields are left alone.
type AppearancePatch struct {
	Opacity *float64
	Tint    *string
}

type GlowPatch struct {
	Enabled   bool
	Intensity float64
}

type ParticlePatch struct {
	Enabled bool
}

type ShadowPatch struct {
	Intensity float64
}

// KeyframesPatch replaces the whole timeline
type KeyframesPatch struct {
	Keyframes []animation.Keyframe
}

type DurationPatch struct {
	Duration float64
}

func (RotationPatch) isPatch()   {}
func (ScalePatch) isPatch()      {}
func (PositionPatch) isPatch()   {}
func (AppearancePatch) isPatch() {}
func (GlowPatch) isPatch()       {}
func (ParticlePatch) isPatch()   {}
func (ShadowPatch) isPatch()     {}
func (KeyframesPatch) isPatch()  {}
func (DurationPatch) isPatch()   {}

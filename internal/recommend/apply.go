package recommend

import "github.com/ivlev/logo2video/internal/animation"

// Apply returns settings with p applied. The input, including its keyframe
// slice, is never modified.
func Apply(settings animation.Settings, p Patch) animation.Settings {
	s := settings
	s.Keyframes = cloneKeyframes(settings.Keyframes)

	switch p := p.(type) {
	case RotationPatch:
		if p.Enable != nil {
			s.EnableRotation = *p.Enable
		}
		if p.Speed != nil {
			s.RotationSpeed = *p.Speed
		}
		if p.Axis != nil {
			s.RotationAxis = *p.Axis
		}
	case ScalePatch:
		s.Scale = p.Scale
	case PositionPatch:
		s.PositionX = p.Position.X
		s.PositionY = p.Position.Y
		s.PositionZ = p.Position.Z
	case AppearancePatch:
		if p.Opacity != nil {
			s.Opacity = *p.Opacity
		}
		if p.Tint != nil {
			s.ColorTint = *p.Tint
		}
	case GlowPatch:
		s.GlowEnabled = p.Enabled
		s.GlowIntensity = p.Intensity
	case ParticlePatch:
		s.ParticleTrailEnabled = p.Enabled
	case ShadowPatch:
		s.ShadowIntensity = p.Intensity
	case KeyframesPatch:
		s.Keyframes = cloneKeyframes(p.Keyframes)
	case DurationPatch:
		s.Duration = p.Duration
	}
	return s
}

// ApplyAll folds patches over settings in order
func ApplyAll(settings animation.Settings, patches ...Patch) animation.Settings {
	s := settings
	s.Keyframes = cloneKeyframes(settings.Keyframes)
	for _, p := range patches {
		s = Apply(s, p)
	}
	return s
}

func cloneKeyframes(kfs []animation.Keyframe) []animation.Keyframe {
	if kfs == nil {
		return nil
	}
	out := make([]animation.Keyframe, len(kfs))
	copy(out, kfs)
	return out
}

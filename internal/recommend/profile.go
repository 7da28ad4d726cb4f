package recommend

import (
	"strings"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/ivlev/logo2video/internal/logo"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	profileDuration = 5.0
	white           = "#ffffff"

	simpleLogo   = 0.3 // complexity bands
	detailedLogo = 0.6
	fastRotation = 2.5
	midRotation  = 1.5
	calmRotation = 0.8

	wideLogo = 1.5 // aspect ratios
	tallLogo = 0.7

	glowBright    = 0.5
	glowColorful  = 0.3
	glowGain      = 1.2
	glowCap       = 0.9
	trailColorful = 0.4
	brightLogo    = 0.5
)

var (
	wideAxis    = r3.Vec{X: 0.3, Y: 0.7}
	tallAxis    = r3.Vec{Y: 0.7, Z: 0.3}
	defaultAxis = r3.Vec{Y: 1}
)

// Profile builds a complete animation for a logo: base parameters, a four
// keyframe timeline tinted with the logo's dominant colours and a 5 second
// duration. The 2D profile slides and fades without rotating; the 3D profile
// spins on an axis chosen from the logo's shape. Fields outside the
// parameter set are taken from current.
func Profile(stats logo.Stats, current animation.Settings, mode animation.RenderMode) animation.Settings {
	if strings.ToUpper(string(mode)) == string(animation.Mode2D) {
		return profile2D(stats, current)
	}
	return profile3D(stats, current)
}

// profileEffects are the glow, trail and shadow settings both workflows share
type profileEffects struct {
	glow      bool
	intensity float64
	trail     bool
	shadow    float64
}

func effectsFor(stats logo.Stats, brightShadow, dimShadow float64) profileEffects {
	e := profileEffects{
		glow:      stats.Brightness > glowBright && stats.Colorfulness > glowColorful,
		intensity: min(glowCap, stats.Colorfulness*glowGain),
		trail:     stats.Colorfulness > trailColorful,
		shadow:    dimShadow,
	}
	if stats.Brightness > brightLogo {
		e.shadow = brightShadow
	}
	return e
}

func (e profileEffects) apply(p *animation.Parameters) {
	p.GlowEnabled = e.glow
	p.GlowIntensity = e.intensity
	p.ParticleTrailEnabled = e.trail
	p.ShadowIntensity = e.shadow
}

// profileColors returns the tints of the two middle keyframes
func profileColors(stats logo.Stats) (string, string) {
	first, second := white, white
	if len(stats.DominantColors) > 0 {
		first, second = stats.DominantColors[0], stats.DominantColors[0]
	}
	if len(stats.DominantColors) > 1 {
		second = stats.DominantColors[1]
	}
	return first, second
}

// RotationFor picks the spin speed from the logo's complexity
func RotationFor(complexity float64) float64 {
	switch {
	case complexity < simpleLogo:
		return fastRotation
	case complexity < detailedLogo:
		return midRotation
	default:
		return calmRotation
	}
}

// AxisFor tilts the spin axis of wide and tall logos
func AxisFor(aspectRatio float64) r3.Vec {
	switch {
	case aspectRatio > wideLogo:
		return wideAxis
	case aspectRatio < tallLogo:
		return tallAxis
	default:
		return defaultAxis
	}
}

// settled is the resting state every profile returns to
func settled() animation.Parameters {
	return animation.Parameters{
		Scale:     1,
		Opacity:   1,
		ColorTint: white,
	}
}

func profile3D(stats logo.Stats, current animation.Settings) animation.Settings {
	speed := RotationFor(stats.Complexity)
	axis := AxisFor(stats.AspectRatio)
	fx := effectsFor(stats, 0.7, 0.3)
	first, second := profileColors(stats)

	base := settled()
	base.RotationSpeed = speed
	base.RotationAxis = axis
	base.EnableRotation = true
	fx.apply(&base)

	d := profileDuration
	kfs := keyframesAt("kf-3d-auto", base, []float64{0, d * 0.4, d * 0.7, d}, func(i int, p *animation.Parameters) {
		switch i {
		case 0:
			p.RotationSpeed = speed * 0.5
			p.Scale = 0.5
			p.PositionZ = -2
			p.Opacity = 0
			p.GlowEnabled, p.GlowIntensity = false, 0
			p.ParticleTrailEnabled = false
			p.ShadowIntensity = 0
		case 1:
			p.Scale = 1.2
			p.ColorTint = first
		case 2:
			p.RotationSpeed = speed * 1.5
			p.RotationAxis = r3.Vec{X: axis.Y, Y: axis.X, Z: axis.Z}
			p.PositionX = 0.5
			p.ColorTint = second
			p.GlowIntensity = fx.intensity * 0.8
		case 3:
			p.RotationSpeed = speed * 0.8
			p.GlowIntensity = fx.intensity * 0.6
		}
	})

	out := current
	out.Parameters = base
	out.RenderMode = animation.Mode3D
	out.Keyframes = kfs.Keyframes
	out.Duration = d
	return out
}

func profile2D(stats logo.Stats, current animation.Settings) animation.Settings {
	fx := effectsFor(stats, 0.5, 0.2)
	first, second := profileColors(stats)

	base := settled()
	fx.apply(&base)

	d := profileDuration
	kfs := keyframesAt("kf-2d-auto", base, []float64{0, d * 0.3, d * 0.7, d}, func(i int, p *animation.Parameters) {
		switch i {
		case 0:
			p.Scale = 0.8
			p.PositionX = -3
			p.Opacity = 0
			p.GlowEnabled, p.GlowIntensity = false, 0
			p.ParticleTrailEnabled = false
			p.ShadowIntensity = 0
		case 1:
			p.Scale = 1.1
			p.ColorTint = first
		case 2:
			p.PositionY = 0.2
			p.ColorTint = second
			p.GlowIntensity = fx.intensity * 0.8
		case 3:
			p.GlowIntensity = fx.intensity * 0.6
		}
	})

	out := current
	out.Parameters = base
	out.RenderMode = animation.Mode2D
	out.Keyframes = kfs.Keyframes
	out.Duration = d
	return out
}

package recommend

import (
	"strconv"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/ivlev/logo2video/internal/logo"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Category string

const (
	CategoryAnimation Category = "animation"
	CategoryEffects   Category = "effects"
	CategoryCamera    Category = "camera"
	CategoryScene     Category = "scene"
)

// Recommendation is a suggested change; accepting it means applying Patches
type Recommendation struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Category    Category
	Patches     []Patch
}

// Input is everything the analyzers look at
type Input struct {
	Settings      animation.Settings
	Logo          *logo.Stats // nil before a logo was analyzed
	SceneElements int
}

// Analyzer is the interface for recommendation strategies
type Analyzer interface {
	Analyze(in Input) []Recommendation
}

const (
	glowColorfulness     = 0.4
	particleColorfulness = 0.5
	maxGlowIntensity     = 0.8
)

// logoEffects holds the rules shared by both workflows
func logoEffects(in Input, suffix string) []Recommendation {
	var recs []Recommendation
	if in.Logo == nil {
		return recs
	}
	s := in.Settings

	if in.Logo.Colorfulness > glowColorfulness && !s.GlowEnabled {
		recs = append(recs, Recommendation{
			ID:          "enable-glow" + suffix,
			Title:       "Enable Glow Effect",
			Description: "Your colorful logo would benefit from a glow effect",
			Priority:    PriorityHigh,
			Category:    CategoryEffects,
			Patches: []Patch{GlowPatch{
				Enabled:   true,
				Intensity: min(maxGlowIntensity, in.Logo.Colorfulness),
			}},
		})
	}

	if in.Logo.Colorfulness > particleColorfulness && !s.ParticleTrailEnabled {
		recs = append(recs, Recommendation{
			ID:          "enable-particles" + suffix,
			Title:       "Add Particle Trail",
			Description: "Enhance your animation with a particle trail effect",
			Priority:    PriorityMedium,
			Category:    CategoryEffects,
			Patches:     []Patch{ParticlePatch{Enabled: true}},
		})
	}
	return recs
}

// keyframesAt builds recommendation keyframes from the base parameters, each
// stop changed by edit
func keyframesAt(prefix string, base animation.Parameters, times []float64, edit func(i int, p *animation.Parameters)) KeyframesPatch {
	kfs := make([]animation.Keyframe, len(times))
	for i, ts := range times {
		p := base
		edit(i, &p)
		kfs[i] = animation.Keyframe{
			ID:        prefix + "-" + strconv.Itoa(i),
			Timestamp: ts,
			Settings:  p,
		}
	}
	return KeyframesPatch{Keyframes: kfs}
}

package recommend

import (
	"github.com/ivlev/logo2video/internal/animation"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	slowRotation    = 0.5
	suggestedSpeed  = 1.5
	weakShadow      = 0.3
	suggestedShadow = 0.6
)

var suggestedAxis = r3.Vec{X: 0.3, Y: 0.7, Z: 0.2}

// ThreeD recommends rotation, depth and lighting changes for the 3D workflow
type ThreeD struct{}

func (ThreeD) Analyze(in Input) []Recommendation {
	s := in.Settings
	var recs []Recommendation

	if !s.EnableRotation {
		enable, speed := true, suggestedSpeed
		recs = append(recs, Recommendation{
			ID:          "enable-rotation",
			Title:       "Enable Rotation",
			Description: "Add dynamic rotation to bring your 3D logo to life",
			Priority:    PriorityHigh,
			Category:    CategoryAnimation,
			Patches:     []Patch{RotationPatch{Enable: &enable, Speed: &speed}},
		})
	} else if s.RotationSpeed < slowRotation {
		speed := suggestedSpeed
		recs = append(recs, Recommendation{
			ID:          "increase-rotation-speed",
			Title:       "Increase Rotation Speed",
			Description: "Your rotation is quite slow. Consider increasing the speed for more impact",
			Priority:    PriorityMedium,
			Category:    CategoryAnimation,
			Patches:     []Patch{RotationPatch{Speed: &speed}},
		})
	}

	if s.EnableRotation && activeAxes(s.RotationAxis) == 1 {
		axis := suggestedAxis
		recs = append(recs, Recommendation{
			ID:          "multi-axis-rotation",
			Title:       "Add Multi-Axis Rotation",
			Description: "Create more interesting movement by rotating on multiple axes",
			Priority:    PriorityMedium,
			Category:    CategoryAnimation,
			Patches:     []Patch{RotationPatch{Axis: &axis}},
		})
	}

	if s.PositionZ == 0 && len(s.Keyframes) == 0 {
		depth := []float64{-3, 1, 0}
		recs = append(recs, Recommendation{
			ID:          "add-depth-movement",
			Title:       "Add Depth Movement",
			Description: "Use Z-axis position to create depth and perspective in your animation",
			Priority:    PriorityHigh,
			Category:    CategoryAnimation,
			Patches: []Patch{keyframesAt("rec-depth", s.Parameters,
				[]float64{0, s.Duration / 2, s.Duration},
				func(i int, p *animation.Parameters) { p.PositionZ = depth[i] })},
		})
	}

	recs = append(recs, logoEffects(in, "")...)

	if s.ShadowIntensity < weakShadow {
		recs = append(recs, Recommendation{
			ID:          "increase-shadows",
			Title:       "Increase Shadow Intensity",
			Description: "Stronger shadows will add depth and realism to your 3D scene",
			Priority:    PriorityLow,
			Category:    CategoryEffects,
			Patches:     []Patch{ShadowPatch{Intensity: suggestedShadow}},
		})
	}

	if in.SceneElements == 0 {
		recs = append(recs, Recommendation{
			ID:          "add-scene-elements",
			Title:       "Add Scene Elements",
			Description: "Enhance your scene by adding 3D shapes like cubes, spheres, or planes",
			Priority:    PriorityLow,
			Category:    CategoryScene,
		})
	}

	return recs
}

// activeAxes counts the positive components of a rotation axis
func activeAxes(axis r3.Vec) int {
	n := 0
	for _, v := range []float64{axis.X, axis.Y, axis.Z} {
		if v > 0 {
			n++
		}
	}
	return n
}

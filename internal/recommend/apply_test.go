package recommend

import (
	"testing"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func ptr[T any](v T) *T { return &v }

func TestApply(t *testing.T) {
	base := animation.DefaultSettings()

	tests := []struct {
		name  string
		patch Patch
		check func(t *testing.T, s animation.Settings)
	}{
		{"rotation enable", RotationPatch{Enable: ptr(false)}, func(t *testing.T, s animation.Settings) {
			assert.False(t, s.EnableRotation)
			assert.Equal(t, base.RotationSpeed, s.RotationSpeed)
		}},
		{"rotation speed and axis", RotationPatch{Speed: ptr(2.5), Axis: &r3.Vec{X: 1}}, func(t *testing.T, s animation.Settings) {
			assert.True(t, s.EnableRotation)
			assert.Equal(t, 2.5, s.RotationSpeed)
			assert.Equal(t, r3.Vec{X: 1}, s.RotationAxis)
		}},
		{"scale", ScalePatch{Scale: 2}, func(t *testing.T, s animation.Settings) {
			assert.Equal(t, 2.0, s.Scale)
		}},
		{"position", PositionPatch{Position: r3.Vec{X: 1, Y: 2, Z: 3}}, func(t *testing.T, s animation.Settings) {
			assert.Equal(t, []float64{1, 2, 3}, []float64{s.PositionX, s.PositionY, s.PositionZ})
		}},
		{"appearance tint only", AppearancePatch{Tint: ptr("#ff0000")}, func(t *testing.T, s animation.Settings) {
			assert.Equal(t, "#ff0000", s.ColorTint)
			assert.Equal(t, base.Opacity, s.Opacity)
		}},
		{"glow", GlowPatch{Enabled: true, Intensity: 0.7}, func(t *testing.T, s animation.Settings) {
			assert.True(t, s.GlowEnabled)
			assert.Equal(t, 0.7, s.GlowIntensity)
		}},
		{"particles", ParticlePatch{Enabled: true}, func(t *testing.T, s animation.Settings) {
			assert.True(t, s.ParticleTrailEnabled)
		}},
		{"shadow", ShadowPatch{Intensity: 0.1}, func(t *testing.T, s animation.Settings) {
			assert.Equal(t, 0.1, s.ShadowIntensity)
		}},
		{"duration", DurationPatch{Duration: 12}, func(t *testing.T, s animation.Settings) {
			assert.Equal(t, 12.0, s.Duration)
		}},
		{"keyframes", KeyframesPatch{Keyframes: []animation.Keyframe{{ID: "a"}}}, func(t *testing.T, s animation.Settings) {
			require.Len(t, s.Keyframes, 1)
			assert.Equal(t, "a", s.Keyframes[0].ID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, Apply(base, tt.patch))
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := animation.DefaultSettings()
	s.Keyframes = []animation.Keyframe{{ID: "a", Timestamp: 1, Settings: s.Parameters}}

	kfs := []animation.Keyframe{{ID: "b"}}
	out := ApplyAll(s, ScalePatch{Scale: 3}, KeyframesPatch{Keyframes: kfs})

	assert.Equal(t, 1.0, s.Scale)
	assert.Equal(t, "a", s.Keyframes[0].ID)

	out.Keyframes[0].ID = "changed"
	assert.Equal(t, "b", kfs[0].ID)
}

func TestApplyAllOrder(t *testing.T) {
	out := ApplyAll(animation.DefaultSettings(), ScalePatch{Scale: 2}, ScalePatch{Scale: 4})
	assert.Equal(t, 4.0, out.Scale)

	same := ApplyAll(animation.DefaultSettings())
	assert.Equal(t, animation.DefaultSettings(), same)
}

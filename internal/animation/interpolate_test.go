package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func paramsA() Parameters {
	return Parameters{
		RotationSpeed:        0,
		RotationAxis:         r3.Vec{X: 1, Y: 0, Z: 0},
		Scale:                0.5,
		EnableRotation:       true,
		PositionX:            -2,
		PositionY:            0,
		PositionZ:            4,
		Opacity:              0,
		ColorTint:            "#000000",
		GlowEnabled:          false,
		GlowIntensity:        0.2,
		ParticleTrailEnabled: true,
		ShadowIntensity:      1,
	}
}

func paramsB() Parameters {
	return Parameters{
		RotationSpeed:        4,
		RotationAxis:         r3.Vec{X: 0, Y: 1, Z: 1},
		Scale:                1.5,
		EnableRotation:       false,
		PositionX:            2,
		PositionY:            3,
		PositionZ:            0,
		Opacity:              1,
		ColorTint:            "#ffffff",
		GlowEnabled:          true,
		GlowIntensity:        0.8,
		ParticleTrailEnabled: false,
		ShadowIntensity:      0,
	}
}

func twoKeyframes() Settings {
	s := DefaultSettings()
	s.Duration = 10
	s.Keyframes = []Keyframe{
		{ID: "a", Timestamp: 0, Settings: paramsA()},
		{ID: "b", Timestamp: 10, Settings: paramsB()},
	}
	return s
}

func TestInterpolateNoKeyframes(t *testing.T) {
	s := DefaultSettings()
	s.ColorTint = "not-a-color" // never inspected without keyframes

	for _, q := range []float64{-3, 0, 2.5, 1e6} {
		got, err := Interpolate(s, q)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestInterpolateSingleKeyframe(t *testing.T) {
	s := DefaultSettings()
	s.Keyframes = []Keyframe{{ID: "only", Timestamp: 3, Settings: paramsB()}}

	for _, q := range []float64{-1, 0, 5, 1000} {
		got, err := Interpolate(s, q)
		require.NoError(t, err)
		assert.Equal(t, paramsB(), got.Parameters, "query %v", q)
		assert.Equal(t, s.Keyframes, got.Keyframes)
		assert.Equal(t, s.Duration, got.Duration)
	}
}

func TestInterpolateEndpointsAndMidpoint(t *testing.T) {
	s := twoKeyframes()

	start, err := Interpolate(s, 0)
	require.NoError(t, err)
	assert.Equal(t, paramsA(), start.Parameters)

	end, err := Interpolate(s, 10)
	require.NoError(t, err)
	assert.Equal(t, paramsB(), end.Parameters)

	mid, err := Interpolate(s, 5)
	require.NoError(t, err)
	p := mid.Parameters
	assert.InDelta(t, 2.0, p.RotationSpeed, 1e-12)
	assert.InDelta(t, 0.5, p.RotationAxis.X, 1e-12)
	assert.InDelta(t, 0.5, p.RotationAxis.Y, 1e-12)
	assert.InDelta(t, 0.5, p.RotationAxis.Z, 1e-12)
	assert.InDelta(t, 1.0, p.Scale, 1e-12)
	assert.InDelta(t, 0.0, p.PositionX, 1e-12)
	assert.InDelta(t, 1.5, p.PositionY, 1e-12)
	assert.InDelta(t, 2.0, p.PositionZ, 1e-12)
	assert.InDelta(t, 0.5, p.Opacity, 1e-12)
	assert.InDelta(t, 0.5, p.GlowIntensity, 1e-12)
	assert.InDelta(t, 0.5, p.ShadowIntensity, 1e-12)
	assert.Equal(t, "#808080", p.ColorTint)
}

func TestInterpolateBooleanStep(t *testing.T) {
	s := twoKeyframes()

	tests := []struct {
		time     float64
		rotation bool
		glow     bool
		trail    bool
	}{
		{4.9, true, false, true},
		{5.0, false, true, false},
		{5.1, false, true, false},
	}

	for _, tt := range tests {
		got, err := Interpolate(s, tt.time)
		require.NoError(t, err)
		assert.Equal(t, tt.rotation, got.EnableRotation, "enableRotation at %v", tt.time)
		assert.Equal(t, tt.glow, got.GlowEnabled, "glowEnabled at %v", tt.time)
		assert.Equal(t, tt.trail, got.ParticleTrailEnabled, "particleTrailEnabled at %v", tt.time)
	}
}

func TestInterpolateOutsideRangeHoldsEnds(t *testing.T) {
	s := twoKeyframes()
	s.Keyframes[0].Timestamp = 2

	before, err := Interpolate(s, 1)
	require.NoError(t, err)
	assert.Equal(t, paramsA(), before.Parameters)

	after, err := Interpolate(s, 42)
	require.NoError(t, err)
	assert.Equal(t, paramsB(), after.Parameters)
}

func TestInterpolateSortsKeyframes(t *testing.T) {
	ordered := twoKeyframes()
	reversed := twoKeyframes()
	reversed.Keyframes = []Keyframe{ordered.Keyframes[1], ordered.Keyframes[0]}

	want, err := Interpolate(ordered, 5)
	require.NoError(t, err)
	got, err := Interpolate(reversed, 5)
	require.NoError(t, err)

	assert.Equal(t, want.Parameters, got.Parameters)
	// input order is left untouched
	assert.Equal(t, "b", reversed.Keyframes[0].ID)
}

func TestInterpolateScaleScenario(t *testing.T) {
	s := DefaultSettings()
	low, high := DefaultParameters(), DefaultParameters()
	low.Scale, high.Scale = 0.5, 1.5
	s.Keyframes = []Keyframe{
		{ID: "k0", Timestamp: 0, Settings: low},
		{ID: "k1", Timestamp: 5, Settings: high},
	}

	got, err := Interpolate(s, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Scale)
}

func TestInterpolateDuplicateTimestamps(t *testing.T) {
	s := DefaultSettings()
	first, second, third := paramsA(), paramsB(), paramsA()
	third.Scale = 3
	s.Keyframes = []Keyframe{
		{ID: "x", Timestamp: 0, Settings: first},
		{ID: "y", Timestamp: 4, Settings: second},
		{ID: "z", Timestamp: 4, Settings: third},
	}

	// the later of the tied keyframes is held at the shared timestamp
	got, err := Interpolate(s, 4)
	require.NoError(t, err)
	assert.Equal(t, third, got.Parameters)

	// approaching the tie blends toward the first of the tied keyframes
	got, err = Interpolate(s, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got.Scale, 1e-12)
}

func TestInterpolateMalformedColor(t *testing.T) {
	s := twoKeyframes()
	s.Keyframes[1].Settings.ColorTint = "#12zz56"

	_, err := Interpolate(s, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedColor)

	// held keyframes are returned verbatim
	got, err := Interpolate(s, 10)
	require.NoError(t, err)
	assert.Equal(t, "#12zz56", got.ColorTint)
}

func TestInterpolateExactHitReturnsKeyframe(t *testing.T) {
	s := twoKeyframes()
	s.Keyframes[0].Settings.ColorTint = "#FFFFFF"

	// tint keeps its original spelling instead of being re-encoded
	got, err := Interpolate(s, 0)
	require.NoError(t, err)
	assert.Equal(t, s.Keyframes[0].Settings, got.Parameters)
	assert.Equal(t, "#FFFFFF", got.ColorTint)

	// a malformed neighbour is not consulted on an exact hit
	s.Keyframes[1].Settings.ColorTint = "#12zz56"
	got, err = Interpolate(s, 0)
	require.NoError(t, err)
	assert.Equal(t, "#FFFFFF", got.ColorTint)

	mid := DefaultSettings()
	mid.Keyframes = []Keyframe{
		{ID: "a", Timestamp: 0, Settings: paramsA()},
		{ID: "b", Timestamp: 5, Settings: paramsB()},
		{ID: "c", Timestamp: 10, Settings: paramsA()},
	}
	got, err = Interpolate(mid, 5)
	require.NoError(t, err)
	assert.Equal(t, paramsB(), got.Parameters)
}

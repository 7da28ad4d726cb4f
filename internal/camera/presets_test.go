package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestPresetRegistry(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"orbit", false},
		{"", false}, // default
		{"dolly-zoom", false},
		{"fly-through", false},
		{"tracking", false},
		{"crane", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := NewPreset(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, preset)
		})
	}

	for _, name := range PresetNames() {
		_, err := NewPreset(name)
		assert.NoError(t, err, name)
	}
}

func TestPresetsSpanDuration(t *testing.T) {
	opts := PresetOptions{Duration: 6, Target: r3.Vec{X: 1, Y: 2, Z: 3}}

	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			preset, err := NewPreset(name)
			require.NoError(t, err)

			kfs := preset(opts)
			require.GreaterOrEqual(t, len(kfs), 2)
			assert.Equal(t, 0.0, kfs[0].Time)
			assert.InDelta(t, opts.Duration, kfs[len(kfs)-1].Time, tolerance)

			for i := 1; i < len(kfs); i++ {
				assert.GreaterOrEqual(t, kfs[i].Time, kfs[i-1].Time, "keyframe %d out of order", i)
			}
		})
	}
}

func TestOrbit(t *testing.T) {
	target := r3.Vec{X: 1, Y: 2, Z: 3}
	kfs := Orbit(PresetOptions{Duration: 8, Radius: 4, Target: target})
	require.Len(t, kfs, orbitKeyframes+1)

	for _, kf := range kfs {
		offset := r3.Sub(kf.Position, target)
		assert.InDelta(t, 4.0, r3.Norm(offset), tolerance)
		assert.InDelta(t, 0.0, offset.Y, tolerance)
		assert.Equal(t, defaultFOV, kf.FOV)
	}

	// a quarter turn after two seconds
	assert.InDelta(t, -math.Pi/2, kfs[2].Rotation.Yaw, tolerance)

	ccw := Orbit(PresetOptions{Duration: 8, Direction: CounterClockwise})
	assert.InDelta(t, math.Pi/2, ccw[2].Rotation.Yaw, tolerance)
	assert.InDelta(t, defaultRadius, r3.Norm(ccw[2].Position), tolerance)
}

func TestDollyZoom(t *testing.T) {
	kfs := DollyZoom(PresetOptions{Duration: 4})
	require.Len(t, kfs, 3)

	assert.Equal(t, dollyStartFOV, kfs[0].FOV)
	assert.Equal(t, dollyEndFOV, kfs[2].FOV)
	assert.Equal(t, 2.0, kfs[1].Time)

	pose, ok := Interpolate(kfs, 2)
	require.True(t, ok)
	assert.InDelta(t, (dollyStartDist+dollyEndDist)/2, pose.Position.Z, tolerance)
}

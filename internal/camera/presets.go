package camera

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Direction of travel for orbit presets
type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counterclockwise"
)

// PresetOptions parameterizes the generated camera paths
type PresetOptions struct {
	Duration  float64   // seconds
	Radius    float64   // orbit radius, 5 when zero
	Direction Direction // orbit direction, clockwise when empty
	Target    r3.Vec    // logo position the camera frames
}

// Preset generates camera keyframes (without ids) for a path
type Preset func(opts PresetOptions) []Keyframe

const (
	defaultFOV       = 50.0
	orbitKeyframes   = 8
	defaultRadius    = 5.0
	dollyStartDist   = 8.0
	dollyEndDist     = 3.0
	dollyStartFOV    = 35.0
	dollyEndFOV      = 70.0
	trackingRiseStep = 1.0
)

// NewPreset returns the preset generator registered under name
func NewPreset(name string) (Preset, error) {
	switch name {
	case "orbit", "":
		return Orbit, nil
	case "dolly-zoom":
		return DollyZoom, nil
	case "fly-through":
		return FlyThrough, nil
	case "tracking":
		return Tracking, nil
	default:
		return nil, fmt.Errorf("unknown camera preset: %s", name)
	}
}

// PresetNames lists the names accepted by NewPreset
func PresetNames() []string {
	return []string{"orbit", "dolly-zoom", "fly-through", "tracking"}
}

// Orbit circles the target once at a constant height, looking inward
func Orbit(opts PresetOptions) []Keyframe {
	radius := opts.Radius
	if radius <= 0 {
		radius = defaultRadius
	}
	sign := 1.0
	if opts.Direction == CounterClockwise {
		sign = -1
	}

	keyframes := make([]Keyframe, 0, orbitKeyframes+1)
	for i := 0; i <= orbitKeyframes; i++ {
		t := float64(i) / orbitKeyframes
		angle := t * 2 * math.Pi * sign

		keyframes = append(keyframes, Keyframe{
			Time: t * opts.Duration,
			Pose: Pose{
				Position: r3.Add(opts.Target, r3.Vec{
					X: math.Cos(angle) * radius,
					Z: math.Sin(angle) * radius,
				}),
				Rotation: Euler{Yaw: -angle},
				FOV:      defaultFOV,
			},
		})
	}
	return keyframes
}

// DollyZoom pushes toward the target while widening the field of view
func DollyZoom(opts PresetOptions) []Keyframe {
	at := func(time, dist, fov float64) Keyframe {
		return Keyframe{
			Time: time,
			Pose: Pose{
				Position: r3.Add(opts.Target, r3.Vec{Z: dist}),
				FOV:      fov,
			},
		}
	}

	return []Keyframe{
		at(0, dollyStartDist, dollyStartFOV),
		at(opts.Duration/2, (dollyStartDist+dollyEndDist)/2, (dollyStartFOV+dollyEndFOV)/2),
		at(opts.Duration, dollyEndDist, dollyEndFOV),
	}
}

// FlyThrough sweeps past the target from upper left to lower right
func FlyThrough(opts PresetOptions) []Keyframe {
	target := opts.Target
	return []Keyframe{
		{Time: 0, Pose: Pose{
			Position: r3.Vec{X: -5, Y: 2, Z: 8},
			Rotation: Euler{Pitch: -0.2, Yaw: -0.5},
			FOV:      defaultFOV,
		}},
		{Time: opts.Duration * 0.3, Pose: Pose{
			Position: r3.Add(target, r3.Vec{X: -2, Y: 1, Z: 3}),
			Rotation: Euler{Pitch: -0.1, Yaw: -0.3},
			FOV:      defaultFOV,
		}},
		{Time: opts.Duration * 0.7, Pose: Pose{
			Position: r3.Add(target, r3.Vec{X: 2, Y: -1, Z: 3}),
			Rotation: Euler{Pitch: 0.1, Yaw: 0.3},
			FOV:      defaultFOV,
		}},
		{Time: opts.Duration, Pose: Pose{
			Position: r3.Vec{X: 5, Y: -2, Z: 8},
			Rotation: Euler{Pitch: 0.2, Yaw: 0.5},
			FOV:      defaultFOV,
		}},
	}
}

// Tracking follows the target from a fixed offset with a short rise midway
func Tracking(opts PresetOptions) []Keyframe {
	base := r3.Add(opts.Target, r3.Vec{X: 3, Y: 1, Z: 3})
	return []Keyframe{
		{Time: 0, Pose: Pose{
			Position: base,
			Rotation: Euler{Pitch: -0.2, Yaw: -0.6},
			FOV:      defaultFOV,
		}},
		{Time: opts.Duration / 2, Pose: Pose{
			Position: r3.Add(base, r3.Vec{Y: trackingRiseStep}),
			Rotation: Euler{Pitch: -0.3, Yaw: -0.6},
			FOV:      defaultFOV,
		}},
		{Time: opts.Duration, Pose: Pose{
			Position: base,
			Rotation: Euler{Pitch: -0.2, Yaw: -0.6},
			FOV:      defaultFOV,
		}},
	}
}

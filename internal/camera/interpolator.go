package camera

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// Interpolate calculates the camera pose at queryTime by blending the two
// keyframes that bound it. The blend is eased with EaseInOutCubic; positions
// and field of view are interpolated linearly in eased time, rotations by
// quaternion slerp. It reports false when there is no keyframe at all.
func Interpolate(keyframes []Keyframe, queryTime float64) (Pose, bool) {
	switch len(keyframes) {
	case 0:
		return Pose{}, false
	case 1:
		return keyframes[0].Pose, true
	}

	sorted := Sorted(keyframes)

	// Find surrounding keyframes
	prev, next := -1, -1
	for i := range sorted {
		if sorted[i].Time <= queryTime {
			prev = i
		}
		if sorted[i].Time >= queryTime {
			next = i
			break
		}
	}

	if prev < 0 {
		return sorted[0].Pose, true
	}
	if next < 0 {
		return sorted[len(sorted)-1].Pose, true
	}
	if prev == next {
		return sorted[prev].Pose, true
	}

	a, b := sorted[prev], sorted[next]
	timeDelta := b.Time - a.Time
	if timeDelta == 0 {
		return a.Pose, true
	}

	t := EaseInOutCubic((queryTime - a.Time) / timeDelta)

	return Pose{
		Position: lerpVec(a.Position, b.Position, t),
		Rotation: SlerpRotation(a.Rotation, b.Rotation, t),
		FOV:      lerp(a.FOV, b.FOV, t),
	}, true
}

// Sorted returns a copy of keyframes in time order; ties keep their input order
func Sorted(keyframes []Keyframe) []Keyframe {
	sorted := make([]Keyframe, len(keyframes))
	copy(sorted, keyframes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpVec(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}

package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// gimbalLimit is the |sin(yaw)| above which roll folds into pitch
const gimbalLimit = 0.9999999

// ToQuat converts the orientation to a unit quaternion (XYZ order)
func (e Euler) ToQuat() mgl64.Quat {
	return mgl64.AnglesToQuat(e.Pitch, e.Yaw, e.Roll, mgl64.XYZ).Normalize()
}

// EulerFromQuat decomposes a unit quaternion back into XYZ angles
func EulerFromQuat(q mgl64.Quat) Euler {
	m := q.Normalize().Mat4()

	m11, m12, m13 := m.At(0, 0), m.At(0, 1), m.At(0, 2)
	m22, m23 := m.At(1, 1), m.At(1, 2)
	m32, m33 := m.At(2, 1), m.At(2, 2)

	var e Euler
	e.Yaw = math.Asin(mgl64.Clamp(m13, -1, 1))
	if math.Abs(m13) < gimbalLimit {
		e.Pitch = math.Atan2(-m23, m33)
		e.Roll = math.Atan2(-m12, m11)
	} else {
		e.Pitch = math.Atan2(m32, m22)
		e.Roll = 0
	}
	return e
}

// SlerpRotation blends two orientations along the shortest arc
func SlerpRotation(from, to Euler, t float64) Euler {
	q1, q2 := from.ToQuat(), to.ToQuat()

	// q and -q are the same rotation; pick the hemisphere closest to q1
	if q1.Dot(q2) < 0 {
		q2 = q2.Scale(-1)
	}

	return EulerFromQuat(mgl64.QuatSlerp(q1, q2, t))
}

package camera

import "gonum.org/v1/gonum/spatial/r3"

// Euler holds a camera orientation in radians, applied in XYZ order
type Euler struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

// Pose is the camera state handed to the renderer for one frame
type Pose struct {
	Position r3.Vec  `yaml:"position"`
	Rotation Euler   `yaml:"rotation"`
	FOV      float64 `yaml:"fov"` // degrees
}

// Keyframe represents a camera pose at a specific time
type Keyframe struct {
	ID   string  `yaml:"id"`
	Time float64 `yaml:"time"` // seconds
	Pose `yaml:",inline"`
}

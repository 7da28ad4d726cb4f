package export

import (
	"math"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/ivlev/logo2video/internal/camera"
)

// Frame is everything the renderer needs to draw one output frame
type Frame struct {
	Index      int                  `yaml:"index"`
	Time       float64              `yaml:"time"` // seconds
	Parameters animation.Parameters `yaml:"parameters"`
	Camera     *camera.Pose         `yaml:"camera,omitempty"`
}

// Meta describes the stream handed to an Encoder
type Meta struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	FPS        int     `yaml:"fps"`
	Duration   float64 `yaml:"duration"`
	FrameCount int     `yaml:"frame_count"`
	Audio      string  `yaml:"audio,omitempty"` // soundtrack to mux
	Cues       string  `yaml:"cues,omitempty"`  // generated sound effect track
}

// frameEpsilon absorbs float error in duration*fps, e.g. 0.1*30
const frameEpsilon = 1e-9

// FrameCount is the number of frames covering duration at fps
func FrameCount(duration float64, fps int) int {
	if duration <= 0 || fps <= 0 {
		return 0
	}
	return int(math.Ceil(duration*float64(fps) - frameEpsilon))
}

// FrameTime is the timestamp of frame i
func FrameTime(i, fps int) float64 {
	return float64(i) / float64(fps)
}

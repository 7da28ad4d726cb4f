package export

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Encoder consumes planned frames in index order. A renderer backed encoder
// draws and muxes them; PlanWriter records them for an external renderer.
type Encoder interface {
	Begin(meta Meta) error
	WriteFrame(frame Frame) error
	Close() error
}

// Plan is the document written by PlanWriter
type Plan struct {
	Version string  `yaml:"version"`
	Meta    Meta    `yaml:"meta"`
	Frames  []Frame `yaml:"frames"`
}

const planVersion = "1.0"

// PlanWriter is an Encoder that writes the frame plan as YAML on Close
type PlanWriter struct {
	Path string

	plan  *Plan
	next  int
	began bool
}

func NewPlanWriter(path string) *PlanWriter {
	return &PlanWriter{Path: path}
}

func (w *PlanWriter) Begin(meta Meta) error {
	if w.began {
		return fmt.Errorf("plan writer already started")
	}
	w.began = true
	w.plan = &Plan{
		Version: planVersion,
		Meta:    meta,
		Frames:  make([]Frame, 0, meta.FrameCount),
	}
	return nil
}

func (w *PlanWriter) WriteFrame(frame Frame) error {
	if w.plan == nil {
		return fmt.Errorf("WriteFrame before Begin")
	}
	if frame.Index != w.next {
		return fmt.Errorf("frame %d out of order, expected %d", frame.Index, w.next)
	}
	w.plan.Frames = append(w.plan.Frames, frame)
	w.next++
	return nil
}

// Close writes the collected plan; it fails if frames are missing
func (w *PlanWriter) Close() error {
	if w.plan == nil {
		return fmt.Errorf("Close before Begin")
	}
	if got, want := len(w.plan.Frames), w.plan.Meta.FrameCount; got != want {
		return fmt.Errorf("plan incomplete: %d of %d frames", got, want)
	}

	data, err := yaml.Marshal(w.plan)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(w.Path, data, 0644)
}

// ReadPlan reads a plan written by PlanWriter
func ReadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

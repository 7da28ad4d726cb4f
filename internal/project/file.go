package project

import (
	"fmt"
	"os"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/ivlev/logo2video/internal/audio"
	"github.com/ivlev/logo2video/internal/camera"
	"github.com/ivlev/logo2video/internal/scene"
	"gopkg.in/yaml.v3"
)

// FormatVersion is written into every project file
const FormatVersion = "1.0"

// File is a saved editing session
type File struct {
	Version  string              `yaml:"version"`
	Logo     string              `yaml:"logo,omitempty"` // path of the uploaded logo
	Audio    audio.Selection     `yaml:"audio"`
	Effects  *audio.SoundEffects `yaml:"sound_effects,omitempty"` // nil: use the configured defaults
	Settings animation.Settings  `yaml:"settings"`
	Camera   []camera.Keyframe   `yaml:"camera,omitempty"`
	Scene    []scene.Element     `yaml:"scene,omitempty"`
}

// New creates a project around settings and a camera path
func New(settings animation.Settings, cameraPath []camera.Keyframe) *File {
	return &File{
		Version:  FormatVersion,
		Settings: settings,
		Camera:   cameraPath,
	}
}

// Default is the project a fresh editor starts with
func Default() *File {
	return New(animation.DefaultSettings(), nil)
}

// SoundEffects returns the cue categories saved with the project, or
// fallback when the project never chose any
func (f *File) SoundEffects(fallback audio.SoundEffects) audio.SoundEffects {
	if f.Effects == nil {
		return fallback
	}
	return *f.Effects
}

// Write writes a project to a YAML file
func Write(f *File, path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Read reads a project from a YAML file and validates its settings
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Version == "" {
		f.Version = FormatVersion
	}
	if f.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported project version %q", f.Version)
	}
	if err := f.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	for _, el := range f.Scene {
		if err := el.Validate(); err != nil {
			return nil, fmt.Errorf("scene element %s: %w", el.ID, err)
		}
	}
	return &f, nil
}

package config

import (
	"fmt"
	"time"

	"github.com/ivlev/logo2video/internal/audio"
	"github.com/ivlev/logo2video/internal/scene"
)

type Config struct {
	ProjectPath  string
	ProjectsDir  string
	LogoPath     string
	LogoDir      string // searched for the newest logo when none is given
	PlanOutput   string
	CueOutput    string
	Width        int
	Height       int
	FPS          int
	Workers      int
	CameraPreset string
	Format       string
	SampleTime   float64 // < 0 when no snapshot was requested
	AudioLibrary string
	AudioSync    bool
	Effects      audio.SoundEffects
	Recommend    bool
	AutoEffect   bool
	PreviewFor   time.Duration
	AddElements  []string
	Autosave     bool
	ShowStats    bool
	StatsLog     string
	BuildVersion string
}

// Default returns the configuration used when no flags are given
func Default() *Config {
	return &Config{
		ProjectsDir:  "projects",
		LogoDir:      "assets/logos",
		Width:        1280,
		Height:       720,
		FPS:          30,
		SampleTime:   -1,
		AudioLibrary: "assets/audio",
		AudioSync:    true,
		Effects:      audio.SoundEffects{Rotation: true, Scale: true, Particle: true},
		StatsLog:     "benchmark.log",
		BuildVersion: "dev",
	}
}

// Validate checks the export parameters
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be > 0, got %d", c.FPS)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height)
	}
	if c.Width%2 != 0 || c.Height%2 != 0 {
		return fmt.Errorf("resolution %dx%d must be even", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	if c.PreviewFor < 0 {
		return fmt.Errorf("preview length must be >= 0, got %v", c.PreviewFor)
	}
	for _, name := range c.AddElements {
		if _, err := scene.ParseType(name); err != nil {
			return err
		}
	}
	return nil
}

// ApplyPreset sets the output resolution for a named aspect ratio
func (c *Config) ApplyPreset(name string) error {
	switch name {
	case "":
	case "16:9":
		c.Width, c.Height = 1280, 720
	case "9:16":
		c.Width, c.Height = 720, 1280
	case "4:5":
		c.Width, c.Height = 1080, 1350
	case "1:1":
		c.Width, c.Height = 1080, 1080
	default:
		return fmt.Errorf("unknown format preset: %s", name)
	}
	return nil
}

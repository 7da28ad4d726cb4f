package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/ivlev/logo2video/internal/audio"
	"github.com/ivlev/logo2video/internal/config"
	"github.com/ivlev/logo2video/internal/project"
)

// Stats are the timings of the last Run
type Stats struct {
	Frames   int
	Total    time.Duration
	Planning time.Duration
	Cues     time.Duration
	Encoding time.Duration
}

// Job exports one project: it plans every frame, renders the sound effect
// cue track and streams the frames into an Encoder.
type Job struct {
	Config  *config.Config
	Project *project.File
	Encoder Encoder
	Planner *Planner
	Library audio.Library

	stats Stats
}

func NewJob(cfg *config.Config, f *project.File, enc Encoder) *Job {
	return &Job{
		Config:  cfg,
		Project: f,
		Encoder: enc,
		Planner: NewPlanner(cfg.Workers),
		Library: audio.Library{Dir: cfg.AudioLibrary},
	}
}

func (j *Job) Stats() Stats {
	return j.stats
}

func (j *Job) Run(ctx context.Context) error {
	startTime := time.Now()
	cfg := j.Config
	settings := j.Project.Settings

	soundtrack, hasAudio := j.Library.Resolve(j.Project.Audio)
	if hasAudio && cfg.AudioSync {
		d, err := audio.Duration(soundtrack)
		switch {
		case err != nil:
			log.Printf("[!] Failed to read audio duration of %s: %v", soundtrack, err)
		case d > 0:
			settings.Duration = d
			fmt.Printf("[*] Duration set from audio: %.2fs\n", d)
		}
	}

	meta := Meta{
		Width:      cfg.Width,
		Height:     cfg.Height,
		FPS:        cfg.FPS,
		Duration:   settings.Duration,
		FrameCount: FrameCount(settings.Duration, cfg.FPS),
	}
	if hasAudio {
		meta.Audio = soundtrack
	}

	fmt.Println("--- [LOGO2VIDEO: EXPORT] ---")
	fmt.Printf("[*] Mode: %s | Keyframes: %d | Camera keyframes: %d\n",
		settings.RenderMode, len(settings.Keyframes), len(j.Project.Camera))
	fmt.Printf("[*] Resolution: %dx%d @ %d FPS | Duration: %.2fs | Frames: %d\n",
		meta.Width, meta.Height, meta.FPS, meta.Duration, meta.FrameCount)
	fmt.Println("-----------------------------")

	planStart := time.Now()
	step := max(1, meta.FrameCount/10)
	frames, err := j.Planner.Plan(ctx, settings, j.Project.Camera, cfg.FPS, func(done, total int) {
		if done%step == 0 || done == total {
			fmt.Printf("[>] Planned: %d/%d\n", done, total)
		}
	})
	if err != nil {
		return fmt.Errorf("frame planning failed: %w", err)
	}
	planTime := time.Since(planStart)

	cueStart := time.Now()
	if cfg.CueOutput != "" {
		written, err := j.writeCues(settings)
		if err != nil {
			return err
		}
		if written {
			meta.Cues = cfg.CueOutput
		}
	}
	cueTime := time.Since(cueStart)

	encodeStart := time.Now()
	if err := j.encode(ctx, meta, frames); err != nil {
		return err
	}
	encodeTime := time.Since(encodeStart)

	j.stats = Stats{
		Frames:   len(frames),
		Total:    time.Since(startTime),
		Planning: planTime,
		Cues:     cueTime,
		Encoding: encodeTime,
	}
	if cfg.ShowStats {
		j.report()
	}
	return nil
}

func (j *Job) writeCues(settings animation.Settings) (bool, error) {
	triggers := audio.Triggers(settings).Only(j.Project.SoundEffects(j.Config.Effects))
	if triggers.Count() == 0 {
		fmt.Println("[*] No sound effect cues to render")
		return false, nil
	}

	if dir := filepath.Dir(j.Config.CueOutput); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, err
		}
	}
	if err := audio.WriteCueTrack(j.Config.CueOutput, triggers, settings.Duration); err != nil {
		return false, fmt.Errorf("cue track: %w", err)
	}
	fmt.Printf("[*] Cue track: %d cues -> %s\n", triggers.Count(), j.Config.CueOutput)
	return true, nil
}

func (j *Job) encode(ctx context.Context, meta Meta, frames []Frame) error {
	if err := j.Encoder.Begin(meta); err != nil {
		return fmt.Errorf("encoder: %w", err)
	}
	for _, frame := range frames {
		if err := ctx.Err(); err != nil {
			j.Encoder.Close()
			return err
		}
		if err := j.Encoder.WriteFrame(frame); err != nil {
			j.Encoder.Close()
			return fmt.Errorf("encoder: %w", err)
		}
	}
	if err := j.Encoder.Close(); err != nil {
		return fmt.Errorf("encoder: %w", err)
	}
	return nil
}

func (j *Job) report() {
	s := j.stats
	fps := float64(s.Frames) / s.Total.Seconds()

	fmt.Printf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Planning: %.2fs\n"+
			"Cue Track: %.2fs\n"+
			"Encoding: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"----------------------------\n",
		j.Config.BuildVersion, s.Total.Seconds(), s.Planning.Seconds(), s.Cues.Seconds(), s.Encoding.Seconds(), fps,
	)

	if j.Config.StatsLog == "" {
		return
	}
	logEntry := fmt.Sprintf("[%s] Build: %s | Frames: %d | Total: %.2fs | Plan: %.2fs | Encode: %.2fs | FPS: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		j.Config.BuildVersion,
		s.Frames,
		s.Total.Seconds(),
		s.Planning.Seconds(),
		s.Encoding.Seconds(),
		fps,
	)

	f, err := os.OpenFile(j.Config.StatsLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Printf("[!] Failed to write %s: %v\n", j.Config.StatsLog, err)
		return
	}
	defer f.Close()
	f.WriteString(logEntry)
}

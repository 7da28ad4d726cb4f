package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/ivlev/logo2video/internal/audio"
	"github.com/ivlev/logo2video/internal/audio/device"
	"github.com/ivlev/logo2video/internal/camera"
	"github.com/ivlev/logo2video/internal/config"
	"github.com/ivlev/logo2video/internal/export"
	"github.com/ivlev/logo2video/internal/logo"
	"github.com/ivlev/logo2video/internal/project"
	"github.com/ivlev/logo2video/internal/recommend"
	"github.com/ivlev/logo2video/internal/scene"
	"github.com/ivlev/logo2video/internal/session"
	"github.com/ivlev/logo2video/internal/system"
	"github.com/pborman/getopt"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

var buildVersion = "dev"

const autosaveName = "autosave"

func main() {
	cfg := config.Default()
	cfg.BuildVersion = buildVersion

	projectPtr := getopt.StringLong("project", 'p', "", "project file (default: newest in projects/)")
	logoPtr := getopt.StringLong("logo", 'l', "", "logo to analyze: png, jpg, svg or pdf")
	samplePtr := getopt.StringLong("sample", 's', "", "print the interpolated state at this time in seconds")
	presetPtr := getopt.StringLong("preset", 0, "", "replace the camera path: orbit, dolly-zoom, fly-through, tracking")
	formatPtr := getopt.StringLong("format", 0, "", "output format: 16:9, 9:16, 4:5, 1:1")
	fpsPtr := getopt.IntLong("fps", 0, cfg.FPS, "frames per second")
	workersPtr := getopt.IntLong("workers", 'w', 0, "planning workers (0: one per physical core)")
	planPtr := getopt.StringLong("plan", 0, "", "write the frame plan to this YAML file")
	cuesPtr := getopt.StringLong("cues", 0, "", "write the sound effect cue track to this WAV file")
	recommendPtr := getopt.BoolLong("recommend", 'r', "print effect recommendations")
	applyPtr := getopt.StringLong("apply", 0, "", "apply the recommendation with this id")
	autoPtr := getopt.BoolLong("auto", 'a', "generate a full animation from the logo")
	elementsPtr := getopt.StringLong("add-elements", 0, "", "add scene elements: cube, sphere, cylinder, plane (comma separated)")
	effectsPtr := getopt.StringLong("effects", 0, "", "sound effect cues: rotation, scale, particle or none (comma separated)")
	previewPtr := getopt.StringLong("preview", 0, "", "play the soundtrack for this many seconds")
	savePtr := getopt.StringLong("save", 0, "", "write the resulting project to this file")
	autosavePtr := getopt.BoolLong("autosave", 0, "keep a copy of the project in the user data directory")
	noSyncPtr := getopt.BoolLong("no-audio-sync", 0, "keep the timeline duration instead of the soundtrack length")
	statsPtr := getopt.BoolLong("stats", 0, "print a performance report")
	helpPtr := getopt.BoolLong("help", 'h', "show this help")
	getopt.Parse()

	if *helpPtr {
		getopt.Usage()
		return
	}

	cfg.ProjectPath = *projectPtr
	cfg.LogoPath = *logoPtr
	cfg.CameraPreset = *presetPtr
	cfg.Format = *formatPtr
	cfg.FPS = *fpsPtr
	cfg.Workers = *workersPtr
	cfg.PlanOutput = *planPtr
	cfg.CueOutput = *cuesPtr
	cfg.Recommend = *recommendPtr || *applyPtr != ""
	cfg.AutoEffect = *autoPtr
	if *elementsPtr != "" {
		for _, name := range strings.Split(*elementsPtr, ",") {
			cfg.AddElements = append(cfg.AddElements, strings.TrimSpace(name))
		}
	}
	var effects *audio.SoundEffects
	if *effectsPtr != "" {
		e, err := audio.ParseEffects(*effectsPtr)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
		cfg.Effects = e
		effects = &e
	}
	if *previewPtr != "" {
		secs, err := strconv.ParseFloat(*previewPtr, 64)
		if err != nil || secs < 0 {
			log.Fatalf("[-] Invalid preview length %q", *previewPtr)
		}
		cfg.PreviewFor = time.Duration(secs * float64(time.Second))
	}
	cfg.Autosave = *autosavePtr
	cfg.AudioSync = !*noSyncPtr
	cfg.ShowStats = *statsPtr
	if *samplePtr != "" {
		t, err := strconv.ParseFloat(*samplePtr, 64)
		if err != nil || t < 0 {
			log.Fatalf("[-] Invalid sample time %q", *samplePtr)
		}
		cfg.SampleTime = t
	}

	if err := cfg.ApplyPreset(cfg.Format); err != nil {
		log.Fatalf("[-] %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Invalid configuration: %v", err)
	}

	var store *project.Store
	if cfg.Autosave {
		store = project.OpenStore(project.AppName)
	} else {
		store = project.NewStore(nil)
	}

	f, err := loadProject(cfg, store)
	if err != nil {
		log.Fatalf("[-] Failed to load project: %v", err)
	}
	if cfg.LogoPath != "" {
		f.Logo = cfg.LogoPath
	}
	if f.Logo == "" && (cfg.Recommend || cfg.AutoEffect) {
		if latest, err := system.FindLatestLogo(cfg.LogoDir); err == nil {
			f.Logo = latest
			fmt.Printf("[*] Selected logo: %s\n", latest)
		}
	}
	if effects != nil {
		f.Effects = effects
	}

	var player audio.Player
	if cfg.PreviewFor > 0 {
		player = device.NewPlayer()
	}
	c, err := f.Open(player)
	if err != nil {
		log.Fatalf("[-] Failed to open session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, name := range cfg.AddElements {
		t, _ := scene.ParseType(name) // checked by Validate
		id, err := c.Scene.Add(t)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
		fmt.Printf("[*] Scene element added: %s (%s)\n", id, t)
	}

	if cfg.AutoEffect {
		if err := autoEffect(c, f.Logo); err != nil {
			log.Fatalf("[-] Auto effect failed: %v", err)
		}
	}

	if cfg.CameraPreset != "" {
		if err := applyCameraPreset(c, cfg.CameraPreset); err != nil {
			log.Fatalf("[-] %v", err)
		}
	}

	if cfg.Recommend {
		if err := recommendEffects(c, f.Logo, *applyPtr); err != nil {
			log.Fatalf("[-] %v", err)
		}
	}

	if cfg.SampleTime >= 0 {
		if err := printSample(c, cfg.SampleTime); err != nil {
			log.Fatalf("[-] Failed to sample timeline: %v", err)
		}
	}

	if cfg.PreviewFor > 0 {
		if err := previewSoundtrack(ctx, c, audio.Library{Dir: cfg.AudioLibrary}, f.Audio, cfg.PreviewFor); err != nil {
			log.Printf("[!] Preview failed: %v", err)
		}
	}

	f.Capture(c)

	if *savePtr != "" {
		if err := project.Write(f, *savePtr); err != nil {
			log.Fatalf("[-] Failed to save project: %v", err)
		}
		fmt.Printf("[*] Project saved: %s\n", *savePtr)
	}
	if err := store.Save(autosaveName, f); err != nil {
		log.Printf("[!] Autosave failed: %v", err)
	}

	if cfg.PlanOutput == "" {
		return
	}

	job := export.NewJob(cfg, f, export.NewPlanWriter(cfg.PlanOutput))
	if err := job.Run(ctx); err != nil {
		log.Fatalf("[-] Export failed: %v", err)
	}

	fmt.Printf("[+++] Success! Frame plan: %s\n", cfg.PlanOutput)
}

// loadProject picks the explicit project, the newest file in the projects
// directory, the autosave, or a fresh default, in that order
func loadProject(cfg *config.Config, store *project.Store) (*project.File, error) {
	path := cfg.ProjectPath
	if path == "" {
		latest, err := project.FindLatest(cfg.ProjectsDir)
		if err == nil {
			path = latest
			fmt.Printf("[*] Selected project: %s\n", path)
		}
	}
	if path != "" {
		return project.Read(path)
	}

	f, ok, err := store.Load(autosaveName)
	if err != nil {
		log.Printf("[!] Ignoring autosave: %v", err)
	}
	if ok {
		fmt.Println("[*] Restored autosaved project")
		return f, nil
	}

	fmt.Println("[*] Starting from the default project")
	f = project.Default()
	if track, err := system.FindLatestAudio(cfg.AudioLibrary); err == nil {
		f.Audio = audio.Selection{CustomPath: track}
		fmt.Printf("[*] Selected audio: %s\n", track)
	}
	return f, nil
}

func applyCameraPreset(c *session.Controller, name string) error {
	preset, err := camera.NewPreset(name)
	if err != nil {
		return err
	}

	s := c.Settings()
	c.Camera.ApplyPreset(preset, camera.PresetOptions{
		Duration: s.Duration,
		Target:   r3.Vec{X: s.PositionX, Y: s.PositionY, Z: s.PositionZ},
	})
	fmt.Printf("[*] Camera preset %s: %d keyframes\n", name, len(c.Camera.Snapshot()))
	return nil
}

func analyzeLogo(path string) (logo.Stats, error) {
	if path == "" {
		return logo.Stats{}, fmt.Errorf("no logo given")
	}
	img, err := logo.Load(path)
	if err != nil {
		return logo.Stats{}, err
	}

	s := logo.Analyze(img)
	fmt.Printf("[*] Logo %dx%d | colorfulness %.2f | brightness %.2f | complexity %.2f | colors %v\n",
		s.Width, s.Height, s.Colorfulness, s.Brightness, s.Complexity, s.DominantColors)
	return s, nil
}

// autoEffect replaces the timeline with a profile generated from the logo,
// keeping the current workflow mode
func autoEffect(c *session.Controller, logoPath string) error {
	stats, err := analyzeLogo(logoPath)
	if err != nil {
		return err
	}

	err = c.Replace(func(s animation.Settings) animation.Settings {
		return recommend.Profile(stats, s, s.RenderMode)
	})
	if err != nil {
		return err
	}

	s := c.Settings()
	fmt.Printf("[+++] Generated %s profile: %d keyframes over %.1fs\n", s.RenderMode, len(s.Keyframes), s.Duration)
	return nil
}

func previewSoundtrack(ctx context.Context, c *session.Controller, lib audio.Library, sel audio.Selection, d time.Duration) error {
	path, ok := lib.Resolve(sel)
	if !ok {
		return fmt.Errorf("no soundtrack selected")
	}
	if err := c.PlayPreview(path); err != nil {
		return err
	}
	defer c.StopPreview()

	fmt.Printf("[>] Previewing %s for %v\n", path, d)
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
	return nil
}

func recommendEffects(c *session.Controller, logoPath, applyID string) error {
	var stats *logo.Stats
	if s, err := analyzeLogo(logoPath); err != nil {
		log.Printf("[!] Logo analysis skipped: %v", err)
	} else {
		stats = &s
	}

	recs, err := recommend.For(recommend.Input{
		Settings:      c.Settings(),
		Logo:          stats,
		SceneElements: c.Scene.Len(),
	})
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("[*] No recommendations")
	}
	for _, rec := range recs {
		fmt.Printf("[*] [%s/%s] %s: %s. %s\n", rec.Priority, rec.Category, rec.ID, rec.Title, rec.Description)
	}

	if applyID == "" {
		return nil
	}
	for _, rec := range recs {
		if rec.ID != applyID {
			continue
		}
		if err := c.Apply(rec.Patches...); err != nil {
			return fmt.Errorf("apply %s: %w", applyID, err)
		}
		fmt.Printf("[+++] Applied: %s\n", rec.Title)
		return nil
	}
	return fmt.Errorf("no recommendation with id %s", applyID)
}

func printSample(c *session.Controller, t float64) error {
	snap, err := c.SnapshotAt(t)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

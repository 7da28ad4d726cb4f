package export

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ivlev/logo2video/internal/animation"
	"github.com/ivlev/logo2video/internal/camera"
	"github.com/ivlev/logo2video/internal/system"
	"golang.org/x/sync/errgroup"
)

// Progress is told how many frames are done. It is called from worker
// goroutines.
type Progress func(done, total int)

// Planner samples the timeline and camera path for every output frame
type Planner struct {
	Workers int // <= 0 leaves the pool unbounded
}

// NewPlanner creates a planner with a bounded worker pool. Zero workers
// means one per physical core.
func NewPlanner(workers int) *Planner {
	if workers <= 0 {
		workers = system.DefaultWorkers()
	}
	return &Planner{Workers: workers}
}

// Plan computes all frames of settings at fps. Frames are returned in index
// order. The first interpolation error or a cancelled ctx aborts the plan.
func (p *Planner) Plan(ctx context.Context, settings animation.Settings, path []camera.Keyframe, fps int, progress Progress) ([]Frame, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be > 0, got %d", fps)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	total := FrameCount(settings.Duration, fps)
	frames := make([]Frame, total)
	cam := camera.Sorted(path)

	g, gctx := errgroup.WithContext(ctx)
	if p.Workers > 0 {
		g.SetLimit(p.Workers)
	}

	var done atomic.Int64
	for i := 0; i < total; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			t := FrameTime(i, fps)
			s, err := animation.Interpolate(settings, t)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}

			frame := Frame{Index: i, Time: t, Parameters: s.Parameters}
			if pose, ok := camera.Interpolate(cam, t); ok {
				frame.Camera = &pose
			}
			frames[i] = frame

			n := done.Add(1)
			if progress != nil {
				progress(int(n), total)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return frames, nil
}

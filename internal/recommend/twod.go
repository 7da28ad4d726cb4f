package recommend

import (
	"github.com/ivlev/logo2video/internal/animation"
	"gonum.org/v1/gonum/spatial/r3"
)

// TwoD recommends flat motion and fades. It never suggests rotation.
type TwoD struct{}

func (TwoD) Analyze(in Input) []Recommendation {
	s := in.Settings
	var recs []Recommendation
	stops := []float64{0, s.Duration / 2, s.Duration}

	if s.PositionX == 0 && s.PositionY == 0 {
		path := []r3.Vec{{X: -1}, {Y: 0.5}, {X: 1}}
		recs = append(recs, Recommendation{
			ID:          "add-movement-2d",
			Title:       "Add Movement",
			Description: "Add subtle position changes to create dynamic motion in your 2D animation",
			Priority:    PriorityMedium,
			Category:    CategoryAnimation,
			Patches: []Patch{keyframesAt("rec-kf", s.Parameters, stops,
				func(i int, p *animation.Parameters) {
					p.PositionX, p.PositionY = path[i].X, path[i].Y
				})},
		})
	}

	if s.Scale == 1 && len(s.Keyframes) == 0 {
		scales := []float64{0.5, 1.2, 1}
		recs = append(recs, Recommendation{
			ID:          "add-scale-animation",
			Title:       "Add Scale Animation",
			Description: "Create a zoom effect by animating the scale over time",
			Priority:    PriorityMedium,
			Category:    CategoryAnimation,
			Patches: []Patch{keyframesAt("rec-scale", s.Parameters, stops,
				func(i int, p *animation.Parameters) { p.Scale = scales[i] })},
		})
	}

	recs = append(recs, logoEffects(in, "-2d")...)

	if s.Opacity == 1 && len(s.Keyframes) == 0 {
		fade := []float64{0, 1, 1, 0}
		recs = append(recs, Recommendation{
			ID:          "add-fade-2d",
			Title:       "Add Fade Effect",
			Description: "Create a smooth entrance and exit with opacity animation",
			Priority:    PriorityLow,
			Category:    CategoryAnimation,
			Patches: []Patch{keyframesAt("rec-fade", s.Parameters,
				[]float64{0, s.Duration * 0.2, s.Duration * 0.8, s.Duration},
				func(i int, p *animation.Parameters) { p.Opacity = fade[i] })},
		})
	}

	return recs
}

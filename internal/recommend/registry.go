package recommend

import (
	"fmt"
	"strings"

	"github.com/ivlev/logo2video/internal/animation"
)

// NewAnalyzer creates the analyzer for a workflow mode
func NewAnalyzer(mode string) (Analyzer, error) {
	switch strings.ToUpper(mode) {
	case string(animation.Mode3D), "":
		return ThreeD{}, nil
	case string(animation.Mode2D):
		return TwoD{}, nil
	default:
		return nil, fmt.Errorf("unknown workflow mode: %s", mode)
	}
}

// For analyzes in with the analyzer matching its render mode
func For(in Input) ([]Recommendation, error) {
	a, err := NewAnalyzer(string(in.Settings.RenderMode))
	if err != nil {
		return nil, err
	}
	return a.Analyze(in), nil
}

package animation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedColor is returned for tint strings that are not #rgb or #rrggbb
var ErrMalformedColor = errors.New("malformed hex color")

type rgb255 struct {
	r, g, b float64
}

func parseColor(s string) (rgb255, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 3 {
		return rgb255{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}
	if strings.IndexFunc(hex, func(r rune) bool { return !isHexDigit(r) }) >= 0 {
		return rgb255{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return rgb255{}, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}
	r, g, b := c.RGB255()
	return rgb255{float64(r), float64(g), float64(b)}, nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// LerpColor blends two hex colors channel by channel, rounding each channel
// to the nearest integer.
func LerpColor(from, to string, t float64) (string, error) {
	a, err := parseColor(from)
	if err != nil {
		return "", err
	}
	b, err := parseColor(to)
	if err != nil {
		return "", err
	}

	channel := func(x, y float64) float64 {
		v := math.Round(lerp(x, y, t))
		return math.Max(0, math.Min(255, v)) / 255
	}

	c := colorful.Color{
		R: channel(a.r, b.r),
		G: channel(a.g, b.g),
		B: channel(a.b, b.b),
	}
	return c.Hex(), nil
}

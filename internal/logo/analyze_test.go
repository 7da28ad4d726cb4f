package logo

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fill(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestAnalyzeSolidRed(t *testing.T) {
	stats := Analyze(fill(40, 20, color.NRGBA{R: 255, A: 255}))

	assert.Equal(t, 40, stats.Width)
	assert.Equal(t, 20, stats.Height)
	assert.InDelta(t, 2.0, stats.AspectRatio, 1e-9)
	assert.InDelta(t, 1.0/3, stats.Brightness, 1e-9)
	assert.InDelta(t, 1.0, stats.Colorfulness, 1e-9)
	assert.Equal(t, 0.0, stats.Complexity)
	assert.Equal(t, []string{"#e00000"}, stats.DominantColors)
}

func TestAnalyzeIgnoresTransparentPixels(t *testing.T) {
	img := fill(10, 10, color.NRGBA{})
	for y := 0; y < 10; y++ {
		img.SetNRGBA(0, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	}

	stats := Analyze(img)
	assert.InDelta(t, 1.0, stats.Brightness, 1e-9)
	assert.Equal(t, 0.0, stats.Colorfulness)
	assert.Equal(t, []string{"#e0e0e0"}, stats.DominantColors)
}

func TestAnalyzeFullyTransparent(t *testing.T) {
	stats := Analyze(fill(4, 4, color.NRGBA{}))
	assert.Equal(t, 0.0, stats.Brightness)
	assert.Empty(t, stats.DominantColors)
}

func TestAnalyzeStripesAreComplex(t *testing.T) {
	img := fill(20, 20, color.NRGBA{A: 255})
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x += 2 {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	stats := Analyze(img)
	assert.Equal(t, 1.0, stats.Complexity)
	assert.Len(t, stats.DominantColors, 2)
}

func TestAnalyzeDominantOrder(t *testing.T) {
	img := fill(10, 10, color.NRGBA{B: 255, A: 255})
	for x := 0; x < 3; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{G: 255, A: 255})
	}
	img.SetNRGBA(9, 9, color.NRGBA{R: 255, A: 255})

	stats := Analyze(img)
	assert.Equal(t, []string{"#0000e0", "#00e000", "#e00000"}, stats.DominantColors)
}

func TestAnalyzeDownscalesLargeImages(t *testing.T) {
	stats := Analyze(fill(2048, 1024, color.NRGBA{G: 200, A: 255}))

	assert.Equal(t, 2048, stats.Width)
	assert.Equal(t, 1024, stats.Height)
	assert.InDelta(t, 1.0, stats.Colorfulness, 1e-9)

	small := downscale(fill(2048, 1024, color.NRGBA{A: 255}), maxAnalysisSide)
	assert.Equal(t, image.Rect(0, 0, 512, 256), small.Bounds())
}

func TestLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, fill(30, 10, color.NRGBA{R: 10, G: 20, B: 30, A: 255})))
	require.NoError(t, f.Close())

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	w, h, err := src.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, 30.0, w)
	assert.Equal(t, 10.0, h)

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 10), img.Bounds())
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("logo.gif")
	assert.Error(t, err)

	_, err = Open(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

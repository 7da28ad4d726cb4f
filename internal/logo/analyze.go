package logo

import (
	"image"
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// Stats describes the characteristics of a logo that drive effect
// recommendations. Brightness, Colorfulness and Complexity are in [0,1].
type Stats struct {
	Width          int
	Height         int
	AspectRatio    float64
	DominantColors []string // up to three, most frequent first
	Complexity     float64  // edge density
	Brightness     float64
	Colorfulness   float64 // mean HSV saturation
}

const (
	maxAnalysisSide = 512
	alphaCutoff     = 128
	edgeThreshold   = 100 // summed channel difference between neighbours
	edgeDensityFull = 0.3 // edge share that counts as fully complex
	quantStep       = 32
	dominantCount   = 3
)

// Analyze measures img. Pixels with alpha below one half are ignored; large
// images are downscaled first.
func Analyze(img image.Image) Stats {
	bounds := img.Bounds()
	stats := Stats{Width: bounds.Dx(), Height: bounds.Dy()}
	if stats.Width == 0 || stats.Height == 0 {
		return stats
	}
	stats.AspectRatio = float64(stats.Width) / float64(stats.Height)

	rgba := downscale(img, maxAnalysisSide)
	rb := rgba.Bounds()

	counts := make(map[[3]uint8]int)
	var brightness, saturation float64
	opaque, edges := 0, 0

	for y := rb.Min.Y; y < rb.Max.Y; y++ {
		for x := rb.Min.X; x < rb.Max.X; x++ {
			c := color.NRGBAModel.Convert(rgba.At(x, y)).(color.NRGBA)
			if c.A < alphaCutoff {
				continue
			}
			opaque++

			r, g, b := int(c.R), int(c.G), int(c.B)
			brightness += float64(r+g+b) / (3 * 255)

			hi, lo := max(r, g, b), min(r, g, b)
			if hi > 0 {
				saturation += float64(hi-lo) / float64(hi)
			}

			counts[[3]uint8{quantize(c.R), quantize(c.G), quantize(c.B)}]++

			if x+1 < rb.Max.X {
				n := color.NRGBAModel.Convert(rgba.At(x+1, y)).(color.NRGBA)
				diff := abs(r-int(n.R)) + abs(g-int(n.G)) + abs(b-int(n.B))
				if diff > edgeThreshold {
					edges++
				}
			}
		}
	}

	if opaque == 0 {
		return stats
	}

	stats.Brightness = brightness / float64(opaque)
	stats.Colorfulness = saturation / float64(opaque)
	stats.Complexity = min(1, float64(edges)/(float64(opaque)*edgeDensityFull))
	stats.DominantColors = dominant(counts, dominantCount)
	return stats
}

// downscale fits img into a maxSide square, keeping the aspect ratio
func downscale(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	if w >= h {
		h = max(1, h*maxSide/w)
		w = maxSide
	} else {
		w = max(1, w*maxSide/h)
		h = maxSide
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func dominant(counts map[[3]uint8]int, n int) []string {
	keys := make([][3]uint8, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := counts[keys[i]], counts[keys[j]]
		if ci != cj {
			return ci > cj
		}
		// deterministic order for ties
		a, b := keys[i], keys[j]
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})

	if len(keys) > n {
		keys = keys[:n]
	}
	hexes := make([]string, len(keys))
	for i, k := range keys {
		hexes[i] = colorful.Color{
			R: float64(k[0]) / 255,
			G: float64(k[1]) / 255,
			B: float64(k[2]) / 255,
		}.Hex()
	}
	return hexes
}

func quantize(v uint8) uint8 {
	return v / quantStep * quantStep
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package logo

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Source is an uploaded logo that can be rasterized for analysis
type Source interface {
	Dimensions() (width, height float64, err error)
	Render(dpi int) (image.Image, error)
	Close() error
}

// DefaultDPI is used to rasterize vector logos
const DefaultDPI = 150

// Open picks a source implementation from the file extension. Raster logos
// are decoded directly, PDF and SVG logos go through MuPDF.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		return &ImageSource{path: path}, nil
	case ".pdf", ".svg":
		return NewVectorSource(path)
	default:
		return nil, fmt.Errorf("unsupported logo format: %s", filepath.Ext(path))
	}
}

// Load opens path and rasterizes it at DefaultDPI
func Load(path string) (image.Image, error) {
	src, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	img, err := src.Render(DefaultDPI)
	if err != nil {
		return nil, fmt.Errorf("render logo %s: %w", path, err)
	}
	return img, nil
}

type ImageSource struct {
	path string
}

func (s *ImageSource) Dimensions() (float64, float64, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}

// Render decodes the file; raster logos ignore dpi
func (s *ImageSource) Render(dpi int) (image.Image, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (s *ImageSource) Close() error {
	return nil
}

// VectorSource renders the first page of a PDF or SVG document
type VectorSource struct {
	doc *fitz.Document
}

func NewVectorSource(path string) (*VectorSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	if doc.NumPage() == 0 {
		doc.Close()
		return nil, fmt.Errorf("%s has no pages", path)
	}
	return &VectorSource{doc: doc}, nil
}

func (v *VectorSource) Dimensions() (float64, float64, error) {
	rect, err := v.doc.Bound(0)
	if err != nil {
		return 0, 0, err
	}
	return float64(rect.Dx()), float64(rect.Dy()), nil
}

func (v *VectorSource) Render(dpi int) (image.Image, error) {
	return v.doc.ImageDPI(0, float64(dpi))
}

func (v *VectorSource) Close() error {
	return v.doc.Close()
}

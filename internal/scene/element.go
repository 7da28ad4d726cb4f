package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"
)

// ElementType is the primitive shape of a scene element
type ElementType string

const (
	Cube     ElementType = "cube"
	Sphere   ElementType = "sphere"
	Cylinder ElementType = "cylinder"
	Plane    ElementType = "plane"
)

// Material selects how an element is shaded
type Material string

const (
	Standard Material = "standard"
	Metallic Material = "metallic"
	Glass    Material = "glass"
)

// DefaultColor is the tint of a freshly added element
const DefaultColor = "#8b5cf6"

// Element is a primitive placed around the logo in the 3D workflow
type Element struct {
	ID       string      `yaml:"id"`
	Type     ElementType `yaml:"type"`
	Position r3.Vec      `yaml:"position"`
	Scale    r3.Vec      `yaml:"scale"`
	Rotation r3.Vec      `yaml:"rotation"` // radians, XYZ
	Color    string      `yaml:"color"`
	Material Material    `yaml:"material"`
}

// NewElement places a unit element of the given type behind the logo
func NewElement(id string, t ElementType) Element {
	return Element{
		ID:       id,
		Type:     t,
		Position: r3.Vec{Z: -5},
		Scale:    r3.Vec{X: 1, Y: 1, Z: 1},
		Color:    DefaultColor,
		Material: Standard,
	}
}

// ParseType converts a user supplied name into an ElementType
func ParseType(name string) (ElementType, error) {
	switch t := ElementType(name); t {
	case Cube, Sphere, Cylinder, Plane:
		return t, nil
	default:
		return "", fmt.Errorf("unknown scene element type: %s", name)
	}
}

func (e Element) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("missing id")
	}
	if _, err := ParseType(string(e.Type)); err != nil {
		return err
	}
	switch e.Material {
	case Standard, Metallic, Glass:
	default:
		return fmt.Errorf("unknown material: %s", e.Material)
	}
	if e.Scale.X <= 0 || e.Scale.Y <= 0 || e.Scale.Z <= 0 {
		return fmt.Errorf("scale must be positive, got %v", e.Scale)
	}
	if _, err := colorful.Hex(e.Color); err != nil {
		return fmt.Errorf("color %q: %w", e.Color, err)
	}
	return nil
}

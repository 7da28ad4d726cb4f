package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestNewElement(t *testing.T) {
	el := NewElement("element-1", Cube)

	assert.Equal(t, r3.Vec{Z: -5}, el.Position)
	assert.Equal(t, r3.Vec{X: 1, Y: 1, Z: 1}, el.Scale)
	assert.Equal(t, DefaultColor, el.Color)
	assert.Equal(t, Standard, el.Material)
	assert.NoError(t, el.Validate())
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"cube", "sphere", "cylinder", "plane"} {
		got, err := ParseType(name)
		require.NoError(t, err)
		assert.Equal(t, ElementType(name), got)
	}

	_, err := ParseType("torus")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Element)
	}{
		{"missing id", func(e *Element) { e.ID = "" }},
		{"unknown type", func(e *Element) { e.Type = "torus" }},
		{"unknown material", func(e *Element) { e.Material = "wood" }},
		{"flat scale", func(e *Element) { e.Scale.Y = 0 }},
		{"bad color", func(e *Element) { e.Color = "purple" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewElement("element-1", Plane)
			tt.edit(&el)
			assert.Error(t, el.Validate())
		})
	}
}

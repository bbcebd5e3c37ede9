package sdlimdraw

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// NewVertex creates a vertex at (x, y) with texture coordinates (u, v).
func NewVertex(x, y float32, color sdl.Color, u, v float32) sdl.Vertex {
	return sdl.Vertex{
		Position: sdl.FPoint{X: x, Y: y},
		Color:    color,
		TexCoord: sdl.FPoint{X: u, Y: v},
	}
}

func validateGeometry(vertices []sdl.Vertex, indices []int32) error {
	if len(indices) == 0 {
		if len(vertices)%3 != 0 {
			return errors.Errorf("vertex count %d is not a multiple of 3", len(vertices))
		}
		return nil
	}

	if len(indices)%3 != 0 {
		return errors.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	for n, index := range indices {
		if index < 0 || int(index) >= len(vertices) {
			return errors.Errorf("index %d at %d is out of range [0, %d)", index, n, len(vertices))
		}
	}
	return nil
}

// RenderGeometry renders triangles from vertices, optionally textured.
// With no indices the vertices are taken in triples.
func RenderGeometry(renderer *sdl.Renderer, texture *sdl.Texture, vertices []sdl.Vertex, indices []int32) error {
	if len(vertices) == 0 {
		return nil
	}
	if err := validateGeometry(vertices, indices); err != nil {
		return err
	}

	if len(indices) == 0 {
		indices = nil
	}
	return errors.Wrap(renderer.RenderGeometry(texture, vertices, indices), "render geometry")
}

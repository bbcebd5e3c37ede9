package sdlimdraw

import "github.com/veandco/go-sdl2/sdl"

type geometryOperation struct {
	texture  *sdl.Texture
	vertices []sdl.Vertex
	indices  []int32
}

func (o *geometryOperation) Draw(canvas Canvas) error {
	return canvas.Geometry(o.texture, o.vertices, o.indices)
}

// NewGeometryDrawOperation creates an operation to render triangles.
// The texture must belong to the renderer of the canvas it is drawn on.
func NewGeometryDrawOperation(texture *sdl.Texture, vertices []sdl.Vertex, indices []int32) DrawOperation {
	return &geometryOperation{texture, vertices, indices}
}

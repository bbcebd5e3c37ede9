package sdlimdraw

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestValidateGeometry(t *testing.T) {
	white := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	vertices := []sdl.Vertex{
		NewVertex(0, 0, white, 0, 0),
		NewVertex(10, 0, white, 1, 0),
		NewVertex(10, 10, white, 1, 1),
		NewVertex(0, 10, white, 0, 1),
	}

	tests := []struct {
		name     string
		vertices []sdl.Vertex
		indices  []int32
		wantErr  bool
	}{
		{"triangle", vertices[:3], nil, false},
		{"quad by indices", vertices, []int32{0, 1, 2, 0, 2, 3}, false},
		{"loose vertices", vertices, nil, true},
		{"partial triangle", vertices, []int32{0, 1}, true},
		{"index out of range", vertices, []int32{0, 1, 4}, true},
		{"negative index", vertices, []int32{0, -1, 2}, true},
	}

	for _, tt := range tests {
		err := validateGeometry(tt.vertices, tt.indices)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: validateGeometry() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestNewVertex(t *testing.T) {
	c := sdl.Color{R: 1, G: 2, B: 3, A: 4}
	v := NewVertex(1.5, 2.5, c, 0.25, 0.75)
	if v.Position != (sdl.FPoint{X: 1.5, Y: 2.5}) || v.Color != c || v.TexCoord != (sdl.FPoint{X: 0.25, Y: 0.75}) {
		t.Errorf("NewVertex() = %+v", v)
	}
}

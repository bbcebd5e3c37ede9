package sdlimdraw

import "github.com/veandco/go-sdl2/sdl"

type lineOperation struct {
	points []sdl.FPoint
	color  sdl.Color
}

func (o *lineOperation) Draw(canvas Canvas) error {
	return canvas.Line(o.points, WithColor(o.color))
}

// NewLineDrawOperation creates an operation to draw a polyline.
func NewLineDrawOperation(color sdl.Color, points ...sdl.FPoint) DrawOperation {
	return &lineOperation{points, color}
}

package sdlimdraw

import "github.com/veandco/go-sdl2/sdl"

type circleOperation struct {
	center sdl.Point
	r      int32
	mode   AAMode
	color  sdl.Color
}

func (o *circleOperation) Draw(canvas Canvas) error {
	return canvas.Circle(o.center, o.r, o.mode, WithColor(o.color))
}

// NewCircleDrawOperation creates an operation to draw a circle.
func NewCircleDrawOperation(center sdl.Point, r int32, mode AAMode, color sdl.Color) DrawOperation {
	return &circleOperation{center, r, mode, color}
}

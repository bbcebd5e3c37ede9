package sdlimdraw

import "github.com/veandco/go-sdl2/sdl"

type fillOperation struct {
	rects []sdl.FRect
	color sdl.Color
}

func (o *fillOperation) Draw(canvas Canvas) error {
	return canvas.Fill(o.rects, WithColor(o.color))
}

// NewFillDrawOperation creates an operation to fill the rectangles.
// No rectangles fill the whole canvas.
func NewFillDrawOperation(color sdl.Color, rects ...sdl.FRect) DrawOperation {
	return &fillOperation{rects, color}
}

type rectOperation struct {
	rects []sdl.FRect
	color sdl.Color
}

func (o *rectOperation) Draw(canvas Canvas) error {
	return canvas.Rect(o.rects, WithColor(o.color))
}

// NewRectDrawOperation creates an operation to outline the rectangles.
func NewRectDrawOperation(color sdl.Color, rects ...sdl.FRect) DrawOperation {
	return &rectOperation{rects, color}
}

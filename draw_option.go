package sdlimdraw

import "github.com/veandco/go-sdl2/sdl"

type drawOptions struct {
	color *sdl.Color
}

// DrawOption modifies a single drawing call.
type DrawOption func(*drawOptions)

// WithColor draws with color instead of the current renderer color.
// The renderer color is restored afterwards.
func WithColor(color sdl.Color) DrawOption {
	return func(o *drawOptions) {
		o.color = &color
	}
}

func makeDrawOptions(opts []DrawOption) drawOptions {
	o := drawOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

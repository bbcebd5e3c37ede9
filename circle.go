package sdlimdraw

import (
	"math"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// AAMode selects the circle anti-aliasing algorithm.
type AAMode int

const (
	// AANone draws a plain midpoint circle
	AANone AAMode = iota
	// AAFast draws a cheap approximation of an anti-aliased circle
	AAFast
	// AAFancy draws Zingl's anti-aliased Bresenham circle
	AAFancy
)

func (mode AAMode) String() string {
	switch mode {
	case AANone:
		return "no"
	case AAFast:
		return "fast"
	case AAFancy:
		return "fancy"
	default:
		return "AAMode(?)"
	}
}

// ParseAAMode parses "no", "fast" or "fancy".
func ParseAAMode(name string) (AAMode, error) {
	for _, mode := range []AAMode{AANone, AAFast, AAFancy} {
		if mode.String() == name {
			return mode, nil
		}
	}
	return AANone, errors.Errorf("anti-aliasing mode can only be 'no', 'fast' or 'fancy', got '%s'", name)
}

// pointPlotter draws a batch of points in a single color.
type pointPlotter interface {
	plotPoints(points []sdl.Point, color sdl.Color) error
}

// aaColor scales the alpha of color by ratio, clamped to [0, 1].
func aaColor(color sdl.Color, ratio float64) sdl.Color {
	ratio = math.Max(0, math.Min(1, ratio))
	color.A = uint8(float64(color.A) * ratio)
	return color
}

func octants(cx, cy, x, y int32) []sdl.Point {
	return []sdl.Point{
		{X: cx + x, Y: cy - y},
		{X: cx + x, Y: cy + y},
		{X: cx - x, Y: cy - y},
		{X: cx - x, Y: cy + y},
		{X: cx + y, Y: cy - x},
		{X: cx + y, Y: cy + x},
		{X: cx - y, Y: cy - x},
		{X: cx - y, Y: cy + x},
	}
}

func quadrants(cx, cy, x, y int32) []sdl.Point {
	return []sdl.Point{
		{X: cx + x, Y: cy - y},
		{X: cx + y, Y: cy + x},
		{X: cx - x, Y: cy + y},
		{X: cx - y, Y: cy - x},
	}
}

// drawCircle draws a midpoint circle.
func drawCircle(plotter pointPlotter, center sdl.Point, r int32, color sdl.Color) error {
	d := 2 * r
	x, y := r-1, int32(0)
	tx, ty := int32(1), int32(1)
	err := tx - d

	for x >= y {
		if e := plotter.plotPoints(octants(center.X, center.Y, x, y), color); e != nil {
			return e
		}

		if err <= 0 {
			y++
			err += ty
			ty += 2
		}

		if err > 0 {
			x--
			tx += 2
			err += tx - d
		}
	}
	return nil
}

// drawCircleAA draws an anti-aliased circle, see
// https://zingl.github.io/bresenham.html (MIT licensed, Alois Zingl).
func drawCircleAA(plotter pointPlotter, center sdl.Point, r int32, color sdl.Color) error {
	if r <= 0 {
		return nil
	}

	xm, ym := center.X, center.Y
	// II. quadrant from bottom left to top right
	x, y := r, int32(0)
	err := 2 - 2*r
	res := float64(1 - err)

	for {
		i := math.Abs(float64(err+2*(x+y)-2)) / res
		if e := plotter.plotPoints(quadrants(xm, ym, x, y), aaColor(color, 1-i)); e != nil {
			return e
		}
		if x == 0 {
			break
		}

		e2, x2 := err, x
		if err > y { // x step
			i = float64(err+2*x-1) / res // outward pixel
			if i < 1 {
				points := []sdl.Point{
					{X: xm + x, Y: ym - y + 1},
					{X: xm + y - 1, Y: ym + x},
					{X: xm - x, Y: ym + y - 1},
					{X: xm - y + 1, Y: ym - x},
				}
				if e := plotter.plotPoints(points, aaColor(color, 1-i)); e != nil {
					return e
				}
			}
			x--
			err -= x*2 - 1
		}
		if e2 <= x2 { // y step
			x2--
			i = float64(1-2*y-e2) / res // inward pixel
			if i < 1 {
				if e := plotter.plotPoints(quadrants(xm, ym, x2, y), aaColor(color, 1-i)); e != nil {
					return e
				}
			}
			y--
			err -= y*2 - 1
		}
	}
	return nil
}

// drawCircleAAFast approximates an anti-aliased circle using octant symmetry.
func drawCircleAAFast(plotter pointPlotter, center sdl.Point, r int32, color sdl.Color) error {
	if r <= 0 {
		return nil
	}

	d := 2 * r
	x, y := r-1, int32(0)
	err := 2 - d
	res := float64(d - 1)

	for x >= y {
		i := math.Abs(float64(err+2*(x+y)-2)) / res
		if math.Abs(float64(abs32(x)-abs32(y))) < float64(r)/2 {
			i /= 1.8
		}
		if i < 1 {
			if e := plotter.plotPoints(octants(center.X, center.Y, x, y), aaColor(color, 1-i)); e != nil {
				return e
			}
		}

		e2, y2 := err, y
		if err <= 0 {
			i = math.Abs(float64(2-2*y-err)) / res * 1.1 // inward pixel
			if i < 1 {
				if e := plotter.plotPoints(octants(center.X, center.Y, x-1, y), aaColor(color, 1-i)); e != nil {
					return e
				}
			}
			y++
			err += y*2 - 1
		}

		if e2 > 0 {
			i = float64(e2+2*x-1) / res // outward pixel
			if i < 1 {
				if e := plotter.plotPoints(octants(center.X, center.Y, x, y2-1), aaColor(color, 1-i)); e != nil {
					return e
				}
			}
			x--
			err -= x*2 - 1
		}
	}
	return nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

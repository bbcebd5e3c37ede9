package sdlimdraw

import (
	"image"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// imDraw implements the drawing part of Canvas on top of an SDL renderer.
// Backends supply withSurface, which hands the current canvas pixels to fn.
type imDraw struct {
	renderer    *sdl.Renderer
	width       int
	height      int
	withSurface func(fn func(surface *sdl.Surface) error) error
}

func (d *imDraw) Width() int {
	return d.width
}

func (d *imDraw) Height() int {
	return d.height
}

func (d *imDraw) Renderer() *sdl.Renderer {
	return d.renderer
}

func (d *imDraw) Present() {
	d.renderer.Present()
}

// Flush executes pending draw commands of the renderer.
func (d *imDraw) Flush() error {
	return errors.Wrap(d.renderer.Flush(), "flush renderer")
}

func (d *imDraw) SetColor(color sdl.Color) error {
	return errors.Wrap(d.renderer.SetDrawColor(color.R, color.G, color.B, color.A), "set draw color")
}

func (d *imDraw) SetBlendMode(mode sdl.BlendMode) error {
	return errors.Wrap(d.renderer.SetDrawBlendMode(mode), "set blend mode")
}

func (d *imDraw) currentColor() (sdl.Color, error) {
	r, g, b, a, err := d.renderer.GetDrawColor()
	if err != nil {
		return sdl.Color{}, errors.Wrap(err, "get draw color")
	}
	return sdl.Color{R: r, G: g, B: b, A: a}, nil
}

// withColor runs fn with the renderer color set to color, then restores it.
func (d *imDraw) withColor(color *sdl.Color, fn func() error) error {
	if color == nil {
		return fn()
	}

	oldColor, err := d.currentColor()
	if err != nil {
		return err
	}
	if err = d.SetColor(*color); err != nil {
		return err
	}

	err = fn()
	if restoreErr := d.SetColor(oldColor); err == nil {
		err = restoreErr
	}
	return err
}

func (d *imDraw) plotPoints(points []sdl.Point, color sdl.Color) error {
	return d.withColor(&color, func() error {
		return errors.Wrap(d.renderer.DrawPoints(points), "draw points")
	})
}

// Line draws a polyline through points.
func (d *imDraw) Line(points []sdl.FPoint, opts ...DrawOption) error {
	if len(points) == 0 {
		return nil
	}

	return d.withColor(makeDrawOptions(opts).color, func() error {
		if len(points) == 1 {
			return errors.Wrap(d.renderer.DrawPointF(points[0].X, points[0].Y), "draw line")
		}
		return errors.Wrap(d.renderer.DrawLinesF(points), "draw line")
	})
}

// Point draws points.
func (d *imDraw) Point(points []sdl.FPoint, opts ...DrawOption) error {
	if len(points) == 0 {
		return nil
	}

	return d.withColor(makeDrawOptions(opts).color, func() error {
		return errors.Wrap(d.renderer.DrawPointsF(points), "draw points")
	})
}

func (d *imDraw) wholeCanvas(rects []sdl.FRect) []sdl.FRect {
	if len(rects) == 0 {
		return []sdl.FRect{{X: 0, Y: 0, W: float32(d.width), H: float32(d.height)}}
	}
	return rects
}

// Rect draws rectangle outlines. No rects outline the whole canvas.
func (d *imDraw) Rect(rects []sdl.FRect, opts ...DrawOption) error {
	rects = d.wholeCanvas(rects)
	return d.withColor(makeDrawOptions(opts).color, func() error {
		return errors.Wrap(d.renderer.DrawRectsF(rects), "draw rects")
	})
}

// Fill fills rectangles. No rects fill the whole canvas.
func (d *imDraw) Fill(rects []sdl.FRect, opts ...DrawOption) error {
	rects = d.wholeCanvas(rects)
	return d.withColor(makeDrawOptions(opts).color, func() error {
		return errors.Wrap(d.renderer.FillRectsF(rects), "fill rects")
	})
}

// Geometry renders textured triangles, see RenderGeometry.
func (d *imDraw) Geometry(texture *sdl.Texture, vertices []sdl.Vertex, indices []int32) error {
	return RenderGeometry(d.renderer, texture, vertices, indices)
}

// Circle draws a circle outline of radius r.
func (d *imDraw) Circle(center sdl.Point, r int32, mode AAMode, opts ...DrawOption) error {
	var color sdl.Color
	if c := makeDrawOptions(opts).color; c != nil {
		color = *c
	} else {
		var err error
		if color, err = d.currentColor(); err != nil {
			return err
		}
	}

	switch mode {
	case AANone:
		return drawCircle(d, center, r, color)
	case AAFast:
		return drawCircleAAFast(d, center, r, color)
	case AAFancy:
		return drawCircleAA(d, center, r, color)
	default:
		return errors.Errorf("unknown anti-aliasing mode %d", int(mode))
	}
}

// DrawPixmap copies pixmap to the canvas with its top left corner at top.
func (d *imDraw) DrawPixmap(top image.Point, pixmap *Pixmap) error {
	if err := pixmap.Validate(); err != nil {
		return err
	}
	if pixmap.Width == 0 || pixmap.Height == 0 {
		return nil
	}

	sdlPixFormat, err := pixelFormatToSDL(pixmap.PixFormat)
	if err != nil {
		return err
	}

	texture, err := d.renderer.CreateTexture(sdlPixFormat, sdl.TEXTUREACCESS_STREAMING,
		int32(pixmap.Width), int32(pixmap.Height))
	if err != nil {
		return errors.Wrap(err, "create texture")
	}
	defer texture.Destroy()

	if pixmap.PixFormat == RGB32 {
		if err = texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
			return errors.Wrap(err, "set texture blend mode")
		}
	}

	texturePixels, textureBytePerLine, err := texture.Lock(nil)
	if err != nil {
		return errors.Wrap(err, "lock texture")
	}

	rowSize := pixmap.Width * GetPixelSize(pixmap.PixFormat)
	for rowNum := 0; rowNum < pixmap.Height; rowNum++ {
		pixmapOffset := rowNum * pixmap.BytePerLine
		pixmapRow := pixmap.Data[pixmapOffset : pixmapOffset+rowSize]
		textureOffset := rowNum * textureBytePerLine
		textureRow := texturePixels[textureOffset : textureOffset+rowSize]
		copy(textureRow, pixmapRow)
	}
	texture.Unlock()

	sdlRect := sdl.Rect{
		X: int32(top.X),
		Y: int32(top.Y),
		W: int32(pixmap.Width),
		H: int32(pixmap.Height),
	}
	return errors.Wrap(d.renderer.Copy(texture, nil, &sdlRect), "copy texture")
}

// ReadPixmap returns the canvas pixels in pixFormat.
func (d *imDraw) ReadPixmap(pixFormat PixelFormat) (*Pixmap, error) {
	var pixmap *Pixmap
	err := d.withSurface(func(surface *sdl.Surface) error {
		var err error
		pixmap, err = PixmapFromSurface(surface, pixFormat)
		return err
	})
	return pixmap, err
}

// Snapshot returns a copy of the canvas as a Go image.
func (d *imDraw) Snapshot() (*image.NRGBA, error) {
	pixmap, err := d.ReadPixmap(RGB32)
	if err != nil {
		return nil, err
	}
	return pixmap.Image(), nil
}

// Save saves the canvas to fileName.
func (d *imDraw) Save(fileName string, format ImageFormat, opts SaveOptions) error {
	return d.withSurface(func(surface *sdl.Surface) error {
		return SaveSurface(surface, fileName, format, opts)
	})
}

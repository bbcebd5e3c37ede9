package sdlimdraw

import (
	"image"

	"github.com/veandco/go-sdl2/sdl"
)

// Canvas is the interface definition for drawing on an ImDraw
type Canvas interface {
	Width() int
	Height() int
	Renderer() *sdl.Renderer

	Present()
	SetColor(color sdl.Color) error
	SetBlendMode(mode sdl.BlendMode) error

	Line(points []sdl.FPoint, opts ...DrawOption) error
	Point(points []sdl.FPoint, opts ...DrawOption) error
	Rect(rects []sdl.FRect, opts ...DrawOption) error
	Fill(rects []sdl.FRect, opts ...DrawOption) error
	Geometry(texture *sdl.Texture, vertices []sdl.Vertex, indices []int32) error
	Circle(center sdl.Point, r int32, mode AAMode, opts ...DrawOption) error
	DrawPixmap(top image.Point, pixmap *Pixmap) error

	ReadPixmap(pixFormat PixelFormat) (*Pixmap, error)
	Snapshot() (*image.NRGBA, error)
	Save(fileName string, format ImageFormat, opts SaveOptions) error
	Close() error
}

var (
	_ Canvas = (*SoftwareImDraw)(nil)
	_ Canvas = (*WindowImDraw)(nil)
)

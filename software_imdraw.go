package sdlimdraw

import (
	"image"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// SoftwareImDraw draws on an in-memory SDL surface with the software renderer.
type SoftwareImDraw struct {
	imDraw
	surface *sdl.Surface
}

// NewSoftwareImDraw creates a 32-bit surface of the given size.
func NewSoftwareImDraw(width, height int) (*SoftwareImDraw, error) {
	return NewSoftwareImDrawWithMasks(width, height, 32, 0, 0, 0, 0)
}

// NewSoftwareImDrawWithMasks creates a surface with an explicit depth and
// channel masks. Zero masks let SDL pick a default layout for depth.
func NewSoftwareImDrawWithMasks(width, height, depth int, rmask, gmask, bmask, amask uint32) (*SoftwareImDraw, error) {
	surface, err := sdl.CreateRGBSurface(0, int32(width), int32(height), int32(depth), rmask, gmask, bmask, amask)
	if err != nil {
		return nil, errors.Wrap(err, "create surface")
	}

	imd, err := NewSoftwareImDrawFromSurface(surface)
	if err != nil {
		surface.Free()
		return nil, err
	}
	return imd, nil
}

// NewSoftwareImDrawFromSurface wraps an existing surface.
// The SoftwareImDraw takes ownership of the surface and frees it on Close.
func NewSoftwareImDrawFromSurface(surface *sdl.Surface) (*SoftwareImDraw, error) {
	renderer, err := sdl.CreateSoftwareRenderer(surface)
	if err != nil {
		return nil, errors.Wrap(err, "create software renderer")
	}

	imd := &SoftwareImDraw{surface: surface}
	imd.imDraw = imDraw{
		renderer:    renderer,
		width:       int(surface.W),
		height:      int(surface.H),
		withSurface: imd.flushedSurface,
	}
	return imd, nil
}

// NewSoftwareImDrawFromImage creates a surface holding a copy of src.
func NewSoftwareImDrawFromImage(src image.Image) (*SoftwareImDraw, error) {
	surface, err := SurfaceFromImage(src)
	if err != nil {
		return nil, err
	}

	imd, err := NewSoftwareImDrawFromSurface(surface)
	if err != nil {
		surface.Free()
		return nil, err
	}
	return imd, nil
}

// Surface returns the surface drawn on. Call Flush before reading it directly.
func (imd *SoftwareImDraw) Surface() *sdl.Surface {
	return imd.surface
}

func (imd *SoftwareImDraw) flushedSurface(fn func(surface *sdl.Surface) error) error {
	if err := imd.Flush(); err != nil {
		return err
	}
	return fn(imd.surface)
}

// Close releases the renderer and the surface.
func (imd *SoftwareImDraw) Close() error {
	var err error
	if imd.renderer != nil {
		err = imd.renderer.Destroy()
		imd.renderer = nil
	}
	if imd.surface != nil {
		imd.surface.Free()
		imd.surface = nil
	}
	return errors.Wrap(err, "destroy renderer")
}

package sdlimdraw

import (
	"image"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "sdlimdraw"

// DefaultWindowFlags keeps the window off screen.
const DefaultWindowFlags uint32 = sdl.WINDOW_HIDDEN | sdl.WINDOW_BORDERLESS

// WindowImDraw draws with the renderer of a window, usually hidden.
type WindowImDraw struct {
	imDraw
	window *sdl.Window
}

// NewWindowImDraw creates a hidden borderless window of the given size.
func NewWindowImDraw(width, height int) (*WindowImDraw, error) {
	return NewWindowImDrawWithFlags(width, height, DefaultWindowFlags)
}

// NewWindowImDrawWithFlags creates a window with custom SDL window flags.
func NewWindowImDrawWithFlags(width, height int, flags uint32) (*WindowImDraw, error) {
	window, err := sdl.CreateWindow(windowTitle, int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height), flags)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}

	renderer, err := sdl.CreateRenderer(window, -1, 0)
	if err != nil {
		window.Destroy()
		return nil, errors.Wrap(err, "create renderer")
	}

	imd := &WindowImDraw{window: window}
	imd.imDraw = imDraw{
		renderer:    renderer,
		width:       width,
		height:      height,
		withSurface: imd.copySurface,
	}
	return imd, nil
}

// NewWindowImDrawFromImage creates a window and copies src onto it.
func NewWindowImDrawFromImage(src image.Image) (*WindowImDraw, error) {
	bounds := src.Bounds()
	imd, err := NewWindowImDraw(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	if err = imd.copyImage(src); err != nil {
		imd.Close()
		return nil, err
	}
	return imd, nil
}

func (imd *WindowImDraw) copyImage(src image.Image) error {
	surface, err := SurfaceFromImage(src)
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := imd.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return errors.Wrap(err, "create texture")
	}
	defer texture.Destroy()

	return errors.Wrap(imd.renderer.Copy(texture, nil, nil), "copy texture")
}

// Window returns the window drawn on.
func (imd *WindowImDraw) Window() *sdl.Window {
	return imd.window
}

// copySurface reads the rendered pixels back into a temporary surface.
func (imd *WindowImDraw) copySurface(fn func(surface *sdl.Surface) error) error {
	w, h := imd.window.GetSize()
	pitch := sdl.BytesPerPixel(sdl.PIXELFORMAT_ARGB8888) * int(w)

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, w, h, 32, sdl.PIXELFORMAT_ARGB8888)
	if err != nil {
		return errors.Wrap(err, "create surface")
	}
	defer surface.Free()

	if surface.MustLock() {
		if err = surface.Lock(); err != nil {
			return errors.Wrap(err, "lock surface")
		}
	}

	pixels := make([]byte, pitch*int(h))
	if len(pixels) > 0 {
		err = imd.renderer.ReadPixels(nil, sdl.PIXELFORMAT_ARGB8888, unsafe.Pointer(&pixels[0]), pitch)
	}
	if err == nil {
		surfacePixels := surface.Pixels()
		surfaceBytePerLine := int(surface.Pitch)
		for rowNum := 0; rowNum < int(h); rowNum++ {
			copy(surfacePixels[rowNum*surfaceBytePerLine:rowNum*surfaceBytePerLine+pitch],
				pixels[rowNum*pitch:(rowNum+1)*pitch])
		}
	}

	if surface.MustLock() {
		surface.Unlock()
	}
	if err != nil {
		return errors.Wrap(err, "read pixels")
	}
	return fn(surface)
}

// Close releases the renderer and the window.
func (imd *WindowImDraw) Close() error {
	var err error
	if imd.renderer != nil {
		err = imd.renderer.Destroy()
		imd.renderer = nil
	}
	if imd.window != nil {
		if windowErr := imd.window.Destroy(); err == nil {
			err = windowErr
		}
		imd.window = nil
	}
	return errors.Wrap(err, "close window")
}

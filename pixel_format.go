package sdlimdraw

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// PixelFormat is an enumeration of pixel formats
type PixelFormat int

const (
	// RGB32 is 32-bit ARGB format (0xAARRGGBB)
	RGB32 PixelFormat = iota
	// RGB16 is 16-bit RGB format (5-6-5)
	RGB16
)

// GetPixelSize returns the number of bytes per pixel.
func GetPixelSize(pixFormat PixelFormat) int {
	if pixFormat == RGB16 {
		return 2
	}
	return 4
}

// GetPixelDepth returns the number of significant bits per pixel.
func GetPixelDepth(pixFormat PixelFormat) int {
	if pixFormat == RGB16 {
		return 16
	}
	return 24
}

func (pixFormat PixelFormat) String() string {
	switch pixFormat {
	case RGB16:
		return "RGB16"
	case RGB32:
		return "RGB32"
	default:
		return "PixelFormat(?)"
	}
}

func pixelFormatToSDL(pixelFormat PixelFormat) (uint32, error) {
	switch pixelFormat {
	case RGB16:
		return sdl.PIXELFORMAT_RGB565, nil
	case RGB32:
		return sdl.PIXELFORMAT_ARGB8888, nil
	default:
		return 0, errors.New("Unsupported pixel format")
	}
}

func u32ToPixFormat(val uint32) (PixelFormat, error) {
	switch val {
	case uint32(RGB16):
		return RGB16, nil
	case uint32(RGB32):
		return RGB32, nil
	default:
		return 0, errors.New("Unsupported PixelFormat")
	}
}

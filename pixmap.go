package sdlimdraw

import (
	"encoding/binary"
	"image"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/draw"
)

// Pixmap contains a collection of pixels
type Pixmap struct {
	Data        []byte
	Width       int
	Height      int
	BytePerLine int
	PixFormat   PixelFormat
}

// LoadPixmap loads Pixmap from file
func LoadPixmap(fileName string, pixFormat PixelFormat) (*Pixmap, error) {
	surface, err := img.Load(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "load '%s'", fileName)
	}
	defer surface.Free()

	return PixmapFromSurface(surface, pixFormat)
}

// PixmapFromSurface copies the surface pixels converted to pixFormat.
func PixmapFromSurface(surface *sdl.Surface, pixFormat PixelFormat) (*Pixmap, error) {
	sdlPixFormat, err := pixelFormatToSDL(pixFormat)
	if err != nil {
		return nil, err
	}

	convertedSurface, err := surface.ConvertFormat(sdlPixFormat, 0)
	if err != nil {
		return nil, errors.Wrap(err, "convert surface")
	}
	defer convertedSurface.Free()

	if convertedSurface.MustLock() {
		if err := convertedSurface.Lock(); err != nil {
			return nil, errors.Wrap(err, "lock surface")
		}
		defer convertedSurface.Unlock()
	}

	pixels := convertedSurface.Pixels()
	pixmap := Pixmap{
		Data:        make([]byte, len(pixels)),
		Width:       int(convertedSurface.W),
		Height:      int(convertedSurface.H),
		BytePerLine: int(convertedSurface.Pitch),
		PixFormat:   pixFormat,
	}
	copy(pixmap.Data, pixels)
	return &pixmap, nil
}

// PixmapFromImage converts a Go image into a Pixmap.
func PixmapFromImage(src image.Image, pixFormat PixelFormat) (*Pixmap, error) {
	if _, err := pixelFormatToSDL(pixFormat); err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)
	}

	pixSize := GetPixelSize(pixFormat)
	pixmap := &Pixmap{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		BytePerLine: bounds.Dx() * pixSize,
		PixFormat:   pixFormat,
	}
	pixmap.Data = make([]byte, pixmap.BytePerLine*pixmap.Height)

	for y := 0; y < pixmap.Height; y++ {
		for x := 0; x < pixmap.Width; x++ {
			c := nrgba.NRGBAAt(x, y)
			pixmap.setPixel(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return pixmap, nil
}

func (pixmap *Pixmap) setPixel(x, y int, r, g, b, a uint8) {
	offset := y*pixmap.BytePerLine + x*GetPixelSize(pixmap.PixFormat)
	switch pixmap.PixFormat {
	case RGB16:
		v := uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
		binary.LittleEndian.PutUint16(pixmap.Data[offset:], v)
	default:
		binary.LittleEndian.PutUint32(pixmap.Data[offset:],
			uint32(a)<<24|uint32(r)<<16|uint32(g)<<8|uint32(b))
	}
}

func (pixmap *Pixmap) pixel(x, y int) (r, g, b, a uint8) {
	offset := y*pixmap.BytePerLine + x*GetPixelSize(pixmap.PixFormat)
	switch pixmap.PixFormat {
	case RGB16:
		v := binary.LittleEndian.Uint16(pixmap.Data[offset:])
		r5, g6, b5 := uint8(v>>11), uint8(v>>5)&0x3F, uint8(v)&0x1F
		return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2, 0xFF
	default:
		v := binary.LittleEndian.Uint32(pixmap.Data[offset:])
		return uint8(v >> 16), uint8(v >> 8), uint8(v), uint8(v >> 24)
	}
}

// Image returns the pixmap as a non-premultiplied Go image.
func (pixmap *Pixmap) Image() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, pixmap.Width, pixmap.Height))
	for y := 0; y < pixmap.Height; y++ {
		for x := 0; x < pixmap.Width; x++ {
			i := dst.PixOffset(x, y)
			dst.Pix[i+0], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = pixmap.pixel(x, y)
		}
	}
	return dst
}

// Surface creates an SDL surface holding a copy of the pixmap.
// The caller owns the returned surface.
func (pixmap *Pixmap) Surface() (*sdl.Surface, error) {
	if err := pixmap.Validate(); err != nil {
		return nil, err
	}
	sdlPixFormat, err := pixelFormatToSDL(pixmap.PixFormat)
	if err != nil {
		return nil, err
	}

	pixSize := GetPixelSize(pixmap.PixFormat)
	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(pixmap.Width), int32(pixmap.Height),
		int32(pixSize*8), sdlPixFormat)
	if err != nil {
		return nil, errors.Wrap(err, "create surface")
	}

	if surface.MustLock() {
		if err := surface.Lock(); err != nil {
			surface.Free()
			return nil, errors.Wrap(err, "lock surface")
		}
		defer surface.Unlock()
	}

	surfacePixels := surface.Pixels()
	surfaceBytePerLine := int(surface.Pitch)
	rowSize := pixmap.Width * pixSize
	for rowNum := 0; rowNum < pixmap.Height; rowNum++ {
		pixmapOffset := rowNum * pixmap.BytePerLine
		surfaceOffset := rowNum * surfaceBytePerLine
		copy(surfacePixels[surfaceOffset:surfaceOffset+rowSize], pixmap.Data[pixmapOffset:pixmapOffset+rowSize])
	}
	return surface, nil
}

// Rotate returns the pixmap rotated 90 degrees clockwise.
func (pixmap *Pixmap) Rotate() *Pixmap {
	pixSize := GetPixelSize(pixmap.PixFormat)
	rotatedData := make([]byte, 0, pixmap.Width*pixmap.Height*pixSize)
	for x := 0; x < pixmap.Width; x++ {
		for y := pixmap.Height - 1; y >= 0; y-- {
			pixOffset := y*pixmap.BytePerLine + x*pixSize
			rotatedData = append(rotatedData, pixmap.Data[pixOffset:pixOffset+pixSize]...)
		}
	}

	return &Pixmap{
		Data:        rotatedData,
		Width:       pixmap.Height,
		Height:      pixmap.Width,
		PixFormat:   pixmap.PixFormat,
		BytePerLine: pixSize * pixmap.Height,
	}
}

// Validate checks that Data holds Height rows of Width pixels spaced by BytePerLine.
func (pixmap *Pixmap) Validate() error {
	if _, err := pixelFormatToSDL(pixmap.PixFormat); err != nil {
		return err
	}
	if pixmap.Width < 0 || pixmap.Height < 0 {
		return errors.Errorf("Invalid pixmap size %dx%d", pixmap.Width, pixmap.Height)
	}
	if pixmap.Width == 0 || pixmap.Height == 0 {
		return nil
	}

	rowSize := pixmap.Width * GetPixelSize(pixmap.PixFormat)
	if pixmap.BytePerLine < rowSize {
		return errors.Errorf("Pixmap line of %d bytes is shorter than %d pixels", pixmap.BytePerLine, pixmap.Width)
	}
	if len(pixmap.Data) < pixmap.BytePerLine*(pixmap.Height-1)+rowSize {
		return errors.New("Pixmap data is too short")
	}
	return nil
}

// Rect returns the pixmap bounds placed at the origin.
func (pixmap *Pixmap) Rect() image.Rectangle {
	return image.Rect(0, 0, pixmap.Width, pixmap.Height)
}

// Clear zeroes the pixels inside rect.
func (pixmap *Pixmap) Clear(rect image.Rectangle) {
	r := rect.Intersect(pixmap.Rect())
	pixSize := GetPixelSize(pixmap.PixFormat)
	clearOffset := r.Min.X * pixSize
	clearSize := r.Dx() * pixSize

	for row := r.Min.Y; row < r.Max.Y; row++ {
		rowOffset := row*pixmap.BytePerLine + clearOffset
		rowData := pixmap.Data[rowOffset : rowOffset+clearSize]
		for i := range rowData {
			rowData[i] = 0
		}
	}
}

// DrawInto copies the pixmap into dst with its top left corner at top,
// clipped to dst. Both pixmaps must share the pixel format.
func (pixmap *Pixmap) DrawInto(dst *Pixmap, top image.Point) error {
	if dst.PixFormat != pixmap.PixFormat {
		return errors.New("Pixmap has invalid pixel format")
	}
	if err := pixmap.Validate(); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}

	src := pixmap.Rect().Add(top)
	r := src.Intersect(dst.Rect())
	if r.Empty() {
		return nil
	}

	pixSize := GetPixelSize(pixmap.PixFormat)
	copySize := r.Dx() * pixSize
	srcStartRow := r.Min.Y - src.Min.Y
	srcOffset := (r.Min.X - src.Min.X) * pixSize
	dstOffset := r.Min.X * pixSize

	for i := 0; i < r.Dy(); i++ {
		srcRow := (srcStartRow+i)*pixmap.BytePerLine + srcOffset
		dstRow := (r.Min.Y+i)*dst.BytePerLine + dstOffset
		copy(dst.Data[dstRow:dstRow+copySize], pixmap.Data[srcRow:srcRow+copySize])
	}
	return nil
}

package sdlimdraw

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/bmp"
)

// DefaultJPGQuality is used when SaveOptions.JPGQuality is zero.
const DefaultJPGQuality = 90

// ErrFileExists is returned when saving over an existing file without
// SaveOptions.Overwrite.
var ErrFileExists = errors.New("file already exists, use overwrite if needed")

// SaveOptions controls how an image is saved.
type SaveOptions struct {
	Overwrite  bool
	JPGQuality int
}

func (opts SaveOptions) jpgQuality() (int, error) {
	if opts.JPGQuality == 0 {
		return DefaultJPGQuality, nil
	}
	if opts.JPGQuality < 1 || opts.JPGQuality > 100 {
		return 0, errors.Errorf("jpg quality %d is out of range 1..100", opts.JPGQuality)
	}
	return opts.JPGQuality, nil
}

func checkOverwrite(fileName string, overwrite bool) error {
	if overwrite {
		return nil
	}

	_, err := os.Stat(fileName)
	if err == nil {
		return errors.Wrapf(ErrFileExists, "'%s'", fileName)
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, "stat '%s'", fileName)
	}
	return nil
}

// SaveSurface saves the surface to fileName in the given format.
// An existing file is only replaced when opts.Overwrite is set.
func SaveSurface(surface *sdl.Surface, fileName string, format ImageFormat, opts SaveOptions) error {
	quality, err := opts.jpgQuality()
	if err != nil {
		return err
	}
	if _, ok := imageFormatNames[format]; !ok {
		return errors.Errorf("unsupported image format %d", int(format))
	}
	if err = checkOverwrite(fileName, opts.Overwrite); err != nil {
		return err
	}

	log().WithField("file", fileName).WithField("format", format).Debug("Saving surface")

	switch format {
	case PNG:
		err = img.SavePNG(surface, fileName)
	case BMP:
		err = surface.SaveBMP(fileName)
	case JPG:
		err = img.SaveJPG(surface, fileName, quality)
	case PPixmap:
		err = savePackedSurface(surface, fileName)
	}
	return errors.Wrapf(err, "save '%s'", fileName)
}

func savePackedSurface(surface *sdl.Surface, fileName string) error {
	pixmap, err := PixmapFromSurface(surface, RGB32)
	if err != nil {
		return err
	}

	packedPixmap, err := PackPixmap(pixmap)
	if err != nil {
		return err
	}
	return packedPixmap.Save(fileName)
}

// EncodeImage writes img to w. Unlike SaveSurface it does not need SDL.
func EncodeImage(w io.Writer, src image.Image, format ImageFormat, opts SaveOptions) error {
	quality, err := opts.jpgQuality()
	if err != nil {
		return err
	}

	switch format {
	case PNG:
		return png.Encode(w, src)
	case JPG:
		return jpeg.Encode(w, src, &jpeg.Options{Quality: quality})
	case BMP:
		return bmp.Encode(w, src)
	case PPixmap:
		pixmap, err := PixmapFromImage(src, RGB32)
		if err != nil {
			return err
		}
		packedPixmap, err := PackPixmap(pixmap)
		if err != nil {
			return err
		}
		_, err = packedPixmap.WriteTo(w)
		return err
	default:
		return errors.Errorf("unsupported image format %d", int(format))
	}
}

// LoadSurface loads an image file into a new surface.
// SVG documents are rasterized at their own size, packed pixmaps are unpacked.
func LoadSurface(fileName string) (*sdl.Surface, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".svg":
		return LoadSVG(fileName, 0, 0)
	case PPixmap.Extension():
		packedPixmap, err := LoadPackedPixmap(fileName)
		if err != nil {
			return nil, err
		}
		pixmap, err := packedPixmap.Unpack()
		if err != nil {
			return nil, errors.Wrapf(err, "unpack '%s'", fileName)
		}
		return pixmap.Surface()
	}

	surface, err := img.Load(fileName)
	return surface, errors.Wrapf(err, "load '%s'", fileName)
}

// LoadTexture loads an image file straight into a texture of renderer.
func LoadTexture(renderer *sdl.Renderer, fileName string) (*sdl.Texture, error) {
	texture, err := img.LoadTexture(renderer, fileName)
	return texture, errors.Wrapf(err, "load texture '%s'", fileName)
}

// LoadSVG rasterizes an SVG file into a 32-bit ARGB surface.
// Zero width and height keep the document size; if only one of them is zero
// it follows the document aspect ratio.
func LoadSVG(fileName string, width, height int) (*sdl.Surface, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rgba, err := RasterizeSVG(file, width, height)
	if err != nil {
		return nil, errors.Wrapf(err, "rasterize '%s'", fileName)
	}
	return SurfaceFromImage(rgba)
}

// RasterizeSVG renders an SVG document into an image.
func RasterizeSVG(r io.Reader, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}

	width, height = svgTargetSize(icon.ViewBox.W, icon.ViewBox.H, width, height)
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("invalid svg target size %dx%d", width, height)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

func svgTargetSize(viewW, viewH float64, width, height int) (int, int) {
	switch {
	case width == 0 && height == 0:
		return int(math.Ceil(viewW)), int(math.Ceil(viewH))
	case width == 0 && viewH > 0:
		return int(math.Round(float64(height) * viewW / viewH)), height
	case height == 0 && viewW > 0:
		return width, int(math.Round(float64(width) * viewH / viewW))
	}
	return width, height
}

// SurfaceFromImage copies a Go image into a new ARGB8888 surface.
func SurfaceFromImage(src image.Image) (*sdl.Surface, error) {
	pixmap, err := PixmapFromImage(src, RGB32)
	if err != nil {
		return nil, err
	}
	return pixmap.Surface()
}

package sdlimdraw

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ImageFormat is an enumeration of the formats a canvas can be saved in.
type ImageFormat int

const (
	// PNG is the default format
	PNG ImageFormat = iota
	// JPG is lossy, see SaveOptions.JPGQuality
	JPG
	// BMP is an uncompressed Windows bitmap
	BMP
	// PPixmap is the run-length encoded PackedPixmap format
	PPixmap
)

var imageFormatNames = map[ImageFormat]string{
	PNG:     "png",
	JPG:     "jpg",
	BMP:     "bmp",
	PPixmap: "ppixmap",
}

func (format ImageFormat) String() string {
	if name, ok := imageFormatNames[format]; ok {
		return name
	}
	return "ImageFormat(?)"
}

// Extension returns the file extension, with a leading dot.
func (format ImageFormat) Extension() string {
	return "." + format.String()
}

// ParseImageFormat parses a format name such as "png" or "JPEG".
func ParseImageFormat(name string) (ImageFormat, error) {
	name = strings.ToLower(strings.TrimPrefix(name, "."))
	if name == "jpeg" {
		return JPG, nil
	}
	for format, formatName := range imageFormatNames {
		if formatName == name {
			return format, nil
		}
	}
	return PNG, errors.Errorf("unknown image format '%s'", name)
}

// ImageFormatFromFileName picks the format by the file extension.
func ImageFormatFromFileName(fileName string) (ImageFormat, error) {
	ext := filepath.Ext(fileName)
	if ext == "" {
		return PNG, errors.Errorf("file '%s' has no extension", fileName)
	}
	return ParseImageFormat(ext)
}

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rmcsoft/sdlimdraw"
	"github.com/sirupsen/logrus"
)

var imagePatterns = []string{"*.png", "*.jpg", "*.jpeg", "*.bmp", "*.svg"}

type repackCommand struct {
	InputDir  string `short:"i" long:"input-dir"  required:"true" description:"The input directory"`
	OutputDir string `short:"o" long:"output-dir" required:"true" description:"The output directory"`
	NotRotate bool   `short:"n" long:"not-rotate" description:"Disable image rotate"`
	RGB32     bool   `long:"rgb32" description:"Keep 32-bit pixels instead of RGB565"`
}

func isImage(name string) bool {
	name = strings.ToLower(name)
	for _, pattern := range imagePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

func (c *repackCommand) images() ([]string, error) {
	var images []string
	walkFn := func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && isImage(info.Name()) {
			images = append(images, path)
		}
		return err
	}

	err := filepath.Walk(c.InputDir, walkFn)
	return images, errors.Wrapf(err, "walk '%s'", c.InputDir)
}

func (c *repackCommand) loadPixmap(imageFile string) (*sdlimdraw.Pixmap, error) {
	pixFormat := sdlimdraw.RGB16
	if c.RGB32 {
		pixFormat = sdlimdraw.RGB32
	}

	surface, err := sdlimdraw.LoadSurface(imageFile)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	return sdlimdraw.PixmapFromSurface(surface, pixFormat)
}

func (c *repackCommand) savePackedPixmap(inputImageFile string, packedPixmap *sdlimdraw.PackedPixmap) error {
	relInputPath, err := filepath.Rel(c.InputDir, inputImageFile)
	if err != nil {
		return err
	}

	outputImageDir := filepath.Join(c.OutputDir, filepath.Dir(relInputPath))
	if err = os.MkdirAll(outputImageDir, 0755); err != nil {
		return err
	}

	inputImageExt := filepath.Ext(inputImageFile)
	relOutputPath := strings.TrimSuffix(relInputPath, inputImageExt) + sdlimdraw.PPixmap.Extension()
	return packedPixmap.Save(filepath.Join(c.OutputDir, relOutputPath))
}

func (c *repackCommand) Execute(args []string) error {
	var err error
	if c.InputDir, err = filepath.Abs(c.InputDir); err != nil {
		return err
	}
	if c.OutputDir, err = filepath.Abs(c.OutputDir); err != nil {
		return err
	}

	if err = os.RemoveAll(c.OutputDir); err != nil && !os.IsNotExist(err) {
		return err
	}

	images, err := c.images()
	if err != nil {
		return err
	}

	var packedSize int64
	var unpackedSize int64
	for _, imageFile := range images {
		logrus.WithField("file", imageFile).Debug("Processing")

		pixmap, err := c.loadPixmap(imageFile)
		if err != nil {
			return err
		}
		unpackedSize += int64(pixmap.BytePerLine * pixmap.Height)
		if !c.NotRotate {
			pixmap = pixmap.Rotate()
		}

		packedPixmap, err := sdlimdraw.PackPixmap(pixmap)
		if err != nil {
			return err
		}
		packedSize += int64(len(packedPixmap.Data))

		if err = c.savePackedPixmap(imageFile, packedPixmap); err != nil {
			return err
		}
	}

	fields := logrus.Fields{
		"images":       len(images),
		"unpackedSize": float32(unpackedSize) / float32(1024*1024),
		"packedSize":   float32(packedSize) / float32(1024*1024),
	}
	if packedSize > 0 {
		fields["ratio"] = float32(unpackedSize) / float32(packedSize)
	}
	logrus.WithFields(fields).Info("Repacked")
	return nil
}

func init() {
	register("repack", "Pack images",
		"Convert a directory of images into run-length encoded ppixmap files",
		&repackCommand{})
}

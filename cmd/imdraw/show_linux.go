package main

import (
	"image"
	"time"

	"github.com/rmcsoft/sdlimdraw"
)

type showCommand struct {
	Input    string        `short:"i" long:"input" required:"true" description:"The image to show"`
	Card     int           `short:"c" long:"card" default:"0" env:"IMDRAW_DRM_CARD" description:"The DRM card number"`
	RGB16    bool          `long:"rgb16" description:"Use a 16-bit framebuffer"`
	Duration time.Duration `short:"d" long:"duration" default:"5s" description:"How long to show the image"`
}

func (c *showCommand) Execute(args []string) error {
	surface, err := sdlimdraw.LoadSurface(c.Input)
	if err != nil {
		return err
	}

	canvas, err := sdlimdraw.NewSoftwareImDrawFromSurface(surface)
	if err != nil {
		surface.Free()
		return err
	}
	defer canvas.Close()

	pixFormat := sdlimdraw.RGB32
	if c.RGB16 {
		pixFormat = sdlimdraw.RGB16
	}
	display, err := sdlimdraw.NewKMSDRMDisplay(c.Card, pixFormat)
	if err != nil {
		return err
	}
	defer display.Close()

	top := image.Point{
		X: (display.Width() - canvas.Width()) / 2,
		Y: (display.Height() - canvas.Height()) / 2,
	}
	if err = display.Show(canvas, top); err != nil {
		return err
	}

	time.Sleep(c.Duration)
	return nil
}

func init() {
	register("show", "Show an image on a KMS/DRM display",
		"Show an image on the console display without a window system",
		&showCommand{})
}

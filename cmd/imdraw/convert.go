package main

import (
	"github.com/pkg/errors"
	"github.com/rmcsoft/sdlimdraw"
	"github.com/veandco/go-sdl2/sdl"
)

type convertCommand struct {
	Output outputOptions `group:"Output Options"`

	Input     string `short:"i" long:"input" required:"true" description:"The input image (any SDL_image format, svg or ppixmap)"`
	SVGWidth  int    `long:"svg-width" description:"Rasterize svg input at this width"`
	SVGHeight int    `long:"svg-height" description:"Rasterize svg input at this height"`
}

func (c *convertCommand) load() (*sdl.Surface, error) {
	if c.SVGWidth != 0 || c.SVGHeight != 0 {
		return sdlimdraw.LoadSVG(c.Input, c.SVGWidth, c.SVGHeight)
	}
	return sdlimdraw.LoadSurface(c.Input)
}

func (c *convertCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("unexpected arguments %v", args)
	}

	surface, err := c.load()
	if err != nil {
		return err
	}

	canvas, err := sdlimdraw.NewSoftwareImDrawFromSurface(surface)
	if err != nil {
		surface.Free()
		return err
	}
	defer canvas.Close()

	return c.Output.save(canvas)
}

func init() {
	register("convert", "Convert an image",
		"Load an image and save it in another format",
		&convertCommand{})
}

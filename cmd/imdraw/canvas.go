package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rmcsoft/sdlimdraw"
	"github.com/sirupsen/logrus"
)

type canvasOptions struct {
	Width  int  `short:"W" long:"width"  default:"800" env:"IMDRAW_WIDTH"  description:"Canvas width"`
	Height int  `short:"H" long:"height" default:"800" env:"IMDRAW_HEIGHT" description:"Canvas height"`
	Window bool `long:"window" env:"IMDRAW_WINDOW" description:"Draw with a hidden window renderer instead of a software surface"`
}

type outputOptions struct {
	Output    string `short:"o" long:"output" required:"true" description:"The output file, - for stdout"`
	Format    string `short:"f" long:"format" description:"The output format (png, jpg, bmp, ppixmap), guessed from the output file by default"`
	Overwrite bool   `long:"overwrite" description:"Replace an existing output file"`
	Quality   int    `short:"q" long:"quality" default:"90" env:"IMDRAW_JPG_QUALITY" description:"JPG quality"`
}

func newCanvas(opts canvasOptions) (sdlimdraw.Canvas, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Errorf("invalid canvas size %dx%d", opts.Width, opts.Height)
	}

	if opts.Window {
		return sdlimdraw.NewWindowImDraw(opts.Width, opts.Height)
	}
	return sdlimdraw.NewSoftwareImDraw(opts.Width, opts.Height)
}

func (opts outputOptions) format() (sdlimdraw.ImageFormat, error) {
	if opts.Format != "" {
		return sdlimdraw.ParseImageFormat(opts.Format)
	}
	if opts.Output == "-" {
		return sdlimdraw.PNG, nil
	}
	return sdlimdraw.ImageFormatFromFileName(opts.Output)
}

func (opts outputOptions) save(canvas sdlimdraw.Canvas) error {
	format, err := opts.format()
	if err != nil {
		return err
	}
	saveOpts := sdlimdraw.SaveOptions{
		Overwrite:  opts.Overwrite,
		JPGQuality: opts.Quality,
	}

	if opts.Output == "-" {
		snapshot, err := canvas.Snapshot()
		if err != nil {
			return err
		}
		return sdlimdraw.EncodeImage(os.Stdout, snapshot, format, saveOpts)
	}

	if err = canvas.Save(opts.Output, format, saveOpts); err != nil {
		return err
	}
	logrus.WithField("file", opts.Output).WithField("format", format).Info("Saved")
	return nil
}

// finish saves the canvas, then presents it. The back buffer of a window
// renderer is undefined after Present, so it is read first.
func (opts outputOptions) finish(canvas sdlimdraw.Canvas) error {
	if err := opts.save(canvas); err != nil {
		return err
	}
	canvas.Present()
	return nil
}

package main

import (
	"time"

	"github.com/rmcsoft/sdlimdraw"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

type linesCommand struct {
	Canvas canvasOptions `group:"Canvas Options"`
	Output outputOptions `group:"Output Options"`
	Random randomOptions `group:"Random Options"`
}

func (c *linesCommand) Execute(args []string) error {
	count := c.Random.Count
	if count == 0 {
		count = 100000
	}
	rnd := c.Random.rand()

	t0 := time.Now()
	canvas, err := newCanvas(c.Canvas)
	if err != nil {
		return err
	}
	defer canvas.Close()
	t1 := time.Now()

	w, h := canvas.Width(), canvas.Height()
	for i := 0; i < count; i++ {
		points := []sdl.FPoint{randPoint(rnd, w, h), randPoint(rnd, w, h)}
		if err = canvas.Line(points, sdlimdraw.WithColor(randColor(rnd))); err != nil {
			return err
		}
	}
	t2 := time.Now()

	if err = c.Output.finish(canvas); err != nil {
		return err
	}
	t3 := time.Now()

	logrus.WithFields(logrus.Fields{
		"create": t1.Sub(t0),
		"draw":   t2.Sub(t1),
		"finish": t3.Sub(t2),
	}).Info("Lines drawn")
	return nil
}

func init() {
	register("lines", "Draw random lines",
		"Draw random lines and report how long creating, drawing and saving took",
		&linesCommand{})
}

package main

import (
	"github.com/rmcsoft/sdlimdraw"
	"github.com/veandco/go-sdl2/sdl"
)

type circlesCommand struct {
	Canvas canvasOptions `group:"Canvas Options"`
	Output outputOptions `group:"Output Options"`
	Random randomOptions `group:"Random Options"`

	AA        string `long:"aa" default:"no" choice:"no" choice:"fast" choice:"fancy" description:"Anti-aliasing mode"`
	MinRadius int32  `long:"min-radius" default:"5" description:"The smallest radius"`
	MaxRadius int32  `long:"max-radius" default:"133" description:"The largest radius"`
}

func (c *circlesCommand) Execute(args []string) error {
	count := c.Random.Count
	if count == 0 {
		count = 300
	}
	mode, err := sdlimdraw.ParseAAMode(c.AA)
	if err != nil {
		return err
	}
	rnd := c.Random.rand()

	canvas, err := newCanvas(c.Canvas)
	if err != nil {
		return err
	}
	defer canvas.Close()

	if err = canvas.Fill(nil, sdlimdraw.WithColor(sdl.Color{R: 64, G: 64, B: 64, A: 0})); err != nil {
		return err
	}
	if err = canvas.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		return err
	}

	w, h := canvas.Width(), canvas.Height()
	radiusRange := int(c.MaxRadius-c.MinRadius) + 1
	if radiusRange < 1 {
		radiusRange = 1
	}

	scene := &sdlimdraw.Scene{}
	for i := 0; i < count; i++ {
		center := sdl.Point{X: int32(rnd.Intn(w)), Y: int32(rnd.Intn(h))}
		r := c.MinRadius + int32(rnd.Intn(radiusRange))
		scene.Add(sdlimdraw.NewCircleDrawOperation(center, r, mode, randColor(rnd)))
	}

	if err = scene.Draw(canvas); err != nil {
		return err
	}
	return c.Output.finish(canvas)
}

func init() {
	register("circles", "Draw random circles",
		"Draw random circle outlines with the selected anti-aliasing mode",
		&circlesCommand{})
}

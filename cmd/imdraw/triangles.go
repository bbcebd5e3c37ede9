package main

import (
	"github.com/pkg/errors"
	"github.com/rmcsoft/sdlimdraw"
	"github.com/veandco/go-sdl2/sdl"
)

type trianglesCommand struct {
	Canvas canvasOptions `group:"Canvas Options"`
	Output outputOptions `group:"Output Options"`
	Random randomOptions `group:"Random Options"`
}

func (c *trianglesCommand) Execute(args []string) error {
	count := c.Random.Count
	if count == 0 {
		count = 1000
	}
	rnd := c.Random.rand()

	white, err := sdlimdraw.NewSoftwareImDraw(16, 16)
	if err != nil {
		return err
	}
	defer white.Close()
	if err = white.Fill(nil, sdlimdraw.WithColor(sdl.Color{R: 255, G: 255, B: 255, A: 255})); err != nil {
		return err
	}
	if err = white.Flush(); err != nil {
		return err
	}

	canvas, err := newCanvas(c.Canvas)
	if err != nil {
		return err
	}
	defer canvas.Close()

	texWhite, err := canvas.Renderer().CreateTextureFromSurface(white.Surface())
	if err != nil {
		return errors.Wrap(err, "create texture")
	}
	defer texWhite.Destroy()

	w, h := canvas.Width(), canvas.Height()
	scene := &sdlimdraw.Scene{}
	scene.Add(sdlimdraw.NewFillDrawOperation(sdl.Color{R: 64, G: 64, B: 64, A: 255}))
	for i := 0; i < count; i++ {
		color := randColor(rnd)
		vertices := make([]sdl.Vertex, 3)
		for n := range vertices {
			p := randPoint(rnd, w, h)
			vertices[n] = sdlimdraw.NewVertex(p.X, p.Y, color, 1, 1)
		}
		scene.Add(sdlimdraw.NewGeometryDrawOperation(texWhite, vertices, nil))
	}

	if err = scene.Draw(canvas); err != nil {
		return err
	}
	return c.Output.finish(canvas)
}

func init() {
	register("triangles", "Draw random triangles",
		"Draw random solid triangles with textured geometry",
		&trianglesCommand{})
}

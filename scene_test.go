package sdlimdraw

import (
	"errors"
	"image"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

type fakeCanvas struct {
	calls   []string
	colors  []sdl.Color
	failOn  string
	circles []AAMode
}

func (c *fakeCanvas) record(name string, opts []DrawOption) error {
	c.calls = append(c.calls, name)
	if color := makeDrawOptions(opts).color; color != nil {
		c.colors = append(c.colors, *color)
	}
	if c.failOn == name {
		return errors.New(name + " failed")
	}
	return nil
}

func (c *fakeCanvas) Width() int                            { return 64 }
func (c *fakeCanvas) Height() int                           { return 48 }
func (c *fakeCanvas) Renderer() *sdl.Renderer               { return nil }
func (c *fakeCanvas) Present()                              {}
func (c *fakeCanvas) SetColor(color sdl.Color) error        { return nil }
func (c *fakeCanvas) SetBlendMode(mode sdl.BlendMode) error { return nil }
func (c *fakeCanvas) Close() error                          { return nil }

func (c *fakeCanvas) Line(points []sdl.FPoint, opts ...DrawOption) error {
	return c.record("line", opts)
}

func (c *fakeCanvas) Point(points []sdl.FPoint, opts ...DrawOption) error {
	return c.record("point", opts)
}

func (c *fakeCanvas) Rect(rects []sdl.FRect, opts ...DrawOption) error {
	return c.record("rect", opts)
}

func (c *fakeCanvas) Fill(rects []sdl.FRect, opts ...DrawOption) error {
	return c.record("fill", opts)
}

func (c *fakeCanvas) Geometry(texture *sdl.Texture, vertices []sdl.Vertex, indices []int32) error {
	return c.record("geometry", nil)
}

func (c *fakeCanvas) Circle(center sdl.Point, r int32, mode AAMode, opts ...DrawOption) error {
	c.circles = append(c.circles, mode)
	return c.record("circle", opts)
}

func (c *fakeCanvas) DrawPixmap(top image.Point, pixmap *Pixmap) error {
	return c.record("pixmap", nil)
}

func (c *fakeCanvas) ReadPixmap(pixFormat PixelFormat) (*Pixmap, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeCanvas) Snapshot() (*image.NRGBA, error) {
	return nil, errors.New("not implemented")
}

func (c *fakeCanvas) Save(fileName string, format ImageFormat, opts SaveOptions) error {
	return errors.New("not implemented")
}

func TestSceneDrawsInOrder(t *testing.T) {
	red := sdl.Color{R: 255, A: 255}
	blue := sdl.Color{B: 255, A: 255}

	packedPixmap, err := PackPixmap(newFilledPixmap(2, 2, 1))
	if err != nil {
		t.Fatal(err)
	}

	scene := &Scene{}
	scene.Add(
		NewFillDrawOperation(red),
		NewRectDrawOperation(blue, sdl.FRect{W: 4, H: 4}),
		NewLineDrawOperation(red, sdl.FPoint{}, sdl.FPoint{X: 5, Y: 5}),
		NewCircleDrawOperation(sdl.Point{X: 3, Y: 3}, 2, AAFancy, blue),
		NewGeometryDrawOperation(nil, nil, nil),
		NewDrawPixmapOperation(image.Point{}, newFilledPixmap(1, 1, 0)),
		NewDrawPackedPixmapOperation(image.Point{}, packedPixmap),
	)

	canvas := &fakeCanvas{}
	if err = scene.Draw(canvas); err != nil {
		t.Fatal(err)
	}

	wantCalls := []string{"fill", "rect", "line", "circle", "geometry", "pixmap", "pixmap"}
	if len(canvas.calls) != len(wantCalls) {
		t.Fatalf("calls = %v, want %v", canvas.calls, wantCalls)
	}
	for i := range wantCalls {
		if canvas.calls[i] != wantCalls[i] {
			t.Errorf("call %d = %s, want %s", i, canvas.calls[i], wantCalls[i])
		}
	}

	wantColors := []sdl.Color{red, blue, red, blue}
	for i := range wantColors {
		if canvas.colors[i] != wantColors[i] {
			t.Errorf("color %d = %v, want %v", i, canvas.colors[i], wantColors[i])
		}
	}
	if len(canvas.circles) != 1 || canvas.circles[0] != AAFancy {
		t.Errorf("circle modes = %v, want [fancy]", canvas.circles)
	}
}

func TestSceneStopsAtFirstError(t *testing.T) {
	scene := &Scene{}
	scene.Add(
		NewFillDrawOperation(sdl.Color{}),
		NewLineDrawOperation(sdl.Color{}, sdl.FPoint{}),
		NewFillDrawOperation(sdl.Color{}),
	)

	canvas := &fakeCanvas{failOn: "line"}
	if err := scene.Draw(canvas); err == nil {
		t.Fatal("expected error")
	}
	if len(canvas.calls) != 2 {
		t.Errorf("calls = %v, want drawing to stop after line", canvas.calls)
	}
}

func TestDrawPackedPixmapOperationRejectsCorruptPixmap(t *testing.T) {
	op := NewDrawPackedPixmapOperation(image.Point{}, &PackedPixmap{Data: []byte{1}, Width: 1, Height: 1})
	canvas := &fakeCanvas{}
	if err := op.Draw(canvas); err == nil {
		t.Error("expected unpack error")
	}
	if len(canvas.calls) != 0 {
		t.Errorf("calls = %v, want none", canvas.calls)
	}
}

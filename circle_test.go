package sdlimdraw

import (
	"errors"
	"math"
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

type plottedPoint struct {
	point sdl.Point
	color sdl.Color
}

type recordingPlotter struct {
	points []plottedPoint
	calls  int
	failAt int
}

func (p *recordingPlotter) plotPoints(points []sdl.Point, color sdl.Color) error {
	p.calls++
	if p.failAt > 0 && p.calls == p.failAt {
		return errors.New("plot failed")
	}
	for _, point := range points {
		p.points = append(p.points, plottedPoint{point, color})
	}
	return nil
}

type circleFunc func(pointPlotter, sdl.Point, int32, sdl.Color) error

func distance(center, p sdl.Point) float64 {
	return math.Hypot(float64(p.X-center.X), float64(p.Y-center.Y))
}

func TestCirclePointsStayNearRadius(t *testing.T) {
	center := sdl.Point{X: 200, Y: 150}
	color := sdl.Color{R: 10, G: 20, B: 30, A: 200}

	tests := []struct {
		name     string
		draw     circleFunc
		min, max float64
	}{
		{"midpoint", drawCircle, -1, 0},
		{"fancy", drawCircleAA, -1, 1},
		{"fast", drawCircleAAFast, -2, 0.5},
	}

	for _, tt := range tests {
		for _, r := range []int32{2, 5, 10, 57, 133} {
			plotter := &recordingPlotter{}
			if err := tt.draw(plotter, center, r, color); err != nil {
				t.Fatalf("%s r=%d: unexpected error: %v", tt.name, r, err)
			}
			if len(plotter.points) == 0 {
				t.Errorf("%s r=%d: no points drawn", tt.name, r)
				continue
			}
			for _, p := range plotter.points {
				d := distance(center, p.point)
				if d < float64(r)+tt.min-1e-9 || d > float64(r)+tt.max+1e-9 {
					t.Errorf("%s r=%d: point %v at distance %.3f, want within [%v, %v]",
						tt.name, r, p.point, d, float64(r)+tt.min, float64(r)+tt.max)
					break
				}
				if p.color.R != color.R || p.color.G != color.G || p.color.B != color.B {
					t.Errorf("%s r=%d: color %v changed, want rgb of %v", tt.name, r, p.color, color)
					break
				}
				if p.color.A > color.A {
					t.Errorf("%s r=%d: alpha %d exceeds %d", tt.name, r, p.color.A, color.A)
					break
				}
			}
		}
	}
}

func TestMidpointCircleIsSymmetric(t *testing.T) {
	center := sdl.Point{X: 0, Y: 0}
	plotter := &recordingPlotter{}
	if err := drawCircle(plotter, center, 20, sdl.Color{A: 255}); err != nil {
		t.Fatal(err)
	}

	drawn := map[sdl.Point]bool{}
	for _, p := range plotter.points {
		drawn[p.point] = true
		if p.color.A != 255 {
			t.Errorf("midpoint circle point %v has alpha %d, want 255", p.point, p.color.A)
		}
	}
	for p := range drawn {
		mirrors := []sdl.Point{{X: -p.X, Y: p.Y}, {X: p.X, Y: -p.Y}, {X: p.Y, Y: p.X}}
		for _, m := range mirrors {
			if !drawn[m] {
				t.Errorf("point %v drawn but mirror %v missing", p, m)
			}
		}
	}
}

func TestFancyCircleStartsWithOpaquePixel(t *testing.T) {
	center := sdl.Point{X: 40, Y: 40}
	color := sdl.Color{R: 255, A: 200}
	plotter := &recordingPlotter{}
	if err := drawCircleAA(plotter, center, 10, color); err != nil {
		t.Fatal(err)
	}

	first := plotter.points[0]
	if first.point != (sdl.Point{X: 50, Y: 40}) {
		t.Errorf("first point = %v, want {50 40}", first.point)
	}
	if first.color.A != 200 {
		t.Errorf("first point alpha = %d, want 200", first.color.A)
	}
}

func TestCircleNonPositiveRadiusDrawsNothing(t *testing.T) {
	for _, draw := range []circleFunc{drawCircle, drawCircleAA, drawCircleAAFast} {
		for _, r := range []int32{0, -3} {
			plotter := &recordingPlotter{}
			if err := draw(plotter, sdl.Point{}, r, sdl.Color{A: 255}); err != nil {
				t.Fatal(err)
			}
			if plotter.calls != 0 {
				t.Errorf("r=%d: got %d plot calls, want 0", r, plotter.calls)
			}
		}
	}
}

func TestCircleStopsOnPlotError(t *testing.T) {
	for _, draw := range []circleFunc{drawCircle, drawCircleAA, drawCircleAAFast} {
		plotter := &recordingPlotter{failAt: 2}
		if err := draw(plotter, sdl.Point{}, 30, sdl.Color{A: 255}); err == nil {
			t.Error("expected error from plotter")
		}
		if plotter.calls != 2 {
			t.Errorf("got %d plot calls after failure, want 2", plotter.calls)
		}
	}
}

func TestAAColor(t *testing.T) {
	color := sdl.Color{R: 1, G: 2, B: 3, A: 200}
	tests := []struct {
		ratio float64
		want  uint8
	}{
		{1, 200},
		{0.5, 100},
		{0, 0},
		{-0.3, 0},
		{1.7, 200},
	}
	for _, tt := range tests {
		got := aaColor(color, tt.ratio)
		if got.A != tt.want || got.R != 1 || got.G != 2 || got.B != 3 {
			t.Errorf("aaColor(%v, %v) = %v, want alpha %d", color, tt.ratio, got, tt.want)
		}
	}
}

func TestParseAAMode(t *testing.T) {
	for _, mode := range []AAMode{AANone, AAFast, AAFancy} {
		got, err := ParseAAMode(mode.String())
		if err != nil || got != mode {
			t.Errorf("ParseAAMode(%q) = %v, %v", mode.String(), got, err)
		}
	}
	if _, err := ParseAAMode("smooth"); err == nil {
		t.Error("ParseAAMode(\"smooth\") should fail")
	}
}

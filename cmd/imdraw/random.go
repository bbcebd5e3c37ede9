package main

import (
	"math/rand"
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

type randomOptions struct {
	Count int   `short:"n" long:"count" description:"The number of shapes"`
	Seed  int64 `long:"seed" description:"The random seed, current time by default"`
}

func (opts randomOptions) rand() *rand.Rand {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func randPoint(rnd *rand.Rand, w, h int) sdl.FPoint {
	return sdl.FPoint{X: float32(rnd.Intn(w)), Y: float32(rnd.Intn(h))}
}

func randColor(rnd *rand.Rand) sdl.Color {
	return sdl.Color{R: uint8(rnd.Intn(256)), G: uint8(rnd.Intn(256)), B: uint8(rnd.Intn(256)), A: 255}
}

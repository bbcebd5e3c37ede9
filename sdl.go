package sdlimdraw

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

var mutexSdlInit = sync.Mutex{}
var sdlInited = false

// Init initializes SDL video and the SDL_image JPG/PNG loaders.
// It is safe to call Init more than once.
func Init() error {
	mutexSdlInit.Lock()
	defer mutexSdlInit.Unlock()

	if sdlInited {
		return nil
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "sdl init")
	}

	if err := img.Init(img.INIT_JPG | img.INIT_PNG); err != nil {
		sdl.Quit()
		return errors.Wrap(err, "sdl_image init")
	}

	sdlInited = true
	log().Debug("SDL initialized")
	return nil
}

// Quit shuts down SDL_image and SDL.
func Quit() {
	mutexSdlInit.Lock()
	defer mutexSdlInit.Unlock()

	if !sdlInited {
		return
	}

	img.Quit()
	sdl.Quit()
	sdlInited = false
	log().Debug("SDL shut down")
}

//go:build linux

package sdlimdraw

import (
	"image"
	"os"
	"syscall"

	"github.com/pkg/errors"
	drm "github.com/rmcsoft/godrm"
	"github.com/rmcsoft/godrm/mode"
)

const framebufferCount = 2

type framebuffer struct {
	handle uint32
	id     uint32
	buf    []byte

	pixmap Pixmap
}

// KMSDRMDisplay shows canvases on a display through Linux KMS/DRM dumb buffers,
// without a window system.
type KMSDRMDisplay struct {
	card    *os.File
	modeset mode.Modeset

	pixFormat PixelFormat

	framebuffers        []*framebuffer
	frontFrameBufferNum int
}

// NewKMSDRMDisplay opens /dev/dri/card<cardNum> and allocates the framebuffers
// for its first connected output.
func NewKMSDRMDisplay(cardNum int, pixFormat PixelFormat) (*KMSDRMDisplay, error) {
	if _, err := pixelFormatToSDL(pixFormat); err != nil {
		return nil, err
	}

	card, err := drm.OpenCard(cardNum)
	if err != nil {
		return nil, errors.Wrapf(err, "open drm card %v", cardNum)
	}

	if !drm.HasDumbBuffer(card) {
		card.Close()
		return nil, errors.Errorf("drm device %v does not support dumb buffers", cardNum)
	}

	display := &KMSDRMDisplay{
		card:      card,
		pixFormat: pixFormat,
	}

	simpleMSet, err := mode.NewSimpleModeset(card)
	if err != nil {
		display.Close()
		return nil, errors.Wrap(err, "modeset")
	}

	if len(simpleMSet.Modesets) == 0 {
		display.Close()
		return nil, errors.New("Modesets is empty")
	}

	display.modeset = simpleMSet.Modesets[0]
	for i := 0; i < framebufferCount; i++ {
		fb, err := display.createFramebuffer()
		if err != nil {
			display.Close()
			return nil, err
		}
		display.framebuffers = append(display.framebuffers, fb)
	}

	log().WithField("card", cardNum).
		WithField("width", display.Width()).
		WithField("height", display.Height()).
		Info("KMS/DRM display opened")
	return display, nil
}

// Width returns the display width in pixels.
func (p *KMSDRMDisplay) Width() int {
	return int(p.modeset.Width)
}

// Height returns the display height in pixels.
func (p *KMSDRMDisplay) Height() int {
	return int(p.modeset.Height)
}

// Show draws the canvas at top on the back framebuffer and flips it to the screen.
func (p *KMSDRMDisplay) Show(canvas Canvas, top image.Point) error {
	pixmap, err := canvas.ReadPixmap(p.pixFormat)
	if err != nil {
		return err
	}

	frontFrameBuffer := p.framebuffers[p.frontFrameBufferNum]
	frontFrameBuffer.pixmap.Clear(frontFrameBuffer.pixmap.Rect())
	if err = pixmap.DrawInto(&frontFrameBuffer.pixmap, top); err != nil {
		return err
	}

	err = mode.SetCrtc(p.card, p.modeset.Crtc, frontFrameBuffer.id,
		0, 0, &p.modeset.Conn, 1, &p.modeset.Mode)
	if err != nil {
		return errors.Wrap(err, "set crtc")
	}

	p.frontFrameBufferNum = (p.frontFrameBufferNum + 1) % len(p.framebuffers)
	return nil
}

// Close releases the framebuffers and the card.
func (p *KMSDRMDisplay) Close() error {
	for _, fb := range p.framebuffers {
		p.destroyFramebuffer(fb)
	}
	p.framebuffers = nil

	if p.card == nil {
		return nil
	}
	err := p.card.Close()
	p.card = nil
	return err
}

func (p *KMSDRMDisplay) createFramebuffer() (*framebuffer, error) {

	fb := &framebuffer{}
	var err error

	defer func() {
		if err != nil {
			p.destroyFramebuffer(fb)
		}
	}()

	width := p.modeset.Width
	height := p.modeset.Height
	bpp := GetPixelSize(p.pixFormat) * 8
	depth := GetPixelDepth(p.pixFormat)

	fbInfo, err := mode.CreateFB(p.card, uint16(width), uint16(height), uint32(bpp))
	if err != nil {
		return nil, errors.Wrap(err, "create dumb buffer")
	}

	fb.handle = fbInfo.Handle
	fb.id, err = mode.AddFB(p.card, uint16(width), uint16(height),
		uint8(depth), uint8(bpp), fbInfo.Pitch, fb.handle)
	if err != nil {
		return nil, errors.Wrap(err, "add framebuffer")
	}

	offset, err := mode.MapDumb(p.card, fb.handle)
	if err != nil {
		return nil, errors.Wrap(err, "map dumb buffer")
	}

	fb.buf, err = syscall.Mmap(int(p.card.Fd()), int64(offset), int(fbInfo.Size),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrap(err, "mmap framebuffer")
	}

	fb.pixmap = Pixmap{
		Data:        fb.buf,
		Width:       int(width),
		Height:      int(height),
		BytePerLine: int(fbInfo.Pitch),
		PixFormat:   p.pixFormat,
	}

	return fb, err
}

func (p *KMSDRMDisplay) destroyFramebuffer(fb *framebuffer) {
	if fb != nil && p.card != nil {
		if fb.id != 0 {
			if err := mode.RmFB(p.card, fb.id); err != nil {
				log().WithError(err).Warn("Failed to remove framebuffer")
			}
			fb.id = 0
		}

		if fb.handle != 0 {
			if err := mode.DestroyDumb(p.card, fb.handle); err != nil {
				log().WithError(err).Warn("Failed to destroy dumb buffer")
			}
			fb.handle = 0
		}

		if fb.buf != nil {
			syscall.Munmap(fb.buf)
			fb.buf = nil
		}
	}
}

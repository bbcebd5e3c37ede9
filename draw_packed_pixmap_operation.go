package sdlimdraw

import "image"

type drawPackedPixmapOperation struct {
	top    image.Point
	pixmap *PackedPixmap
}

func (o *drawPackedPixmapOperation) Draw(canvas Canvas) error {
	pixmap, err := o.pixmap.Unpack()
	if err != nil {
		return err
	}
	return canvas.DrawPixmap(o.top, pixmap)
}

// NewDrawPackedPixmapOperation creates an operation to draw the packed pixmap.
func NewDrawPackedPixmapOperation(top image.Point, pixmap *PackedPixmap) DrawOperation {
	return &drawPackedPixmapOperation{
		top:    top,
		pixmap: pixmap,
	}
}

package sdlimdraw

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

const maxPackedPixmapSize = 32000

var errInvalidData = errors.New("Invalid data")

// PackedPixmap packed pixmap
type PackedPixmap struct {
	Data      []byte
	Width     int
	Height    int
	PixFormat PixelFormat
}

// Save saves PackedPixmap
func (packedPixmap *PackedPixmap) Save(fileName string) error {
	file, err := os.Create(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err = packedPixmap.WriteTo(file); err != nil {
		return err
	}

	return file.Sync()
}

// WriteTo writes the header followed by the packed data.
func (packedPixmap *PackedPixmap) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	header := []uint32{
		uint32(packedPixmap.PixFormat),
		uint32(packedPixmap.Width),
		uint32(packedPixmap.Height),
	}
	for _, v := range header {
		if err := binary.Write(bw, binary.LittleEndian, v); err != nil {
			return 0, err
		}
	}

	n, err := bw.Write(packedPixmap.Data)
	if err != nil {
		return int64(4 * len(header)), err
	}

	return int64(4*len(header) + n), bw.Flush()
}

// Unpack unpacks PackedPixmap
func (packedPixmap *PackedPixmap) Unpack() (*Pixmap, error) {
	pixSize := GetPixelSize(packedPixmap.PixFormat)

	unpackedDataSize := packedPixmap.Width * packedPixmap.Height * pixSize
	unpackedData := make([]byte, 0, unpackedDataSize)

	rowCount := 0
	rowSize := 0
	for pos := 0; pos < len(packedPixmap.Data); {
		pixCount := int(packedPixmap.Data[pos])
		if pixCount == 0 {
			// New row
			if rowSize != packedPixmap.Width {
				return nil, errInvalidData
			}

			rowCount++
			rowSize = 0

			pos++
			continue
		}
		pos++
		if pos+pixSize > len(packedPixmap.Data) || rowSize+pixCount > packedPixmap.Width {
			return nil, errInvalidData
		}
		pix := packedPixmap.Data[pos : pos+pixSize]
		for i := 0; i < pixCount; i++ {
			unpackedData = append(unpackedData, pix...)
		}

		rowSize += pixCount
		pos += pixSize
	}

	if rowCount != packedPixmap.Height || rowSize != 0 {
		return nil, errInvalidData
	}

	pixmap := &Pixmap{
		Data:        unpackedData,
		Width:       packedPixmap.Width,
		Height:      packedPixmap.Height,
		PixFormat:   packedPixmap.PixFormat,
		BytePerLine: packedPixmap.Width * pixSize,
	}
	return pixmap, nil
}

// LoadPackedPixmap loads PackedPixmap from file
func LoadPackedPixmap(fileName string) (*PackedPixmap, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	packedPixmap, err := ReadPackedPixmap(file)
	return packedPixmap, errors.Wrapf(err, "load '%s'", fileName)
}

// ReadPackedPixmap reads and validates a PackedPixmap
func ReadPackedPixmap(r io.Reader) (*PackedPixmap, error) {
	header := [3]uint32{}
	for i := 0; i < len(header); i++ {
		if err := binary.Read(r, binary.LittleEndian, &header[i]); err != nil {
			return nil, err
		}
	}
	pixFormat, err := u32ToPixFormat(header[0])
	if err != nil {
		return nil, err
	}
	width := int(header[1])
	if width > maxPackedPixmapSize {
		return nil, errors.New("Invalid width")
	}
	height := int(header[2])
	if height > maxPackedPixmapSize {
		return nil, errors.New("Invalid height")
	}

	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if width*height > 0 && len(data) == 0 {
		return nil, errInvalidData
	}

	pixSize := GetPixelSize(pixFormat)
	rowCount := 0
	rowSize := 0
	for pos := 0; pos < len(data); {
		pixCount := data[pos]
		if pixCount == 0 {
			// New row
			if rowSize != width {
				return nil, errInvalidData
			}

			rowCount++
			rowSize = 0

			pos++
			continue
		}

		rowSize += int(pixCount)
		pos += 1 + pixSize
	}

	if rowCount != height || rowSize != 0 {
		return nil, errInvalidData
	}
	packedPixmap := &PackedPixmap{
		Data:      data,
		Width:     width,
		Height:    height,
		PixFormat: pixFormat,
	}
	return packedPixmap, nil
}

// PackPixmap packs Pixmap
func PackPixmap(pixmap *Pixmap) (*PackedPixmap, error) {
	if err := pixmap.Validate(); err != nil {
		return nil, err
	}

	packedPixmap := &PackedPixmap{
		Width:     pixmap.Width,
		Height:    pixmap.Height,
		PixFormat: pixmap.PixFormat,
	}

	pixSize := GetPixelSize(pixmap.PixFormat)

	for y := 0; y < pixmap.Height; y++ {
		rowOffset := pixmap.BytePerLine * y
		row := pixmap.Data[rowOffset : rowOffset+pixmap.Width*pixSize]

		for pixOffset := 0; pixOffset <= len(row)-pixSize; {
			packedPixel := row[pixOffset : pixOffset+pixSize]

			var eqPixCount byte = 1
			pixOffset += pixSize
			for pixOffset <= len(row)-pixSize && eqPixCount < 0xFF {
				if !bytes.Equal(packedPixel, row[pixOffset:pixOffset+pixSize]) {
					break
				}

				eqPixCount++
				pixOffset += pixSize
			}

			packedPixmap.Data = append(packedPixmap.Data, eqPixCount)
			packedPixmap.Data = append(packedPixmap.Data, packedPixel...)
		}
		packedPixmap.Data = append(packedPixmap.Data, 0x00) // New row
	}

	return packedPixmap, nil
}

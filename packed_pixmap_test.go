package sdlimdraw

import (
	"bytes"
	"encoding/binary"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestPackPixmapRuns(t *testing.T) {
	pixmap := &Pixmap{
		// Row 0: A A B, row 1: C C C. BytePerLine leaves a padding pixel.
		Data:        []byte{1, 0, 1, 0, 2, 0, 9, 9, 3, 0, 3, 0, 3, 0, 9, 9},
		Width:       3,
		Height:      2,
		BytePerLine: 8,
		PixFormat:   RGB16,
	}

	packedPixmap, err := PackPixmap(pixmap)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{2, 1, 0, 1, 2, 0, 0, 3, 3, 0, 0}
	if !bytes.Equal(packedPixmap.Data, want) {
		t.Fatalf("packed data = %v, want %v", packedPixmap.Data, want)
	}

	unpacked, err := packedPixmap.Unpack()
	if err != nil {
		t.Fatal(err)
	}
	wantUnpacked := []byte{1, 0, 1, 0, 2, 0, 3, 0, 3, 0, 3, 0}
	if !bytes.Equal(unpacked.Data, wantUnpacked) || unpacked.BytePerLine != 6 {
		t.Errorf("unpacked = %v/%d, want %v/6", unpacked.Data, unpacked.BytePerLine, wantUnpacked)
	}
}

func TestPackPixmapLongRunsSplit(t *testing.T) {
	const width = 600
	pixmap := newFilledPixmap(width, 1, 0x11)

	packedPixmap, err := PackPixmap(pixmap)
	if err != nil {
		t.Fatal(err)
	}
	// 255 + 255 + 90, then the end of row marker.
	want := []byte{255, 0x11, 0x11, 255, 0x11, 0x11, 90, 0x11, 0x11, 0}
	if !bytes.Equal(packedPixmap.Data, want) {
		t.Errorf("packed data = %v, want %v", packedPixmap.Data, want)
	}
}

func TestPackPixmapShortData(t *testing.T) {
	pixmap := &Pixmap{Data: []byte{1, 2}, Width: 2, Height: 2, BytePerLine: 4, PixFormat: RGB16}
	if _, err := PackPixmap(pixmap); err == nil {
		t.Error("expected error for truncated pixmap data")
	}
}

func TestPackedPixmapSaveLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "sdlimdraw")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	pixmap, err := PixmapFromImage(testImage(), RGB32)
	if err != nil {
		t.Fatal(err)
	}
	packedPixmap, err := PackPixmap(pixmap)
	if err != nil {
		t.Fatal(err)
	}

	fileName := filepath.Join(dir, "frame.ppixmap")
	if err = packedPixmap.Save(fileName); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadPackedPixmap(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Width != 4 || loaded.Height != 3 || loaded.PixFormat != RGB32 {
		t.Errorf("loaded header = %dx%d %v", loaded.Width, loaded.Height, loaded.PixFormat)
	}
	if !bytes.Equal(loaded.Data, packedPixmap.Data) {
		t.Error("loaded data differs from saved data")
	}
}

func packedStream(pixFormat, width, height uint32, data []byte) *bytes.Buffer {
	buf := &bytes.Buffer{}
	for _, v := range []uint32{pixFormat, width, height} {
		binary.Write(buf, binary.LittleEndian, v)
	}
	buf.Write(data)
	return buf
}

func TestReadPackedPixmapRejectsCorruptData(t *testing.T) {
	tests := []struct {
		name   string
		stream *bytes.Buffer
	}{
		{"short header", bytes.NewBuffer([]byte{0, 0, 0, 0, 1})},
		{"bad pixel format", packedStream(7, 1, 1, []byte{1, 0, 0, 0})},
		{"too wide", packedStream(uint32(RGB16), 40000, 1, []byte{0})},
		{"too high", packedStream(uint32(RGB16), 1, 40000, []byte{0})},
		{"no data", packedStream(uint32(RGB16), 1, 1, nil)},
		{"short row", packedStream(uint32(RGB16), 2, 1, []byte{1, 5, 5, 0})},
		{"missing row", packedStream(uint32(RGB16), 1, 2, []byte{1, 5, 5, 0})},
		{"unterminated row", packedStream(uint32(RGB16), 1, 1, []byte{1, 5, 5, 0, 1, 5, 5})},
	}

	for _, tt := range tests {
		if _, err := ReadPackedPixmap(tt.stream); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestUnpackRejectsOverlongRow(t *testing.T) {
	packedPixmap := &PackedPixmap{
		Data:      []byte{3, 1, 1, 0},
		Width:     2,
		Height:    1,
		PixFormat: RGB16,
	}
	if _, err := packedPixmap.Unpack(); err == nil {
		t.Error("expected error for a run longer than the row")
	}
}

package sdlimdraw

import "testing"

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    ImageFormat
		wantErr bool
	}{
		{"png", PNG, false},
		{"PNG", PNG, false},
		{".jpg", JPG, false},
		{"jpeg", JPG, false},
		{"bmp", BMP, false},
		{"ppixmap", PPixmap, false},
		{"gif", PNG, true},
		{"", PNG, true},
	}

	for _, tt := range tests {
		got, err := ParseImageFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseImageFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseImageFormat(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestImageFormatFromFileName(t *testing.T) {
	tests := []struct {
		fileName string
		want     ImageFormat
		wantErr  bool
	}{
		{"out/test.png", PNG, false},
		{"test3.JPEG", JPG, false},
		{"frame.ppixmap", PPixmap, false},
		{"noext", PNG, true},
		{"image.tiff", PNG, true},
	}

	for _, tt := range tests {
		got, err := ImageFormatFromFileName(tt.fileName)
		if (err != nil) != tt.wantErr {
			t.Errorf("ImageFormatFromFileName(%q) error = %v, wantErr %v", tt.fileName, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ImageFormatFromFileName(%q) = %v, want %v", tt.fileName, got, tt.want)
		}
	}
}

func TestImageFormatExtension(t *testing.T) {
	if got := JPG.Extension(); got != ".jpg" {
		t.Errorf("JPG.Extension() = %q, want .jpg", got)
	}
	if got := ImageFormat(42).String(); got != "ImageFormat(?)" {
		t.Errorf("unknown format String() = %q", got)
	}
}

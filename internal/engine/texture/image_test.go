package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 10), G: uint8(y * 10), B: 7, A: 255})
		}
	}
	return img
}

func TestDecodeFormats(t *testing.T) {
	src := gradient(4, 3)

	var pngBuf, bmpBuf bytes.Buffer
	if err := png.Encode(&pngBuf, src); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	if err := bmp.Encode(&bmpBuf, src); err != nil {
		t.Fatalf("bmp encode: %v", err)
	}

	tests := []struct {
		name   string
		data   []byte
		format string
	}{
		{"png", pngBuf.Bytes(), "png"},
		{"bmp", bmpBuf.Bytes(), "bmp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if format != tt.format {
				t.Errorf("format = %s, want %s", format, tt.format)
			}
			if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
				t.Errorf("unexpected bounds %v", img.Bounds())
			}
			r, g, _, _ := img.At(2, 1).RGBA()
			if uint8(r>>8) != 20 || uint8(g>>8) != 10 {
				t.Errorf("pixel (2,1) = %d,%d", r>>8, g>>8)
			}
		})
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode([]byte("not an image")); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestToRGBAOffsetOrigin(t *testing.T) {
	src := gradient(6, 6).SubImage(image.Rect(2, 2, 5, 4))
	rgba := ToRGBA(src)
	if rgba.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", rgba.Bounds())
	}
	if rgba.RGBAAt(0, 0).R != 20 || rgba.RGBAAt(0, 0).G != 20 {
		t.Errorf("origin pixel = %v", rgba.RGBAAt(0, 0))
	}
}

func TestFlipVertical(t *testing.T) {
	img := gradient(2, 3)
	FlipVertical(img)
	if img.RGBAAt(1, 0).G != 20 || img.RGBAAt(1, 2).G != 0 || img.RGBAAt(0, 1).G != 10 {
		t.Errorf("rows not flipped: %v %v %v", img.RGBAAt(1, 0), img.RGBAAt(0, 1), img.RGBAAt(1, 2))
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		w, h, max    int
		wantW, wantH int
	}{
		{100, 50, 200, 100, 50},
		{400, 200, 100, 100, 50},
		{200, 400, 100, 50, 100},
		{1000, 1, 10, 10, 1},
	}
	for _, tt := range tests {
		got := Fit(image.NewRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.max)
		if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
			t.Errorf("Fit(%dx%d, %d) = %v, want %dx%d", tt.w, tt.h, tt.max, got.Bounds(), tt.wantW, tt.wantH)
		}
	}
}

func TestPrepare(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, gradient(2, 2)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := Prepare(buf.Bytes())
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	// Bottom row of the source is now first.
	if img.RGBAAt(0, 0).G != 10 {
		t.Errorf("expected flipped image, got %v", img.RGBAAt(0, 0))
	}

	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := Upload(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}

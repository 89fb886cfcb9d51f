// Package texture decodes images and uploads them as OpenGL textures.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder registration
)

// MaxSize is the largest edge uploaded without downscaling.
const MaxSize = 2048

// ErrEmpty is returned for zero-sized images.
var ErrEmpty = errors.New("texture: empty image")

// Decode detects the format (PNG, JPEG, BMP, WebP) and decodes data.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("texture: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmpty
	}
	return img, format, nil
}

// ToRGBA converts img to a tightly packed RGBA image with a zero origin.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// Fit downscales img so neither edge exceeds max, keeping the aspect ratio.
func Fit(img *image.RGBA, max int) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if max <= 0 || (w <= max && h <= max) {
		return img
	}
	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// FlipVertical flips img in place. GL expects the first row at the bottom.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Prepare decodes data into an upload-ready image: RGBA, fitted to MaxSize
// and flipped for GL.
func Prepare(data []byte) (*image.RGBA, error) {
	img, _, err := Decode(data)
	if err != nil {
		return nil, err
	}
	rgba := Fit(ToRGBA(img), MaxSize)
	FlipVertical(rgba)
	return rgba, nil
}

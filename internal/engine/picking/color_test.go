package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIDRoundTrip(t *testing.T) {
	for id := uint32(0); id <= MaxObjects; id++ {
		c := EncodeID(id)
		if got := DecodeID(c[0], c[1], c[2]); got != id {
			t.Fatalf("id %d: decoded %d", id, got)
		}
	}
}

func TestIndexBackground(t *testing.T) {
	if got := Index(0, 0, 0); got != NoObject {
		t.Errorf("expected NoObject for black pixel, got %d", got)
	}
}

func TestColorByteLayout(t *testing.T) {
	tests := []struct {
		index   int
		r, g, b uint8
	}{
		{0, 1, 0, 0},
		{254, 255, 0, 0},
		{255, 0, 1, 0},
		{0x123455, 0x56, 0x34, 0x12},
		{MaxObjects - 1, 255, 255, 255},
	}
	for _, tt := range tests {
		c := Color(tt.index)
		// What the GPU stores for a normalized float channel.
		r := uint8(math.Round(float64(c[0]) * 255))
		g := uint8(math.Round(float64(c[1]) * 255))
		b := uint8(math.Round(float64(c[2]) * 255))
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("index %d: got (%d,%d,%d), want (%d,%d,%d)", tt.index, r, g, b, tt.r, tt.g, tt.b)
		}
		if got := Index(r, g, b); got != tt.index {
			t.Errorf("index %d: decoded %d", tt.index, got)
		}
	}
}

func TestColorsDistinct(t *testing.T) {
	colors := Colors(300)
	seen := make(map[mgl32.Vec3]int)
	for i, c := range colors {
		if prev, ok := seen[c]; ok {
			t.Fatalf("objects %d and %d share pick color %v", prev, i, c)
		}
		seen[c] = i
		if c == (mgl32.Vec3{}) {
			t.Fatalf("object %d got the background color", i)
		}
	}
}

func TestReadbackY(t *testing.T) {
	tests := []struct{ y, height, want int }{
		{0, 600, 599},
		{599, 600, 0},
		{300, 600, 299},
	}
	for _, tt := range tests {
		if got := ReadbackY(tt.y, tt.height); got != tt.want {
			t.Errorf("ReadbackY(%d, %d) = %d, want %d", tt.y, tt.height, got, tt.want)
		}
	}
}

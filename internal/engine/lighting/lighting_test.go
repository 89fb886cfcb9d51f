package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    mgl32.Vec3
		wantErr bool
	}{
		{"#ffffff", mgl32.Vec3{1, 1, 1}, false},
		{"#d1d1d1", mgl32.Vec3{209.0 / 255, 209.0 / 255, 209.0 / 255}, false},
		{"ff0080", mgl32.Vec3{1, 0, 128.0 / 255}, false},
		{" #000000 ", mgl32.Vec3{0, 0, 0}, false},
		{"#fff", mgl32.Vec3{}, true},
		{"#gggggg", mgl32.Vec3{}, true},
		{"", mgl32.Vec3{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q): %v", tt.in, err)
			continue
		}
		if !got.ApproxEqual(tt.want) {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, s := range []string{"#ffffff", "#d1d1d1", "#99ccff", "#000000"} {
		c, err := ParseHexColor(s)
		if err != nil {
			t.Fatalf("parse %s: %v", s, err)
		}
		if got := HexColor(c); got != s {
			t.Errorf("HexColor(%v) = %s, want %s", c, got, s)
		}
	}
}

func TestSetColorClamps(t *testing.T) {
	l := DefaultPointLight()
	l.SetColor(mgl32.Vec3{1.5, -0.2, 0.5})
	if l.Color != (mgl32.Vec3{1, 0, 0.5}) {
		t.Errorf("got %v", l.Color)
	}
	l.SetIntensity(-3)
	if l.Intensity != 0 {
		t.Errorf("expected intensity clamped to 0, got %f", l.Intensity)
	}
}

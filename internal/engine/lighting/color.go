package lighting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ParseHexColor parses "#rrggbb" (the leading # is optional) into 0-1 channels.
func ParseHexColor(s string) (mgl32.Vec3, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return mgl32.Vec3{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mgl32.Vec3{}, fmt.Errorf("color %q: %w", s, err)
	}
	return mgl32.Vec3{
		float32((v>>16)&0xFF) / 255,
		float32((v>>8)&0xFF) / 255,
		float32(v&0xFF) / 255,
	}, nil
}

// HexColor formats a 0-1 color as "#rrggbb".
func HexColor(c mgl32.Vec3) string {
	c = ClampColor(c)
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math32.Round(c[0]*255)),
		uint8(math32.Round(c[1]*255)),
		uint8(math32.Round(c[2]*255)))
}

// ClampColor clamps every channel to [0, 1].
func ClampColor(c mgl32.Vec3) mgl32.Vec3 {
	for i := range c {
		c[i] = mgl32.Clamp(c[i], 0, 1)
	}
	return c
}

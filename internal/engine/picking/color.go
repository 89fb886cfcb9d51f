// Package picking maps a screen pixel back to the object drawn there by
// rendering every object in a unique flat color to an offscreen target.
package picking

import (
	"github.com/go-gl/mathgl/mgl32"
)

// NoObject is returned when the pixel shows background.
const NoObject = -1

// MaxObjects is the largest number of objects the 24-bit id space can address.
// Id 0 is reserved for the background.
const MaxObjects = 1<<24 - 1

// EncodeID packs a pick id into its byte triple, low byte in red.
func EncodeID(id uint32) [3]uint8 {
	return [3]uint8{
		uint8(id & 0xFF),
		uint8((id >> 8) & 0xFF),
		uint8((id >> 16) & 0xFF),
	}
}

// DecodeID reverses EncodeID.
func DecodeID(r, g, b uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16
}

// Color returns the normalized pick color for an object index. The encoded id
// is index+1 so that a cleared target decodes to no object.
func Color(index int) mgl32.Vec3 {
	c := EncodeID(uint32(index + 1))
	return mgl32.Vec3{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
	}
}

// Colors returns the pick colors for n objects in order.
func Colors(n int) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, n)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// Index decodes a read-back RGB pixel to an object index, or NoObject.
func Index(r, g, b uint8) int {
	id := DecodeID(r, g, b)
	if id == 0 {
		return NoObject
	}
	return int(id) - 1
}

// ReadbackY converts a top-left window row to the bottom-left row GL reads from.
func ReadbackY(y, height int) int {
	return height - y - 1
}

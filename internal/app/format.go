package app

import (
	"strconv"

	"github.com/chewxy/math32"
)

// wrapAngle keeps degrees in [0, 360).
func wrapAngle(d float32) float32 {
	w := math32.Mod(d, 360)
	if w < 0 {
		w += 360
	}
	return w
}

func formatDegrees(d float32) string {
	return strconv.FormatFloat(float64(d), 'f', 0, 32) + "°"
}

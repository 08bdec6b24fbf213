package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a "#rrggbb" or "#rgb" string to sRGB components in
// [0, 1].
func ParseColor(hex string) ([3]float32, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return [3]float32{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(rgb [3]float32) string {
	c := colorful.Color{R: float64(rgb[0]), G: float64(rgb[1]), B: float64(rgb[2])}
	return c.Clamped().Hex()
}

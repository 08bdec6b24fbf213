// Package lighting provides the light types the scene shades its markers with.
package lighting

import "github.com/chewxy/math32"

// Ambient is a uniform light applied to every surface.
type Ambient struct {
	Color     [3]float32
	Intensity float32
}

// Directional is a light at infinity shining along Direction.
type Directional struct {
	Direction [3]float32 // Normalized, points towards the light
	Color     [3]float32
	Intensity float32
}

// SunDirection converts azimuth/elevation angles to a light direction vector.
// Azimuth is rotation around the Y axis in degrees (0-360), elevation is the
// angle above the horizon in degrees (0-90).
// Returns a normalized direction vector pointing towards the light.
func SunDirection(azimuth, elevation float32) [3]float32 {
	az := azimuth * math32.Pi / 180
	el := elevation * math32.Pi / 180

	x := math32.Cos(el) * math32.Sin(az)
	y := math32.Sin(el)
	z := math32.Cos(el) * math32.Cos(az)

	return [3]float32{x, y, z}
}

// NewDirectional creates a white directional light from azimuth/elevation.
func NewDirectional(azimuth, elevation, intensity float32) Directional {
	return Directional{
		Direction: SunDirection(azimuth, elevation),
		Color:     [3]float32{1, 1, 1},
		Intensity: intensity,
	}
}

// DirectionalFrom creates a light shining from position towards the origin.
func DirectionalFrom(position, color [3]float32, intensity float32) Directional {
	x, y, z := position[0], position[1], position[2]
	l := math32.Sqrt(x*x + y*y + z*z)
	if l > 0 {
		x, y, z = x/l, y/l, z/l
	}
	return Directional{
		Direction: [3]float32{x, y, z},
		Color:     color,
		Intensity: intensity,
	}
}

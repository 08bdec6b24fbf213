// Package cloud generates the decorative wave-surface point grids that every
// point-cloud variant is built from.
package cloud

import "github.com/chewxy/math32"

// Gains applied to the wave height when deriving colour intensity.
const (
	BufferGain = 5 // packed position/colour buffers
	VertexGain = 7 // discrete vertex list
)

// intensityBias lifts the wave height so the troughs stay visible.
const intensityBias = 0.1

// Grid describes the sample lattice of a point cloud.
type Grid struct {
	Width     int
	Length    int
	PointSize float32
}

// Count returns the number of samples the grid produces.
func (g Grid) Count() int {
	if !g.Valid() {
		return 0
	}
	return g.Width * g.Length
}

// Valid reports whether both dimensions are at least one.
func (g Grid) Valid() bool {
	return g.Width >= 1 && g.Length >= 1
}

// RGB is a linear colour with components nominally in [0, 1].
type RGB struct {
	R, G, B float32
}

// Scale multiplies every channel by s.
func (c RGB) Scale(s float32) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// ColorRule maps normalized grid coordinates to a position and a colour
// intensity.
type ColorRule func(u, v float32) (x, y, z, intensity float32)

// WaveRule returns the default height field
// y = (cos(u*8pi) + sin(v*8pi)) / 20 with intensity (y + 0.1) * gain.
func WaveRule(gain float32) ColorRule {
	return func(u, v float32) (x, y, z, intensity float32) {
		x = u - 0.5
		y = (math32.Cos(u*math32.Pi*8) + math32.Sin(v*math32.Pi*8)) / 20
		z = v - 0.5
		intensity = (y + intensityBias) * gain
		return x, y, z, intensity
	}
}

// Buffers holds packed xyz positions and rgb colours, three floats per point.
type Buffers struct {
	Positions []float32
	Colors    []float32
}

// Len returns the number of points in the buffers.
func (b Buffers) Len() int {
	return len(b.Positions) / 3
}

// Position returns the position of point k.
func (b Buffers) Position(k int) [3]float32 {
	return [3]float32{b.Positions[3*k], b.Positions[3*k+1], b.Positions[3*k+2]}
}

// Vertex is one entry of the discrete vertex-list representation.
type Vertex struct {
	Position [3]float32
	Color    RGB
}

// Generate samples the grid row-major (outer loop over width, inner over
// length) into packed buffers. A nil rule selects WaveRule(BufferGain).
// An invalid grid yields empty buffers.
func Generate(grid Grid, color RGB, rule ColorRule) Buffers {
	if rule == nil {
		rule = WaveRule(BufferGain)
	}
	n := grid.Count()
	b := Buffers{
		Positions: make([]float32, n*3),
		Colors:    make([]float32, n*3),
	}

	k := 0
	for i := 0; i < grid.Width && n > 0; i++ {
		for j := 0; j < grid.Length; j++ {
			u := float32(i) / float32(grid.Width)
			v := float32(j) / float32(grid.Length)
			x, y, z, intensity := rule(u, v)

			b.Positions[3*k] = x
			b.Positions[3*k+1] = y
			b.Positions[3*k+2] = z

			c := color.Scale(intensity)
			b.Colors[3*k] = c.R
			b.Colors[3*k+1] = c.G
			b.Colors[3*k+2] = c.B
			k++
		}
	}
	return b
}

// GenerateVertices samples the grid into a discrete vertex list in the same
// order as Generate. A nil rule selects WaveRule(VertexGain).
func GenerateVertices(grid Grid, color RGB, rule ColorRule) []Vertex {
	if rule == nil {
		rule = WaveRule(VertexGain)
	}
	n := grid.Count()
	out := make([]Vertex, 0, n)
	for i := 0; i < grid.Width && n > 0; i++ {
		for j := 0; j < grid.Length; j++ {
			u := float32(i) / float32(grid.Width)
			v := float32(j) / float32(grid.Length)
			x, y, z, intensity := rule(u, v)
			out = append(out, Vertex{
				Position: [3]float32{x, y, z},
				Color:    color.Scale(intensity),
			})
		}
	}
	return out
}

// IdentityIndex returns [0, 1, ..., n-1].
func IdentityIndex(n int) []uint32 {
	if n < 0 {
		n = 0
	}
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	return idx
}

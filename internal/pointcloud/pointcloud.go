// Package pointcloud wraps generated grids into renderable point sets.
//
// Four variants exist side by side: plain packed buffers, packed buffers with
// an index, packed buffers with an index and a single draw group, and the
// legacy discrete vertex list. Given the same grid and colour they describe
// the same set of positions.
package pointcloud

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cloudview/internal/cloud"
	"github.com/Faultbox/cloudview/pkg/math"
)

// Kind identifies a point-cloud variant.
type Kind int

const (
	KindPlain Kind = iota
	KindIndexed
	KindIndexedGroup
	KindRegular
)

// Kinds lists every variant in layout order.
var Kinds = []Kind{KindPlain, KindIndexed, KindIndexedGroup, KindRegular}

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindIndexed:
		return "indexed"
	case KindIndexedGroup:
		return "indexed-group"
	case KindRegular:
		return "regular"
	default:
		return "unknown"
	}
}

// Group is a sub-range of the index buffer drawn as one batch.
type Group struct {
	Start         int
	Count         int
	MaterialIndex int
}

// Geometry holds either packed buffers (optionally indexed and grouped) or a
// discrete vertex list.
type Geometry struct {
	Buffers  cloud.Buffers
	Index    []uint32
	Groups   []Group
	Vertices []cloud.Vertex

	bounds *Bounds
}

// Count returns the number of points in the geometry.
func (g *Geometry) Count() int {
	if g.Vertices != nil {
		return len(g.Vertices)
	}
	return g.Buffers.Len()
}

// Position returns the local-space position of point k.
func (g *Geometry) Position(k int) [3]float32 {
	if g.Vertices != nil {
		return g.Vertices[k].Position
	}
	return g.Buffers.Position(k)
}

// Bounds is an axis-aligned box plus the enclosing sphere, in local space.
type Bounds struct {
	Min, Max math.Vec3
	Center   math.Vec3
	Radius   float32
}

// Bounds computes the geometry bounds once and caches them.
func (g *Geometry) Bounds() Bounds {
	if g.bounds != nil {
		return *g.bounds
	}

	b := Bounds{}
	n := g.Count()
	if n > 0 {
		first := math.V3(g.Position(0))
		b.Min, b.Max = first, first
		for k := 1; k < n; k++ {
			p := g.Position(k)
			b.Min = math.Vec3{X: math32.Min(b.Min.X, p[0]), Y: math32.Min(b.Min.Y, p[1]), Z: math32.Min(b.Min.Z, p[2])}
			b.Max = math.Vec3{X: math32.Max(b.Max.X, p[0]), Y: math32.Max(b.Max.Y, p[1]), Z: math32.Max(b.Max.Z, p[2])}
		}
		b.Center = b.Min.Add(b.Max).Scale(0.5)
		for k := 0; k < n; k++ {
			if d := b.Center.Distance(math.V3(g.Position(k))); d > b.Radius {
				b.Radius = d
			}
		}
	}
	g.bounds = &b
	return b
}

// Material describes how points are shaded.
type Material struct {
	Size         float32
	VertexColors bool
	Flat         bool
}

// Transform is a uniform scale followed by a translation.
type Transform struct {
	Scale    float32
	Position math.Vec3
}

// Matrix returns the model matrix.
func (t Transform) Matrix() math.Mat4 {
	return math.Translate(t.Position.X, t.Position.Y, t.Position.Z).
		Mul(math.Scale(t.Scale, t.Scale, t.Scale))
}

// Points is a renderable point set.
type Points struct {
	Kind      Kind
	Geometry  *Geometry
	Material  Material
	Transform Transform
}

// Matrix returns the model matrix of the point set.
func (p *Points) Matrix() math.Mat4 {
	return p.Transform.Matrix()
}

// LocalPositions returns every point position in local space, in geometry
// order.
func (p *Points) LocalPositions() [][3]float32 {
	n := p.Geometry.Count()
	out := make([][3]float32, n)
	for k := 0; k < n; k++ {
		out[k] = p.Geometry.Position(k)
	}
	return out
}

// WorldPositions returns every point position transformed to world space.
func (p *Points) WorldPositions() [][3]float32 {
	m := p.Matrix()
	out := p.LocalPositions()
	for k := range out {
		out[k] = m.TransformPoint(out[k])
	}
	return out
}

func newPoints(kind Kind, grid cloud.Grid, geom *Geometry) *Points {
	return &Points{
		Kind:     kind,
		Geometry: geom,
		Material: Material{
			Size:         grid.PointSize,
			VertexColors: true,
			Flat:         true,
		},
		Transform: Transform{Scale: 1},
	}
}

// BuildPlain builds packed position and colour buffers with no index.
func BuildPlain(grid cloud.Grid, color cloud.RGB) *Points {
	return newPoints(KindPlain, grid, &Geometry{
		Buffers: cloud.Generate(grid, color, nil),
	})
}

// BuildIndexed builds packed buffers plus an identity index.
func BuildIndexed(grid cloud.Grid, color cloud.RGB) *Points {
	buf := cloud.Generate(grid, color, nil)
	return newPoints(KindIndexed, grid, &Geometry{
		Buffers: buf,
		Index:   cloud.IdentityIndex(buf.Len()),
	})
}

// BuildIndexedGroup builds an indexed geometry with one draw group spanning
// the whole index buffer.
func BuildIndexedGroup(grid cloud.Grid, color cloud.RGB) *Points {
	buf := cloud.Generate(grid, color, nil)
	n := buf.Len()
	return newPoints(KindIndexedGroup, grid, &Geometry{
		Buffers: buf,
		Index:   cloud.IdentityIndex(n),
		Groups:  []Group{{Start: 0, Count: n, MaterialIndex: 0}},
	})
}

// BuildRegular builds the discrete vertex-list form.
func BuildRegular(grid cloud.Grid, color cloud.RGB) *Points {
	return newPoints(KindRegular, grid, &Geometry{
		Vertices: cloud.GenerateVertices(grid, color, nil),
	})
}

// Build dispatches to the builder for kind.
func Build(kind Kind, grid cloud.Grid, color cloud.RGB) *Points {
	switch kind {
	case KindIndexed:
		return BuildIndexed(grid, color)
	case KindIndexedGroup:
		return BuildIndexedGroup(grid, color)
	case KindRegular:
		return BuildRegular(grid, color)
	default:
		return BuildPlain(grid, color)
	}
}

// Package debug provides diagnostic overlays and frame capture.
package debug

import (
	"github.com/Faultbox/cloudview/internal/pointcloud"
	"github.com/Faultbox/cloudview/pkg/math"
)

// BoxVertexCount is the number of line vertices in one box (12 edges x 2).
const BoxVertexCount = 24

// BoundsColor is the overlay color for cloud bounding boxes.
var BoundsColor = [3]float32{0.4, 0.4, 0.4}

// BoxLines returns the wireframe of an axis-aligned box as line-segment
// vertices (x, y, z, r, g, b).
func BoxLines(lo, hi math.Vec3, color [3]float32) []float32 {
	corners := [8]math.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z}, {X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z}, {X: lo.X, Y: hi.Y, Z: hi.Z},
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
	}

	out := make([]float32, 0, BoxVertexCount*6)
	for _, e := range edges {
		for _, c := range e {
			p := corners[c]
			out = append(out, p.X, p.Y, p.Z, color[0], color[1], color[2])
		}
	}
	return out
}

// CloudBounds returns the world-space boxes of the given clouds as one line
// vertex slice. Empty clouds are skipped.
func CloudBounds(clouds []*pointcloud.Points, color [3]float32) []float32 {
	var out []float32
	for _, p := range clouds {
		if p.Geometry.Count() == 0 {
			continue
		}
		b := p.Geometry.Bounds()
		s, pos := p.Transform.Scale, p.Transform.Position
		lo := b.Min.Scale(s).Add(pos)
		hi := b.Max.Scale(s).Add(pos)
		out = append(out, BoxLines(lo, hi, color)...)
	}
	return out
}

package scene

import "github.com/chewxy/math32"

// MarkerSegments is the tessellation used for hit markers.
const MarkerSegments = 16

// SphereMesh returns a unit sphere as interleaved (position, normal)
// vertices and triangle indices. On a unit sphere the normal equals the
// position.
func SphereMesh(widthSegments, heightSegments int) (vertices []float32, indices []uint32) {
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		theta := v * math32.Pi
		sinT, cosT := math32.Sincos(theta)

		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := u * 2 * math32.Pi
			sinP, cosP := math32.Sincos(phi)

			x := -cosP * sinT
			y := cosT
			z := sinP * sinT
			vertices = append(vertices, x, y, z, x, y, z)
		}
	}

	row := uint32(widthSegments + 1)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*row + uint32(ix) + 1
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix) + 1

			// Degenerate triangles at the poles are skipped.
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}
	return vertices, indices
}

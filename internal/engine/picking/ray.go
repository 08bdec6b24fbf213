// Package picking provides ray casting against point clouds.
package picking

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cloudview/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min [3]float32
	Max [3]float32
}

// NDC converts pixel coordinates inside a viewport to normalized device
// coordinates in [-1, 1], Y up.
func NDC(screenX, screenY, viewportW, viewportH float32) (x, y float32) {
	if viewportW <= 0 || viewportH <= 0 {
		return 0, 0
	}
	return 2.0*screenX/viewportW - 1.0, 1.0 - 2.0*screenY/viewportH
}

// NDCToRay unprojects normalized device coordinates to a world-space ray.
// invViewProj is the inverse of the view-projection matrix.
func NDCToRay(ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	// Perspective divide
	if nearWorld[3] != 0 {
		nearWorld[0] /= nearWorld[3]
		nearWorld[1] /= nearWorld[3]
		nearWorld[2] /= nearWorld[3]
	}
	if farWorld[3] != 0 {
		farWorld[0] /= farWorld[3]
		farWorld[1] /= farWorld[3]
		farWorld[2] /= farWorld[3]
	}

	origin := math.Vec3{X: nearWorld[0], Y: nearWorld[1], Z: nearWorld[2]}
	far := math.Vec3{X: farWorld[0], Y: farWorld[1], Z: farWorld[2]}

	return Ray{Origin: origin, Direction: far.Sub(origin).Normalize()}
}

// CameraRay returns the ray from a perspective camera at eye through the
// normalized device coordinates, so distances are measured from the camera.
func CameraRay(eye math.Vec3, ndcX, ndcY float32, invViewProj math.Mat4) Ray {
	return Ray{Origin: eye, Direction: NDCToRay(ndcX, ndcY, invViewProj).Direction}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ClosestPoint returns the point on the ray closest to p. Points behind the
// origin clamp to the origin.
func (r Ray) ClosestPoint(p math.Vec3) math.Vec3 {
	t := p.Sub(r.Origin).Dot(r.Direction)
	if t < 0 {
		return r.Origin
	}
	return r.At(t)
}

// DistanceSqToPoint returns the squared distance between p and the ray.
func (r Ray) DistanceSqToPoint(p math.Vec3) float32 {
	return r.ClosestPoint(p).DistanceSq(p)
}

// Transform returns the ray expressed in the space defined by m. The
// direction is renormalized, so distances along the result are in the new
// space's units.
func (r Ray) Transform(m math.Mat4) Ray {
	return Ray{
		Origin:    m.TransformVec3(r.Origin),
		Direction: m.TransformDirection(r.Direction).Normalize(),
	}
}

// IntersectsSphere reports whether the ray passes within radius of center.
func (r Ray) IntersectsSphere(center math.Vec3, radius float32) bool {
	return r.DistanceSqToPoint(center) <= radius*radius
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the distance to intersection (t) and whether intersection occurred.
// If the ray starts inside the box, returns the exit distance.
func (r Ray) IntersectAABB(box AABB) (t float32, hit bool) {
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (box.Min[axis] - origin[axis]) / dir[axis]
			t2 := (box.Max[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tmin = math32.Max(tmin, t1)
			tmax = math32.Min(tmax, t2)
		} else if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// NewAABB creates an AABB from min and max corners, handling negative scales.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	box := AABB{
		Min: [3]float32{minX, minY, minZ},
		Max: [3]float32{maxX, maxY, maxZ},
	}
	for i := 0; i < 3; i++ {
		if box.Min[i] > box.Max[i] {
			box.Min[i], box.Max[i] = box.Max[i], box.Min[i]
		}
	}
	return box
}

// Expand grows the box by pad on every side.
func (b AABB) Expand(pad float32) AABB {
	return NewAABB(
		b.Min[0]-pad, b.Min[1]-pad, b.Min[2]-pad,
		b.Max[0]+pad, b.Max[1]+pad, b.Max[2]+pad,
	)
}

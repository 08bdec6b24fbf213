package picking

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/Faultbox/cloudview/internal/pointcloud"
	"github.com/Faultbox/cloudview/pkg/math"
)

// DefaultThreshold is the pick radius around each point, in world units.
const DefaultThreshold = 0.1

// Intersection is one point hit by a ray.
type Intersection struct {
	Distance      float32   // From ray origin to Point, world units
	DistanceToRay float32   // From the hit cloud point to the ray, world units
	Point         math.Vec3 // Closest point on the ray, world space
	Index         int       // Point index within the geometry
	Object        *pointcloud.Points
}

// Raycaster intersects world-space rays with point clouds.
type Raycaster struct {
	Ray       Ray
	Threshold float32
	Near      float32
	Far       float32
}

// NewRaycaster returns a raycaster with the default threshold and an
// unbounded [0, +inf) range.
func NewRaycaster() *Raycaster {
	return &Raycaster{
		Threshold: DefaultThreshold,
		Near:      0,
		Far:       math32.Inf(1),
	}
}

// SetFromCamera aims the ray from the camera at eye through normalized
// device coordinates, using the camera's inverse view-projection.
func (rc *Raycaster) SetFromCamera(eye math.Vec3, ndcX, ndcY float32, invViewProj math.Mat4) {
	rc.Ray = CameraRay(eye, ndcX, ndcY, invViewProj)
}

// IntersectObjects tests every object and returns the hits nearest first.
func (rc *Raycaster) IntersectObjects(objects []*pointcloud.Points) []Intersection {
	var hits []Intersection
	for _, obj := range objects {
		hits = rc.intersectPoints(obj, hits)
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

func (rc *Raycaster) intersectPoints(obj *pointcloud.Points, hits []Intersection) []Intersection {
	geom := obj.Geometry
	if geom == nil || geom.Count() == 0 {
		return hits
	}

	world := obj.Matrix()
	inverse := world.Inverse()
	scale := obj.Transform.Scale
	if scale <= 0 {
		scale = 1
	}
	localThreshold := rc.Threshold / scale
	localThresholdSq := localThreshold * localThreshold

	// Early out on the bounding sphere, in world space.
	bounds := geom.Bounds()
	center := world.TransformVec3(bounds.Center)
	if !rc.Ray.IntersectsSphere(center, bounds.Radius*scale+rc.Threshold) {
		return hits
	}

	local := rc.Ray.Transform(inverse)

	// Then on the box, in local space, grown by the pick radius.
	box := NewAABB(bounds.Min.X, bounds.Min.Y, bounds.Min.Z, bounds.Max.X, bounds.Max.Y, bounds.Max.Z).
		Expand(localThreshold)
	if _, hit := local.IntersectAABB(box); !hit {
		return hits
	}

	test := func(k int) {
		p := math.V3(geom.Position(k))
		if local.DistanceSqToPoint(p) >= localThresholdSq {
			return
		}
		closest := local.ClosestPoint(p)
		point := world.TransformVec3(closest)
		dist := rc.Ray.Origin.Distance(point)
		if dist < rc.Near || dist > rc.Far {
			return
		}
		hits = append(hits, Intersection{
			Distance:      dist,
			DistanceToRay: math32.Sqrt(local.DistanceSqToPoint(p)) * scale,
			Point:         point,
			Index:         k,
			Object:        obj,
		})
	}

	// Indexed geometries are walked through their index.
	if geom.Index != nil {
		for _, k := range geom.Index {
			test(int(k))
		}
		return hits
	}
	for k := 0; k < geom.Count(); k++ {
		test(k)
	}
	return hits
}

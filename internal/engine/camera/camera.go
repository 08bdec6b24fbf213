// Package camera provides the perspective camera, the trackball controls that
// drive it, and the rig that bounds and spins it.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cloudview/pkg/math"
)

// Perspective is a pinhole camera looking at Target.
type Perspective struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	Fov    float32 // Vertical field of view, radians
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective creates a camera at (10, 10, 10) looking at the origin.
// fovDeg is the vertical field of view in degrees.
func NewPerspective(fovDeg, aspect, near, far float32) *Perspective {
	if aspect <= 0 {
		aspect = 1
	}
	return &Perspective{
		Position: math.Vec3{X: 10, Y: 10, Z: 10},
		Up:       math.Vec3{Y: 1},
		Fov:      fovDeg * math32.Pi / 180,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// SetViewport updates the aspect ratio from a viewport size.
func (c *Perspective) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// ViewMatrix returns the view matrix for this camera.
func (c *Perspective) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the projection matrix for this camera.
func (c *Perspective) ProjectionMatrix() math.Mat4 {
	return math.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Perspective) ViewProjection() math.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}

// InverseViewProjection returns the matrix that unprojects NDC to world.
func (c *Perspective) InverseViewProjection() math.Mat4 {
	return c.ViewProjection().Inverse()
}

// Eye returns the vector from the target to the camera.
func (c *Perspective) Eye() math.Vec3 {
	return c.Position.Sub(c.Target)
}

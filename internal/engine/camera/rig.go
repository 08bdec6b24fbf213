package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cloudview/pkg/math"
)

// Axis selects a world axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// AxisRange is the navigation range for one camera coordinate.
type AxisRange struct {
	Min float32
	Max float32
}

// Clamp limits v to the range.
func (r AxisRange) Clamp(v float32) float32 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// DefaultBounds is the navigation volume used when none is configured.
var DefaultBounds = [3]AxisRange{{-50, 50}, {-50, 50}, {-50, 50}}

// Pose is a camera placement the rig can return to.
type Pose struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3
}

// Rig owns a camera and its controls, keeps the camera inside Bounds and
// optionally spins it about the vertical axis.
type Rig struct {
	Camera   *Perspective
	Controls *Trackball
	Bounds   [3]AxisRange

	RotationSpeed float32 // Radians per frame
	AutoRotate    bool

	// Home is the pose restored by Reset.
	Home Pose
}

// NewRig creates a rig with trackball controls for camera.
func NewRig(camera *Perspective) *Rig {
	return &Rig{
		Camera:        camera,
		Controls:      NewTrackball(camera),
		Bounds:        DefaultBounds,
		RotationSpeed: 0.001,
		Home:          Pose{Position: camera.Position, Target: camera.Target, Up: camera.Up},
	}
}

// Reset returns the camera to Home and stops automatic rotation.
func (r *Rig) Reset() {
	r.Camera.Position = r.Home.Position
	r.Camera.Target = r.Home.Target
	r.Camera.Up = r.Home.Up
	r.AutoRotate = false
	r.Controls.Reset()
	r.clamp()
}

// Update advances the controls and re-applies the bounds.
func (r *Rig) Update() {
	r.Controls.Update()
	r.clamp()
}

// Spin rotates by RotationSpeed when AutoRotate is enabled.
func (r *Rig) Spin() {
	if r.AutoRotate && r.RotationSpeed != 0 {
		r.RotateY(r.RotationSpeed)
	}
}

// RotateY orbits the camera about the world Y axis through its target.
func (r *Rig) RotateY(angle float32) {
	q := math.QuatFromAxisAngle(math.Vec3{Y: 1}, angle)
	eye := r.Camera.Eye().Rotate(q)
	r.Camera.Position = r.Camera.Target.Add(eye)
	r.Camera.Up = r.Camera.Up.Rotate(q)
	r.clamp()
}

// Axis returns one coordinate of the camera position.
func (r *Rig) Axis(a Axis) float32 {
	return component(r.Camera.Position, a)
}

// SetAxis moves the camera along one axis, clamped to its range, and returns
// the resulting coordinate. A NaN falls back to the home coordinate.
func (r *Rig) SetAxis(a Axis, v float32) float32 {
	if math32.IsNaN(v) {
		v = component(r.Home.Position, a)
	}
	v = r.Bounds[a].Clamp(v)
	setComponent(&r.Camera.Position, a, v)
	return v
}

// AdjustAxis offsets one coordinate by delta, clamped to its range.
func (r *Rig) AdjustAxis(a Axis, delta float32) float32 {
	return r.SetAxis(a, r.Axis(a)+delta)
}

// SetBounds replaces the navigation volume and caps the controls' zoom
// distance at its diagonal.
func (r *Rig) SetBounds(b [3]AxisRange) {
	r.Bounds = b
	var d float32
	for _, ax := range b {
		d += (ax.Max - ax.Min) * (ax.Max - ax.Min)
	}
	if diag := math32.Sqrt(d); diag > 0 && diag < r.Controls.MaxDistance {
		r.Controls.MaxDistance = diag
	}
}

// clamp keeps both the camera and its target inside Bounds, so the eye
// vector the controls scale by never outgrows the volume. A pose that is no
// longer finite, or has collapsed onto its target, is replaced by Home.
func (r *Rig) clamp() {
	if !r.poseValid() {
		r.Camera.Position = r.Home.Position
		r.Camera.Target = r.Home.Target
		r.Camera.Up = r.Home.Up
		r.Controls.Reset()
	}
	for a := AxisX; a <= AxisZ; a++ {
		r.SetAxis(a, r.Axis(a))
		setComponent(&r.Camera.Target, a, r.Bounds[a].Clamp(component(r.Camera.Target, a)))
	}
	if r.Camera.Eye().LengthSq() < minEyeSq {
		r.Camera.Position = r.Home.Position
		r.Camera.Target = r.Home.Target
		r.Camera.Up = r.Home.Up
	}
}

// minEyeSq is the squared camera-to-target distance below which the view
// direction is undefined.
const minEyeSq = 1e-10

func (r *Rig) poseValid() bool {
	c := r.Camera
	for _, v := range []math.Vec3{c.Position, c.Target, c.Up} {
		if !finite(v) {
			return false
		}
	}
	return c.Up.LengthSq() > 0
}

func finite(v math.Vec3) bool {
	for _, f := range [3]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func component(v math.Vec3, a Axis) float32 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func setComponent(v *math.Vec3, a Axis, f float32) {
	switch a {
	case AxisX:
		v.X = f
	case AxisY:
		v.Y = f
	default:
		v.Z = f
	}
}

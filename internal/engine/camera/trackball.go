package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/cloudview/pkg/math"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

type trackballState int

const (
	stateNone trackballState = iota
	stateRotate
	stateZoom
	statePan
)

// wheelScale converts one wheel notch to a zoom delta.
const wheelScale = 0.01

// Trackball rotates, zooms and pans a camera around its target from pointer
// drags. Left drag rotates, middle drag zooms, right drag pans, the wheel
// zooms. Motion eases out over several Update calls unless StaticMoving is
// set.
type Trackball struct {
	camera *Perspective

	RotateSpeed          float32
	ZoomSpeed            float32
	PanSpeed             float32
	NoRotate             bool
	NoZoom               bool
	NoPan                bool
	StaticMoving         bool
	DynamicDampingFactor float32
	MinDistance          float32
	MaxDistance          float32

	// Screen rectangle the pointer coordinates are relative to.
	left, top, width, height float32

	state     trackballState
	moveCurr  math.Vec2
	movePrev  math.Vec2
	lastAxis  math.Vec3
	lastAngle float32

	zoomStart, zoomEnd math.Vec2
	panStart, panEnd   math.Vec2
}

// NewTrackball creates controls for camera with the usual defaults.
func NewTrackball(camera *Perspective) *Trackball {
	return &Trackball{
		camera:               camera,
		RotateSpeed:          1.0,
		ZoomSpeed:            1.2,
		PanSpeed:             0.3,
		DynamicDampingFactor: 0.2,
		MinDistance:          0,
		MaxDistance:          math32.Inf(1),
		width:                1,
		height:               1,
	}
}

// SetScreen sets the screen rectangle pointer coordinates are measured in.
func (t *Trackball) SetScreen(left, top, width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	t.left, t.top, t.width, t.height = left, top, width, height
}

func (t *Trackball) mouseOnScreen(x, y float32) math.Vec2 {
	return math.Vec2{X: (x - t.left) / t.width, Y: (y - t.top) / t.height}
}

func (t *Trackball) mouseOnCircle(x, y float32) math.Vec2 {
	return math.Vec2{
		X: (x - t.width*0.5 - t.left) / (t.width * 0.5),
		Y: (t.height + 2*(t.top-y)) / t.width,
	}
}

// PointerDown starts a drag.
func (t *Trackball) PointerDown(button Button, x, y float32) {
	switch {
	case button == ButtonLeft && !t.NoRotate:
		t.state = stateRotate
		t.moveCurr = t.mouseOnCircle(x, y)
		t.movePrev = t.moveCurr
	case button == ButtonMiddle && !t.NoZoom:
		t.state = stateZoom
		t.zoomStart = t.mouseOnScreen(x, y)
		t.zoomEnd = t.zoomStart
	case button == ButtonRight && !t.NoPan:
		t.state = statePan
		t.panStart = t.mouseOnScreen(x, y)
		t.panEnd = t.panStart
	}
}

// PointerMove continues a drag. It is a no-op when no button is held.
func (t *Trackball) PointerMove(x, y float32) {
	switch t.state {
	case stateRotate:
		t.movePrev = t.moveCurr
		t.moveCurr = t.mouseOnCircle(x, y)
	case stateZoom:
		t.zoomEnd = t.mouseOnScreen(x, y)
	case statePan:
		t.panEnd = t.mouseOnScreen(x, y)
	}
}

// PointerUp ends a drag.
func (t *Trackball) PointerUp() {
	t.state = stateNone
}

// Wheel zooms by delta notches; positive zooms in.
func (t *Trackball) Wheel(delta float32) {
	if t.NoZoom {
		return
	}
	t.zoomStart.Y += delta * wheelScale
}

// Reset drops any drag in progress and pending motion.
func (t *Trackball) Reset() {
	t.state = stateNone
	t.moveCurr, t.movePrev = math.Vec2{}, math.Vec2{}
	t.lastAxis, t.lastAngle = math.Vec3{}, 0
	t.zoomStart, t.zoomEnd = math.Vec2{}, math.Vec2{}
	t.panStart, t.panEnd = math.Vec2{}, math.Vec2{}
}

// Update applies pending rotation, zoom and pan to the camera. Call once per
// frame.
func (t *Trackball) Update() {
	eye := t.camera.Eye()

	if !t.NoRotate {
		eye = t.rotate(eye)
	}
	if !t.NoZoom {
		eye = t.zoom(eye)
	}
	if !t.NoPan {
		t.pan(eye)
	}

	t.camera.Position = t.camera.Target.Add(eye)
	t.checkDistances()
}

func (t *Trackball) rotate(eye math.Vec3) math.Vec3 {
	dx := t.moveCurr.X - t.movePrev.X
	dy := t.moveCurr.Y - t.movePrev.Y
	angle := math32.Sqrt(dx*dx + dy*dy)

	switch {
	case angle != 0:
		eyeDir := eye.Normalize()
		up := t.camera.Up.Normalize()
		sideways := up.Cross(eyeDir).Normalize()

		move := up.SetLength(dy).Add(sideways.SetLength(dx))
		axis := move.Cross(eye).Normalize()
		angle *= t.RotateSpeed

		q := math.QuatFromAxisAngle(axis, angle)
		eye = eye.Rotate(q)
		t.camera.Up = t.camera.Up.Rotate(q)

		t.lastAxis = axis
		t.lastAngle = angle

	case !t.StaticMoving && t.lastAngle != 0:
		t.lastAngle *= math32.Sqrt(1 - t.DynamicDampingFactor)
		q := math.QuatFromAxisAngle(t.lastAxis, t.lastAngle)
		eye = eye.Rotate(q)
		t.camera.Up = t.camera.Up.Rotate(q)
	}

	t.movePrev = t.moveCurr
	return eye
}

func (t *Trackball) zoom(eye math.Vec3) math.Vec3 {
	factor := 1 + (t.zoomEnd.Y-t.zoomStart.Y)*t.ZoomSpeed
	if factor != 1 && factor > 0 {
		eye = eye.Scale(factor)
	}

	if t.StaticMoving {
		t.zoomStart = t.zoomEnd
	} else {
		t.zoomStart.Y += (t.zoomEnd.Y - t.zoomStart.Y) * t.DynamicDampingFactor
	}
	return eye
}

func (t *Trackball) pan(eye math.Vec3) {
	change := t.panEnd.Sub(t.panStart)
	if change.LengthSq() == 0 {
		return
	}

	change = change.Scale(eye.Length() * t.PanSpeed)
	offset := eye.Cross(t.camera.Up).SetLength(change.X).
		Add(t.camera.Up.SetLength(change.Y))

	t.camera.Position = t.camera.Position.Add(offset)
	t.camera.Target = t.camera.Target.Add(offset)

	if t.StaticMoving {
		t.panStart = t.panEnd
	} else {
		t.panStart = t.panStart.Add(t.panEnd.Sub(t.panStart).Scale(t.DynamicDampingFactor))
	}
}

func (t *Trackball) checkDistances() {
	if t.NoZoom && t.NoPan {
		return
	}
	eye := t.camera.Eye()
	l := eye.Length()
	switch {
	case l > t.MaxDistance:
		t.camera.Position = t.camera.Target.Add(eye.SetLength(t.MaxDistance))
		t.zoomStart = t.zoomEnd
	case l < t.MinDistance:
		t.camera.Position = t.camera.Target.Add(eye.SetLength(t.MinDistance))
		t.zoomStart = t.zoomEnd
	}
}

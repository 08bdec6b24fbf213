package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/engine/scene"
	"github.com/Faultbox/cloudview/pkg/math"
)

func setupHandler(t *testing.T, keys Bindings) (*Handler, *scene.Scene, *camera.Rig) {
	t.Helper()
	c, s, cam := setup(t, 0.1)
	rig := camera.NewRig(cam)
	return NewHandler(c, rig, keys, 800, 600), s, rig
}

func keyDown(k input.Key) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: k}
}

func mouse(typ input.EventType, b input.Button, x, y int) input.Event {
	return input.Event{Type: typ, Button: b, MouseX: x, MouseY: y}
}

func TestHandlerKeyTrigger(t *testing.T) {
	h, s, _ := setupHandler(t, DefaultBindings())

	assert.Equal(t, ActionNone, h.Handle(mouse(input.EventMouseMove, 0, 400, 300)))
	assert.Equal(t, ActionNone, h.Handle(keyDown(input.KeySpace)))
	require.Len(t, s.Markers(), 1)
	assert.Equal(t, HitDisplayed, h.picker.State())

	// Clicking does nothing in key mode.
	s.ClearMarkers()
	h.Handle(mouse(input.EventMouseDown, input.ButtonLeft, 400, 300))
	h.Handle(mouse(input.EventMouseUp, input.ButtonLeft, 400, 300))
	assert.Empty(t, s.Markers())
}

func TestHandlerClickTrigger(t *testing.T) {
	keys := DefaultBindings()
	keys.Trigger = TriggerOnClick
	h, s, _ := setupHandler(t, keys)

	h.Handle(keyDown(input.KeySpace))
	assert.Empty(t, s.Markers())

	h.Handle(mouse(input.EventMouseDown, input.ButtonLeft, 400, 300))
	h.Handle(mouse(input.EventMouseUp, input.ButtonLeft, 400, 300))
	assert.Len(t, s.Markers(), 1)
}

func TestHandlerDragIsNotClick(t *testing.T) {
	keys := DefaultBindings()
	keys.Trigger = TriggerOnClick
	h, s, rig := setupHandler(t, keys)

	start := rig.Camera.Position
	h.Handle(mouse(input.EventMouseDown, input.ButtonLeft, 400, 300))
	h.Handle(mouse(input.EventMouseMove, 0, 450, 300))
	rig.Update()
	h.Handle(mouse(input.EventMouseUp, input.ButtonLeft, 450, 300))

	assert.NotEqual(t, start, rig.Camera.Position, "the drag rotates the camera")
	assert.Empty(t, s.Markers())
}

func TestHandlerQuit(t *testing.T) {
	h, _, _ := setupHandler(t, DefaultBindings())
	assert.Equal(t, ActionQuit, h.Handle(input.Event{Type: input.EventQuit}))
	assert.Equal(t, ActionQuit, h.Handle(keyDown(input.KeyEscape)))
}

func TestHandlerResize(t *testing.T) {
	h, _, rig := setupHandler(t, DefaultBindings())

	assert.Equal(t, ActionResize, h.Handle(input.Event{Type: input.EventWindowResize, Width: 1000, Height: 500}))
	w, hh := h.Viewport()
	assert.Equal(t, 1000, w)
	assert.Equal(t, 500, hh)
	assert.InDelta(t, 2.0, rig.Camera.Aspect, 1e-6)

	// A zero size is ignored.
	h.Handle(input.Event{Type: input.EventWindowResize})
	w, _ = h.Viewport()
	assert.Equal(t, 1000, w)
}

func TestHandlerNavigationKeys(t *testing.T) {
	h, _, rig := setupHandler(t, DefaultBindings())
	start := rig.Camera.Position

	h.Handle(keyDown(input.KeyRight))
	assert.InDelta(t, start.X+0.2, rig.Camera.Position.X, 1e-5)
	h.Handle(keyDown(input.KeyUp))
	assert.InDelta(t, start.Z-0.2, rig.Camera.Position.Z, 1e-5)
	h.Handle(keyDown(input.KeyPageDown))
	assert.InDelta(t, start.Y-0.2, rig.Camera.Position.Y, 1e-5)

	// The rig bounds still apply.
	rig.Bounds[camera.AxisY] = camera.AxisRange{Min: -1, Max: 1}
	h.Handle(keyDown(input.KeyPageUp))
	assert.Equal(t, float32(1), rig.Camera.Position.Y)
}

func TestHandlerCaptureKey(t *testing.T) {
	h, _, _ := setupHandler(t, DefaultBindings())
	assert.Equal(t, ActionCapture, h.Handle(keyDown(input.KeyP)))

	keys := DefaultBindings()
	keys.CaptureKey = input.KeyUnknown
	h, _, _ = setupHandler(t, keys)
	assert.Equal(t, ActionNone, h.Handle(keyDown(input.KeyP)))
}

func TestReservedKeys(t *testing.T) {
	for _, k := range []input.Key{input.KeyEscape, input.KeyLeft, input.KeyPageDown, input.KeyTab, input.KeyR} {
		assert.True(t, Reserved(k), k.String())
	}
	keys := DefaultBindings()
	assert.False(t, Reserved(keys.TriggerKey))
	assert.False(t, Reserved(keys.CaptureKey))
	assert.NotEqual(t, keys.TriggerKey, keys.CaptureKey)
}

func TestHandlerAutoRotateToggle(t *testing.T) {
	h, _, rig := setupHandler(t, DefaultBindings())
	h.Handle(keyDown(input.KeyTab))
	assert.True(t, rig.AutoRotate)
	h.Handle(keyDown(input.KeyTab))
	assert.False(t, rig.AutoRotate)
}

func TestHandlerReset(t *testing.T) {
	h, s, rig := setupHandler(t, DefaultBindings())
	home := rig.Camera.Position

	reset := 0
	h.OnReset = func() { reset++ }

	h.Handle(keyDown(input.KeySpace))
	require.NotEmpty(t, s.Markers())
	h.Handle(keyDown(input.KeyRight))
	rig.AutoRotate = true

	h.Handle(keyDown(input.KeyR))
	assert.Equal(t, home, rig.Camera.Position)
	assert.False(t, rig.AutoRotate)
	assert.Empty(t, s.Markers())
	assert.Equal(t, Idle, h.picker.State())
	assert.Equal(t, 1, reset)
}

func TestHandlerWheelZooms(t *testing.T) {
	h, _, rig := setupHandler(t, DefaultBindings())
	rig.Camera.Position = rig.Camera.Target.Add(math.Vec3{Y: 10})
	d := rig.Camera.Eye().Length()

	h.Handle(input.Event{Type: input.EventMouseWheel, Wheel: 5})
	rig.Update()
	assert.Less(t, rig.Camera.Eye().Length(), d)
}

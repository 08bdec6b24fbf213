package interaction

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/logger"
)

// TriggerMode selects what fires a raycast.
type TriggerMode int

const (
	TriggerOnKey TriggerMode = iota
	TriggerOnClick
)

// clickSlop is how far, in pixels, the pointer may travel between press and
// release for the release to count as a click.
const clickSlop = 3

// Action tells the host what an event requires beyond scene state.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
	ActionCapture
)

// Bindings maps input to viewer commands.
type Bindings struct {
	Trigger    TriggerMode
	TriggerKey input.Key
	CaptureKey input.Key // KeyUnknown disables capture
	Step       float32   // Camera offset per navigation key
}

// DefaultBindings triggers on space, captures on P and steps 0.2 units.
func DefaultBindings() Bindings {
	return Bindings{
		Trigger:    TriggerOnKey,
		TriggerKey: input.KeySpace,
		CaptureKey: input.KeyP,
		Step:       0.2,
	}
}

// Handler routes input events to the camera rig and the picker.
type Handler struct {
	picker *Controller
	rig    *camera.Rig
	keys   Bindings

	width, height float32
	downX, downY  int
	pressed       bool

	// OnReset runs after Reset restores the camera.
	OnReset func()

	log *zap.Logger
}

// NewHandler creates a handler for a width x height viewport.
func NewHandler(picker *Controller, rig *camera.Rig, keys Bindings, width, height int) *Handler {
	h := &Handler{
		picker: picker,
		rig:    rig,
		keys:   keys,
		log:    logger.Named("input"),
	}
	h.SetViewport(width, height)
	return h
}

// SetViewport sets the size pointer coordinates are measured against.
func (h *Handler) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	h.width, h.height = float32(width), float32(height)
	h.rig.Camera.SetViewport(width, height)
	h.rig.Controls.SetScreen(0, 0, h.width, h.height)
}

// Viewport returns the current viewport size.
func (h *Handler) Viewport() (width, height int) {
	return int(h.width), int(h.height)
}

// Handle applies one event.
func (h *Handler) Handle(e input.Event) Action {
	switch e.Type {
	case input.EventQuit:
		return ActionQuit

	case input.EventWindowResize:
		h.SetViewport(e.Width, e.Height)
		return ActionResize

	case input.EventMouseMove:
		x, y := float32(e.MouseX), float32(e.MouseY)
		h.picker.PointerMove(x, y, h.width, h.height)
		h.rig.Controls.PointerMove(x, y)

	case input.EventMouseDown:
		x, y := float32(e.MouseX), float32(e.MouseY)
		h.picker.PointerMove(x, y, h.width, h.height)
		if b, ok := trackballButton(e.Button); ok {
			h.rig.Controls.PointerDown(b, x, y)
		}
		if e.Button == input.ButtonLeft {
			h.downX, h.downY, h.pressed = e.MouseX, e.MouseY, true
		}

	case input.EventMouseUp:
		h.rig.Controls.PointerUp()
		if e.Button == input.ButtonLeft && h.pressed {
			h.pressed = false
			if h.keys.Trigger == TriggerOnClick && isClick(h.downX, h.downY, e.MouseX, e.MouseY) {
				h.picker.PointerMove(float32(e.MouseX), float32(e.MouseY), h.width, h.height)
				h.picker.Trigger()
			}
		}

	case input.EventMouseWheel:
		h.rig.Controls.Wheel(e.Wheel)

	case input.EventKeyDown:
		return h.key(e.Key)
	}
	return ActionNone
}

// Reserved reports whether k already drives navigation, so it cannot be
// bound to the trigger or capture action.
func Reserved(k input.Key) bool {
	switch k {
	case input.KeyEscape, input.KeyLeft, input.KeyRight, input.KeyUp, input.KeyDown,
		input.KeyPageUp, input.KeyPageDown, input.KeyTab, input.KeyR:
		return true
	}
	return false
}

func (h *Handler) key(k input.Key) Action {
	switch {
	case k == input.KeyEscape:
		return ActionQuit
	case h.keys.Trigger == TriggerOnKey && k == h.keys.TriggerKey:
		h.picker.Trigger()
		return ActionNone
	case h.keys.CaptureKey != input.KeyUnknown && k == h.keys.CaptureKey:
		return ActionCapture
	}

	step := h.keys.Step
	switch k {
	case input.KeyLeft:
		h.rig.AdjustAxis(camera.AxisX, -step)
	case input.KeyRight:
		h.rig.AdjustAxis(camera.AxisX, step)
	case input.KeyUp:
		h.rig.AdjustAxis(camera.AxisZ, -step)
	case input.KeyDown:
		h.rig.AdjustAxis(camera.AxisZ, step)
	case input.KeyPageUp:
		h.rig.AdjustAxis(camera.AxisY, step)
	case input.KeyPageDown:
		h.rig.AdjustAxis(camera.AxisY, -step)
	case input.KeyTab:
		h.rig.AutoRotate = !h.rig.AutoRotate
		h.log.Debug("Auto rotate", zap.Bool("enabled", h.rig.AutoRotate))
	case input.KeyR:
		h.Reset()
	}
	return ActionNone
}

// Reset restores the home view, clears markers and runs OnReset.
func (h *Handler) Reset() {
	h.rig.Reset()
	h.picker.Clear()
	if h.OnReset != nil {
		h.OnReset()
	}
	h.log.Info("View reset")
}

func trackballButton(b input.Button) (camera.Button, bool) {
	switch b {
	case input.ButtonLeft:
		return camera.ButtonLeft, true
	case input.ButtonMiddle:
		return camera.ButtonMiddle, true
	case input.ButtonRight:
		return camera.ButtonRight, true
	}
	return 0, false
}

func isClick(x0, y0, x1, y1 int) bool {
	dx, dy := x1-x0, y1-y0
	return dx*dx+dy*dy <= clickSlop*clickSlop
}

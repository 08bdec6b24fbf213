package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/cloudview/internal/engine/framebuffer"
	"github.com/Faultbox/cloudview/internal/engine/input"
)

// SceneView shows the offscreen frame behind every other window and feeds
// pointer and key input that no widget claimed back to the viewer.
type SceneView struct {
	fb            *framebuffer.Framebuffer
	x, y          float32
	width, height int
	scale         float32

	poller input.Poller
}

// NewSceneView creates a width x height view. Its render target is
// created by Init once GL is loaded.
func NewSceneView(width, height int) *SceneView {
	return &SceneView{width: max(width, 1), height: max(height, 1), scale: 1}
}

// Init creates the render target.
func (v *SceneView) Init() error {
	w, h := v.DrawableSize()
	fb, err := framebuffer.New(int32(w), int32(h))
	if err != nil {
		return err
	}
	v.fb = fb
	return nil
}

// Size returns the view size in screen coordinates.
func (v *SceneView) Size() (width, height int) {
	return v.width, v.height
}

// DrawableSize returns the render target size in pixels.
func (v *SceneView) DrawableSize() (width, height int) {
	if v.fb == nil {
		return int(float32(v.width) * v.scale), int(float32(v.height) * v.scale)
	}
	w, h := v.fb.Size()
	return int(w), int(h)
}

// Begin binds the render target.
func (v *SceneView) Begin() func() {
	return v.fb.Begin()
}

// ReadPixels reads the render target.
func (v *SceneView) ReadPixels() []byte {
	return v.fb.ReadPixels()
}

// Layout fits the view to the main viewport and reports whether the size
// changed. Call once per frame before rendering.
func (v *SceneView) Layout() bool {
	x, y, w, h := Viewport()
	v.x, v.y = x, y

	scale := imgui.CurrentIO().DisplayFramebufferScale()
	if scale.X > 0 {
		v.scale = scale.X
	}

	width, height := max(int(w), 1), max(int(h), 1)
	resized := v.fb.EnsureSize(int32(float32(width)*v.scale), int32(float32(height)*v.scale))
	if width != v.width || height != v.height {
		v.width, v.height = width, height
		resized = true
	}
	return resized
}

// Poll returns this frame's input in view coordinates. Pointer input over
// other windows and keys typed into widgets are left to ImGui.
func (v *SceneView) Poll() []input.Event {
	io := imgui.CurrentIO()

	var keys []input.Key
	if !io.WantCaptureKeyboard() && !imgui.IsAnyItemActive() {
		for k := input.KeySpace; k <= input.KeyZ; k++ {
			if IsKeyPressed(k) {
				keys = append(keys, k)
			}
		}
	}
	if io.WantCaptureMouse() {
		return v.poller.Away(keys)
	}

	mouse := imgui.MousePos()
	return v.poller.Events(input.Snapshot{
		X: mouse.X - v.x,
		Y: mouse.Y - v.y,
		Buttons: [3]bool{
			imgui.IsMouseDown(imgui.MouseButtonLeft),
			imgui.IsMouseDown(imgui.MouseButtonMiddle),
			imgui.IsMouseDown(imgui.MouseButtonRight),
		},
		Wheel: io.MouseWheel(),
		Keys:  keys,
	})
}

// Draw shows the last rendered frame across the viewport.
func (v *SceneView) Draw() {
	w, h := float32(v.width), float32(v.height)
	imgui.SetNextWindowPos(imgui.NewVec2(v.x, v.y))
	imgui.SetNextWindowSize(imgui.NewVec2(w, h))

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(v.fb.ColorTexture()))
		imgui.ImageV(*texRef, imgui.NewVec2(w, h), imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// Destroy releases the render target.
func (v *SceneView) Destroy() {
	if v.fb != nil {
		v.fb.Destroy()
	}
}

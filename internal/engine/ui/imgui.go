// Package ui hosts the viewer inside a Dear ImGui window: the backend that
// owns the window and frame loop, and the scene view that shows the
// offscreen frame and turns ImGui input into viewer events.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/logger"
)

// Backend wraps the ImGui SDL backend.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger
}

// NewBackend creates the window and its GL context.
func NewBackend(title string, width, height int) (*Backend, error) {
	b := &Backend{log: logger.Named("ui")}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	b.backend.CreateWindow(title, width, height)

	b.log.Info("ImGui window created", zap.String("title", title),
		zap.Int("width", width), zap.Int("height", height))
	return b, nil
}

// Run starts the frame loop. It returns after Close.
func (b *Backend) Run(frame func()) {
	b.backend.Run(frame)
}

// Close asks the frame loop to end after the current frame.
func (b *Backend) Close() {
	b.backend.SetShouldClose(true)
}

// Viewport returns the main viewport work area.
func Viewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// imguiKey maps a viewer key to ImGui's key enum.
func imguiKey(k input.Key) (imgui.Key, bool) {
	if k >= input.KeyA && k <= input.KeyZ {
		return imgui.KeyA + imgui.Key(k-input.KeyA), true
	}
	switch k {
	case input.KeySpace:
		return imgui.KeySpace, true
	case input.KeyEnter:
		return imgui.KeyEnter, true
	case input.KeyEscape:
		return imgui.KeyEscape, true
	case input.KeyTab:
		return imgui.KeyTab, true
	case input.KeyLeft:
		return imgui.KeyLeftArrow, true
	case input.KeyRight:
		return imgui.KeyRightArrow, true
	case input.KeyUp:
		return imgui.KeyUpArrow, true
	case input.KeyDown:
		return imgui.KeyDownArrow, true
	case input.KeyPageUp:
		return imgui.KeyPageUp, true
	case input.KeyPageDown:
		return imgui.KeyPageDown, true
	}
	return 0, false
}

// IsKeyPressed checks if a viewer key was pressed this frame.
func IsKeyPressed(k input.Key) bool {
	key, ok := imguiKey(k)
	return ok && imgui.IsKeyChordPressed(imgui.KeyChord(key))
}

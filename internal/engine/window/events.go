package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cloudview/internal/engine/input"
)

var scancodes = map[sdl.Scancode]input.Key{
	sdl.SCANCODE_SPACE:    input.KeySpace,
	sdl.SCANCODE_RETURN:   input.KeyEnter,
	sdl.SCANCODE_ESCAPE:   input.KeyEscape,
	sdl.SCANCODE_TAB:      input.KeyTab,
	sdl.SCANCODE_LEFT:     input.KeyLeft,
	sdl.SCANCODE_RIGHT:    input.KeyRight,
	sdl.SCANCODE_UP:       input.KeyUp,
	sdl.SCANCODE_DOWN:     input.KeyDown,
	sdl.SCANCODE_PAGEUP:   input.KeyPageUp,
	sdl.SCANCODE_PAGEDOWN: input.KeyPageDown,
}

func translateKey(sc sdl.Scancode) input.Key {
	if sc >= sdl.SCANCODE_A && sc <= sdl.SCANCODE_Z {
		return input.KeyA + input.Key(sc-sdl.SCANCODE_A)
	}
	return scancodes[sc]
}

func translateButton(b uint8) input.Button {
	switch b {
	case sdl.BUTTON_LEFT:
		return input.ButtonLeft
	case sdl.BUTTON_MIDDLE:
		return input.ButtonMiddle
	case sdl.BUTTON_RIGHT:
		return input.ButtonRight
	}
	return 0
}

// PollEvents drains SDL's queue into q. Returns true if the app should quit.
func (w *Window) PollEvents(q *input.Queue) bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			q.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				q.Push(input.Event{
					Type:   input.EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			t := input.EventKeyDown
			if e.Type == sdl.KEYUP {
				t = input.EventKeyUp
			}
			q.Push(input.Event{Type: t, Key: translateKey(e.Keysym.Scancode)})

		case *sdl.MouseMotionEvent:
			q.Push(input.Event{
				Type:   input.EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			t := input.EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				t = input.EventMouseUp
			}
			q.Push(input.Event{
				Type:   t,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: translateButton(e.Button),
			})

		case *sdl.MouseWheelEvent:
			y := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				y = -y
			}
			q.Push(input.Event{Type: input.EventMouseWheel, Wheel: y})
		}
	}
	return q.QuitRequested()
}

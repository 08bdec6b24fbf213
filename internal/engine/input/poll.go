package input

// Snapshot is the pointer state sampled once per frame from a host that
// reports state rather than events.
type Snapshot struct {
	X, Y    float32
	Buttons [3]bool // Left, middle, right
	Wheel   float32
	Keys    []Key // Pressed this frame
}

// Poller turns successive snapshots into events by edge detection.
type Poller struct {
	prevX, prevY float32
	prevButtons  [3]bool
	primed       bool
}

var snapshotButtons = [3]Button{ButtonLeft, ButtonMiddle, ButtonRight}

// Events returns the events implied by s relative to the previous snapshot.
// Moves come before presses and releases, then the wheel, then keys.
func (p *Poller) Events(s Snapshot) []Event {
	var events []Event
	x, y := int(s.X), int(s.Y)

	if !p.primed || s.X != p.prevX || s.Y != p.prevY {
		events = append(events, Event{Type: EventMouseMove, MouseX: x, MouseY: y})
	}

	for i, down := range s.Buttons {
		switch {
		case down && !p.prevButtons[i]:
			events = append(events, Event{Type: EventMouseDown, Button: snapshotButtons[i], MouseX: x, MouseY: y})
		case !down && p.prevButtons[i]:
			events = append(events, Event{Type: EventMouseUp, Button: snapshotButtons[i], MouseX: x, MouseY: y})
		}
	}

	if s.Wheel != 0 {
		events = append(events, Event{Type: EventMouseWheel, Wheel: s.Wheel})
	}
	for _, k := range s.Keys {
		events = append(events, Event{Type: EventKeyDown, Key: k})
	}

	p.prevX, p.prevY = s.X, s.Y
	p.prevButtons = s.Buttons
	p.primed = true
	return events
}

// Release returns up events for every held button, for when the pointer
// leaves the host area mid-drag.
func (p *Poller) Release() []Event {
	var events []Event
	for i, down := range p.prevButtons {
		if down {
			events = append(events, Event{
				Type:   EventMouseUp,
				Button: snapshotButtons[i],
				MouseX: int(p.prevX),
				MouseY: int(p.prevY),
			})
		}
	}
	p.prevButtons = [3]bool{}
	return events
}

// Away is Events for a frame where another window owns the pointer. Held
// buttons are released once and keys still pass through.
func (p *Poller) Away(keys []Key) []Event {
	events := p.Release()
	for _, k := range keys {
		events = append(events, Event{Type: EventKeyDown, Key: k})
	}
	return events
}

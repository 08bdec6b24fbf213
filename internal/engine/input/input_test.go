package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"space", KeySpace},
		{" Space ", KeySpace},
		{"escape", KeyEscape},
		{"pagedown", KeyPageDown},
		{"a", KeyA},
		{"Z", KeyZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, k)
		})
	}

	_, err := ParseKey("hyper")
	assert.Error(t, err)
}

func TestKeyStringRoundTrip(t *testing.T) {
	for k := KeySpace; k <= KeyZ; k++ {
		got, err := ParseKey(k.String())
		require.NoError(t, err, k.String())
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "unknown", KeyUnknown.String())
}

func TestQueue(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventKeyDown, Key: KeySpace})
	q.Push(Event{Type: EventMouseMove, MouseX: 3, MouseY: 4})

	require.Len(t, q.Events(), 2)
	assert.Equal(t, KeySpace, q.Events()[0].Key)
	assert.Equal(t, EventMouseMove, q.Events()[1].Type)
	assert.False(t, q.QuitRequested())

	q.Reset()
	assert.Empty(t, q.Events())

	q.Push(Event{Type: EventQuit})
	q.Reset()
	assert.True(t, q.QuitRequested(), "quit survives reset")
}

func TestPollerEdges(t *testing.T) {
	var p Poller

	// The first snapshot always reports the pointer position.
	events := p.Events(Snapshot{X: 10, Y: 20})
	require.Len(t, events, 1)
	assert.Equal(t, Event{Type: EventMouseMove, MouseX: 10, MouseY: 20}, events[0])

	// Unchanged state produces nothing.
	assert.Empty(t, p.Events(Snapshot{X: 10, Y: 20}))

	events = p.Events(Snapshot{X: 12, Y: 20, Buttons: [3]bool{true, false, false}})
	require.Len(t, events, 2)
	assert.Equal(t, EventMouseMove, events[0].Type)
	assert.Equal(t, Event{Type: EventMouseDown, Button: ButtonLeft, MouseX: 12, MouseY: 20}, events[1])

	// Held buttons do not repeat.
	assert.Empty(t, p.Events(Snapshot{X: 12, Y: 20, Buttons: [3]bool{true, false, false}}))

	events = p.Events(Snapshot{X: 12, Y: 20, Buttons: [3]bool{false, false, true}, Wheel: -1, Keys: []Key{KeySpace}})
	require.Len(t, events, 4)
	assert.Equal(t, Event{Type: EventMouseUp, Button: ButtonLeft, MouseX: 12, MouseY: 20}, events[0])
	assert.Equal(t, Event{Type: EventMouseDown, Button: ButtonRight, MouseX: 12, MouseY: 20}, events[1])
	assert.Equal(t, Event{Type: EventMouseWheel, Wheel: -1}, events[2])
	assert.Equal(t, Event{Type: EventKeyDown, Key: KeySpace}, events[3])
}

func TestPollerRelease(t *testing.T) {
	var p Poller
	p.Events(Snapshot{X: 5, Y: 6, Buttons: [3]bool{false, true, true}})

	events := p.Release()
	require.Len(t, events, 2)
	assert.Equal(t, Event{Type: EventMouseUp, Button: ButtonMiddle, MouseX: 5, MouseY: 6}, events[0])
	assert.Equal(t, Event{Type: EventMouseUp, Button: ButtonRight, MouseX: 5, MouseY: 6}, events[1])
	assert.Empty(t, p.Release())

	// Buttons still held after a release press again.
	events = p.Events(Snapshot{X: 5, Y: 6, Buttons: [3]bool{false, true, false}})
	require.Len(t, events, 1)
	assert.Equal(t, EventMouseDown, events[0].Type)
}

func TestPollerAwayKeepsKeys(t *testing.T) {
	var p Poller
	p.Events(Snapshot{X: 1, Y: 2, Buttons: [3]bool{true, false, false}})

	events := p.Away([]Key{KeyR})
	require.Len(t, events, 2)
	assert.Equal(t, Event{Type: EventMouseUp, Button: ButtonLeft, MouseX: 1, MouseY: 2}, events[0])
	assert.Equal(t, Event{Type: EventKeyDown, Key: KeyR}, events[1])

	// Staying away only forwards keys.
	assert.Empty(t, p.Away(nil))
	assert.Equal(t, []Event{{Type: EventKeyDown, Key: KeySpace}}, p.Away([]Key{KeySpace}))
}

package loop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameOrder(t *testing.T) {
	var q Queue
	var order []string
	l := New(&q, Steps{
		Update:   func() { order = append(order, "update") },
		Rotate:   func() { order = append(order, "rotate") },
		Render:   func() { order = append(order, "render") },
		OnRender: func() { order = append(order, "hook") },
	})

	l.Start()
	assert.Equal(t, 1, q.Len())
	assert.Equal(t, 1, q.RunPending())

	assert.Equal(t, []string{"update", "rotate", "render", "hook"}, order)
	assert.Equal(t, uint64(1), l.Frames())
	assert.Equal(t, 1, q.Len(), "loop should re-arm")
}

func TestStopCancelsPendingFrame(t *testing.T) {
	var q Queue
	renders := 0
	l := New(&q, Steps{Render: func() { renders++ }})

	l.Start()
	q.RunPending()
	q.RunPending()
	assert.Equal(t, 2, renders)

	l.Stop()
	assert.False(t, l.Running())
	q.RunPending()
	assert.Equal(t, 2, renders)
	assert.Equal(t, 0, q.Len())
}

func TestStartIsIdempotent(t *testing.T) {
	var q Queue
	renders := 0
	l := New(&q, Steps{Render: func() { renders++ }})

	l.Start()
	l.Start()
	assert.Equal(t, 1, q.Len())

	q.RunPending()
	assert.Equal(t, 1, renders)
}

func TestRestartDropsStaleFrame(t *testing.T) {
	var q Queue
	renders := 0
	l := New(&q, Steps{Render: func() { renders++ }})

	l.Start()
	l.Stop()
	l.Start()
	assert.Equal(t, 2, q.Len())

	// Only the frame from the second Start renders.
	q.RunPending()
	assert.Equal(t, 1, renders)
	assert.Equal(t, 1, q.Len())
}

func TestStopFromHook(t *testing.T) {
	var q Queue
	var l *Loop
	l = New(&q, Steps{OnRender: func() { l.Stop() }})

	l.Start()
	q.RunPending()
	assert.Equal(t, uint64(1), l.Frames())
	assert.Equal(t, 0, q.Len())
}

func TestNilStepsSkipped(t *testing.T) {
	var q Queue
	l := New(&q, Steps{})
	l.Start()
	assert.NotPanics(t, func() { q.RunPending() })
	assert.Equal(t, uint64(1), l.Frames())
}

func TestFPSWindowResets(t *testing.T) {
	var q Queue
	clock := time.Unix(0, 0)
	l := New(&q, Steps{})
	l.now = func() time.Time { return clock }

	l.Start()
	for i := 0; i < 3; i++ {
		clock = clock.Add(400 * time.Millisecond)
		q.RunPending()
	}
	// Third frame crosses the one second mark.
	assert.Equal(t, 0, l.fpsCount)
	assert.Equal(t, clock, l.fpsTimer)
}

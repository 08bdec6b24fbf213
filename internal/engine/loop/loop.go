// Package loop drives per-frame work from a host display-refresh scheduler.
package loop

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/logger"
)

// Scheduler runs fn once at the host's next display refresh.
type Scheduler interface {
	RequestFrame(fn func())
}

// Steps are the per-frame callbacks, run in field order. Nil steps are
// skipped.
type Steps struct {
	Update   func() // Camera controls
	Rotate   func() // Automatic rotation
	Render   func()
	OnRender func() // Caller hook, runs after the frame is drawn
}

// Loop re-arms itself on the scheduler after each frame until stopped.
type Loop struct {
	sched Scheduler
	steps Steps

	running bool
	gen     uint64
	frames  uint64

	fpsCount int
	fpsTimer time.Time
	lastTime time.Time
	now      func() time.Time

	log *zap.Logger
}

// New creates a stopped loop.
func New(sched Scheduler, steps Steps) *Loop {
	return &Loop{
		sched: sched,
		steps: steps,
		now:   time.Now,
		log:   logger.Named("loop"),
	}
}

// Start schedules the first frame. It is a no-op while running.
func (l *Loop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.gen++
	l.lastTime = l.now()
	l.fpsTimer = l.lastTime
	l.fpsCount = 0

	l.log.Info("Starting render loop")
	l.arm()
}

// Stop prevents any further frames. A frame already requested from the
// scheduler becomes a no-op.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.log.Info("Stopped render loop", zap.Uint64("frames", l.frames))
}

// Running reports whether the loop is active.
func (l *Loop) Running() bool {
	return l.running
}

// Frames returns the number of frames run since creation.
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) arm() {
	gen := l.gen
	l.sched.RequestFrame(func() { l.frame(gen) })
}

func (l *Loop) frame(gen uint64) {
	if !l.running || gen != l.gen {
		return
	}

	now := l.now()
	dt := now.Sub(l.lastTime)
	l.lastTime = now

	if l.steps.Update != nil {
		l.steps.Update()
	}
	if l.steps.Rotate != nil {
		l.steps.Rotate()
	}
	if l.steps.Render != nil {
		l.steps.Render()
	}
	if l.steps.OnRender != nil {
		l.steps.OnRender()
	}
	l.frames++

	l.fpsCount++
	if now.Sub(l.fpsTimer) >= time.Second {
		l.log.Debug("fps",
			zap.Int("count", l.fpsCount),
			zap.String("dt", fmt.Sprintf("%.2fms", dt.Seconds()*1000)))
		l.fpsCount = 0
		l.fpsTimer = now
	}

	// A step may have stopped the loop.
	if l.running && gen == l.gen {
		l.arm()
	}
}

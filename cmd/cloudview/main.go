// Package main is the point-cloud viewer in a bare SDL window.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/app"
	"github.com/Faultbox/cloudview/internal/config"
	"github.com/Faultbox/cloudview/internal/engine/framebuffer"
	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/engine/loop"
	"github.com/Faultbox/cloudview/internal/engine/window"
	"github.com/Faultbox/cloudview/internal/logger"
)

// windowSurface draws straight into the window's back buffer.
type windowSurface struct {
	*window.Window
}

func (s windowSurface) Begin() func() { return func() {} }

func (s windowSurface) ReadPixels() []byte {
	w, h := s.DrawableSize()
	return framebuffer.ReadDefault(int32(w), int32(h))
}

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Cloudview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	a, err := app.New(cfg, windowSurface{win}, app.Hooks{
		OnRender: win.SwapBuffers,
		OnIncompatible: func() {
			win.ShowError(cfg.Graphics.Title, "This viewer needs OpenGL 3.3 or newer.")
		},
	})
	if errors.Is(err, app.ErrCapabilityMissing) {
		return err
	}
	if err != nil {
		return fmt.Errorf("starting viewer: %w", err)
	}
	defer a.Close()

	sched := &loop.Queue{}
	events := input.NewQueue()
	a.Start(sched)

	for a.Running() {
		events.Reset()
		quit := win.PollEvents(events)
		for _, e := range events.Events() {
			if a.HandleEvent(e) {
				quit = true
			}
		}
		if quit {
			break
		}
		sched.RunPending()
	}

	logger.Info("render loop finished", zap.Uint64("frames", a.Frames()))
	return nil
}

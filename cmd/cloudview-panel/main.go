// Package main is the point-cloud viewer with a live settings panel, hosted
// in an ImGui window.
package main

import (
	"fmt"
	"os"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/app"
	"github.com/Faultbox/cloudview/internal/config"
	"github.com/Faultbox/cloudview/internal/engine/loop"
	"github.com/Faultbox/cloudview/internal/engine/ui"
	"github.com/Faultbox/cloudview/internal/logger"
	"github.com/Faultbox/cloudview/internal/panel"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Cloudview (panel) ===")

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	backend, err := ui.NewBackend(cfg.Graphics.Title, cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	view := ui.NewSceneView(cfg.Graphics.Width, cfg.Graphics.Height)
	a, err := app.New(cfg, view, app.Hooks{
		OnIncompatible: func() {
			dialog.Message("%s", "This viewer needs OpenGL 3.3 or newer.").
				Title(cfg.Graphics.Title).
				Error()
		},
	})
	if err != nil {
		return fmt.Errorf("starting viewer: %w", err)
	}
	defer a.Close()

	if err := view.Init(); err != nil {
		return fmt.Errorf("creating render target: %w", err)
	}
	defer view.Destroy()

	settings := panel.New("Settings")
	settings.BindControls(panel.Controls{
		Picker:     a.Picker,
		Rig:        a.Rig,
		ClearColor: &a.Renderer.ClearColor,
		ShowBounds: &a.Scene.ShowBounds,
		Reset:      a.Reset,
		Capture:    a.Screenshot,
		Save:       a.SaveSettings,
	})

	sched := &loop.Queue{}
	a.Start(sched)

	backend.Run(func() {
		if view.Layout() {
			a.Resize()
		}
		for _, e := range view.Poll() {
			if a.HandleEvent(e) {
				a.Stop()
				backend.Close()
				return
			}
		}
		sched.RunPending()
		view.Draw()
		settings.Draw()
	})

	logger.Info("render loop finished", zap.Uint64("frames", a.Frames()))
	return nil
}

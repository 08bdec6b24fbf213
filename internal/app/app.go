// Package app wires the point-cloud viewer together: configuration, scene,
// camera rig, picking, shaders and the render loop.
package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/config"
	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/engine/debug"
	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/engine/loop"
	"github.com/Faultbox/cloudview/internal/engine/renderer"
	"github.com/Faultbox/cloudview/internal/engine/scene"
	"github.com/Faultbox/cloudview/internal/engine/shader"
	"github.com/Faultbox/cloudview/internal/interaction"
	"github.com/Faultbox/cloudview/internal/logger"
)

// ErrCapabilityMissing is returned by New when the GL context cannot run
// the viewer.
var ErrCapabilityMissing = renderer.ErrCapabilityMissing

// Surface is what the host draws into.
type Surface interface {
	// Size is the coordinate space of pointer events.
	Size() (width, height int)
	// DrawableSize is the size in pixels.
	DrawableSize() (width, height int)
	// Begin binds the surface for drawing and returns the function that
	// unbinds it.
	Begin() (end func())
	// ReadPixels returns the last frame as bottom-up RGBA rows of
	// DrawableSize.
	ReadPixels() []byte
}

// Hooks are optional host callbacks.
type Hooks struct {
	// OnRender runs after every drawn frame.
	OnRender func()
	// OnIncompatible runs once during New when the GL context is unusable.
	OnIncompatible func()
}

// App owns every piece of viewer state.
type App struct {
	Config   *config.Config
	Scene    *scene.Scene
	Rig      *camera.Rig
	Picker   *interaction.Controller
	Input    *interaction.Handler
	Renderer *renderer.Renderer

	surface Surface
	hooks   Hooks

	loader  *shader.Loader
	watcher *shader.Watcher
	loop    *loop.Loop
	shots   *debug.Screenshots

	defaultClear [3]float32

	log *zap.Logger
}

// New checks the GL context, loads shaders and builds the scene. The host
// must have made its GL context current.
func New(cfg *config.Config, surface Surface, hooks Hooks) (*App, error) {
	log := logger.Named("app")

	bg, err := cfg.ClearColorRGB()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	sceneCfg, err := cfg.SceneSetup()
	if err != nil {
		return nil, err
	}
	pickCfg, err := cfg.PickerSetup()
	if err != nil {
		return nil, err
	}
	keys, err := cfg.KeyBindings()
	if err != nil {
		return nil, err
	}

	dw, dh := surface.DrawableSize()
	r, err := renderer.New(renderer.Config{Width: dw, Height: dh, ClearColor: bg})
	if err != nil {
		log.Error("Incompatible graphics context", zap.Error(err))
		if errors.Is(err, ErrCapabilityMissing) && hooks.OnIncompatible != nil {
			hooks.OnIncompatible()
		}
		return nil, err
	}

	a := &App{
		Config:       cfg,
		Renderer:     r,
		surface:      surface,
		hooks:        hooks,
		loader:       shader.NewLoader(cfg.Shaders.Dir),
		shots:        debug.NewScreenshots(cfg.Capture.Dir, "cloudview"),
		defaultClear: bg,
		log:          log,
	}

	if err := a.loadShaders(); err != nil {
		r.Close()
		return nil, err
	}
	if cfg.Shaders.Watch {
		a.watcher, err = shader.Watch(cfg.Shaders.Dir)
		if err != nil {
			log.Warn("Shader hot reload disabled", zap.Error(err))
		}
	}

	a.Scene = scene.Assemble(sceneCfg)
	r.Upload(a.Scene)

	w, h := surface.Size()
	a.Rig = cfg.NewRig(w, h)
	a.Picker = interaction.New(a.Scene, a.Rig.Camera, pickCfg)
	a.Input = interaction.NewHandler(a.Picker, a.Rig, keys, w, h)
	a.Input.OnReset = func() { a.Renderer.ClearColor = a.defaultClear }

	log.Info("Viewer ready",
		zap.Int("clouds", len(a.Scene.Clouds())),
		zap.Int("points_per_cloud", sceneCfg.Grid.Count()),
		zap.String("shaders", a.loader.Location()),
	)
	return a, nil
}

func (a *App) loadShaders() error {
	srcs, err := a.loader.LoadAll(shader.Names)
	if err != nil {
		a.log.Error("Loading shaders failed", zap.String("from", a.loader.Location()), zap.Error(err))
		return fmt.Errorf("loading shaders: %w", err)
	}
	if err := a.Renderer.LoadPrograms(srcs); err != nil {
		a.log.Error("Compiling shaders failed", zap.Error(err))
		return fmt.Errorf("compiling shaders: %w", err)
	}
	return nil
}

// HandleEvent applies one input event and reports whether the host should
// quit.
func (a *App) HandleEvent(e input.Event) (quit bool) {
	switch a.Input.Handle(e) {
	case interaction.ActionQuit:
		return true
	case interaction.ActionResize:
		a.Resize()
	case interaction.ActionCapture:
		a.Screenshot()
	}
	return false
}

// Resize re-reads the surface size.
func (a *App) Resize() {
	w, h := a.surface.Size()
	a.Input.SetViewport(w, h)
	a.Renderer.Resize(a.surface.DrawableSize())
}

// Capture writes the last drawn frame to a PNG and returns its path.
func (a *App) Capture() (string, error) {
	w, h := a.surface.DrawableSize()
	return a.shots.Save(a.surface.ReadPixels(), w, h)
}

// Screenshot captures the last frame and logs the outcome.
func (a *App) Screenshot() {
	path, err := a.Capture()
	if err != nil {
		a.log.Error("Screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("Screenshot saved", zap.String("path", path))
}

// SaveSettings writes the values edited at run time back to the config
// file.
func (a *App) SaveSettings() {
	a.Config.SetLive(config.Live{
		Threshold:     a.Picker.Threshold(),
		RotationSpeed: a.Rig.RotationSpeed,
		AutoRotate:    a.Rig.AutoRotate,
		ClearColor:    a.Renderer.ClearColor,
		ShowBounds:    a.Scene.ShowBounds,
	})
	path, err := a.Config.Save()
	if err != nil {
		a.log.Error("Saving settings failed", zap.String("path", path), zap.Error(err))
		return
	}
	a.log.Info("Settings saved", zap.String("path", path))
}

// Reset restores the home view and the default clear colour.
func (a *App) Reset() {
	a.Input.Reset()
}

// Start begins drawing on sched. It is a no-op while running.
func (a *App) Start(sched loop.Scheduler) {
	if a.loop != nil && a.loop.Running() {
		return
	}
	a.loop = loop.New(sched, loop.Steps{
		Update:   a.update,
		Rotate:   a.Rig.Spin,
		Render:   a.render,
		OnRender: a.hooks.OnRender,
	})
	a.loop.Start()
}

// Stop halts the render loop.
func (a *App) Stop() {
	if a.loop != nil {
		a.loop.Stop()
	}
}

// Running reports whether the render loop is active.
func (a *App) Running() bool {
	return a.loop != nil && a.loop.Running()
}

// Frames returns the number of frames drawn since the last Start.
func (a *App) Frames() uint64 {
	if a.loop == nil {
		return 0
	}
	return a.loop.Frames()
}

func (a *App) update() {
	a.reloadShaders()
	a.Rig.Update()
}

func (a *App) render() {
	end := a.surface.Begin()
	a.Renderer.Render(a.Scene, a.Rig.Camera)
	end()
}

func (a *App) reloadShaders() {
	if a.watcher == nil {
		return
	}
	for _, name := range a.watcher.Drain() {
		src, err := a.loader.Load(name)
		if err != nil {
			a.log.Warn("Shader reload skipped", zap.String("program", name), zap.Error(err))
			continue
		}
		if err := a.Renderer.Reload(src); err != nil {
			a.log.Error("Shader reload failed, keeping previous program",
				zap.String("program", name), zap.Error(err))
		}
	}
}

// Close stops the loop and releases GL resources.
func (a *App) Close() {
	a.Stop()
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			a.log.Warn("Closing shader watcher", zap.Error(err))
		}
	}
	a.Renderer.Close()
}

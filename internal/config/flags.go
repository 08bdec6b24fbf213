package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagPoints     = flag.Int("points", 0, "Grid width and length of every point cloud")
	flagThreshold  = flag.Float64("threshold", 0, "Pick distance in world units")
	flagTrigger    = flag.String("trigger", "", "Pick trigger: key or click")
	flagShaders    = flag.String("shaders", "", "Load shaders from this directory")
	flagWatch      = flag.Bool("watch", false, "Reload shaders when files change")
	flagRotate     = flag.Bool("rotate", false, "Start with automatic rotation")
	flagBounds     = flag.Bool("bounds", false, "Draw cloud bounding boxes")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagPoints > 0 {
		cfg.Cloud.Width = *flagPoints
		cfg.Cloud.Length = *flagPoints
	}
	if *flagThreshold > 0 {
		cfg.Interaction.Threshold = float32(*flagThreshold)
	}
	if *flagTrigger != "" {
		cfg.Interaction.Trigger = *flagTrigger
	}
	if *flagShaders != "" {
		cfg.Shaders.Dir = *flagShaders
	}
	if *flagWatch {
		cfg.Shaders.Watch = true
	}
	if *flagRotate {
		cfg.Camera.AutoRotate = true
	}
	if *flagBounds {
		cfg.Scene.ShowBounds = true
	}
}

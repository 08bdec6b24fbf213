// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Cloud       CloudConfig       `yaml:"cloud"`
	Scene       SceneConfig       `yaml:"scene"`
	Camera      CameraConfig      `yaml:"camera"`
	Controls    map[string]any    `yaml:"controls"` // Trackball options by name
	Interaction InteractionConfig `yaml:"interaction"`
	Shaders     ShaderConfig      `yaml:"shaders"`
	Capture     CaptureConfig     `yaml:"capture"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// CloudConfig is the sample grid each point cloud is generated from.
type CloudConfig struct {
	Width     int     `yaml:"width"`
	Length    int     `yaml:"length"`
	PointSize float32 `yaml:"point_size"`
}

// SceneConfig holds layout and look settings. Colours are hex strings.
type SceneConfig struct {
	Scale      float32       `yaml:"scale"`
	ClearColor string        `yaml:"clear_color"`
	AxesSize   float32       `yaml:"axes_size"`
	Fog        FogConfig     `yaml:"fog"`
	Colors     VariantColors `yaml:"colors"`
	Ambient    string        `yaml:"ambient"`
	Lights     []LightConfig `yaml:"lights"`
	ShowBounds bool          `yaml:"show_bounds"` // Cloud bounding boxes
}

// FogConfig is exponential-squared fog.
type FogConfig struct {
	Enabled bool    `yaml:"enabled"`
	Color   string  `yaml:"color"`
	Density float32 `yaml:"density"`
}

// VariantColors is the colour theme of each point cloud.
type VariantColors struct {
	Plain        string `yaml:"plain"`
	Indexed      string `yaml:"indexed"`
	IndexedGroup string `yaml:"indexed_group"`
	Regular      string `yaml:"regular"`
}

// LightConfig is a directional light. Position wins over azimuth/elevation
// when set.
type LightConfig struct {
	Position  [3]float32 `yaml:"position,flow"`
	Azimuth   float32    `yaml:"azimuth"`
	Elevation float32    `yaml:"elevation"`
	Color     string     `yaml:"color"`
	Intensity float32    `yaml:"intensity"`
}

// CameraConfig holds the perspective camera and navigation settings.
type CameraConfig struct {
	Fov           float32      `yaml:"fov"` // Degrees
	Near          float32      `yaml:"near"`
	Far           float32      `yaml:"far"`
	Position      [3]float32   `yaml:"position,flow"`
	Bounds        BoundsConfig `yaml:"bounds"`
	Step          float32      `yaml:"step"`           // Keyboard navigation offset
	RotationSpeed float32      `yaml:"rotation_speed"` // Radians per frame
	AutoRotate    bool         `yaml:"auto_rotate"`
}

// BoundsConfig is the [min, max] navigation range per axis.
type BoundsConfig struct {
	X [2]float32 `yaml:"x,flow"`
	Y [2]float32 `yaml:"y,flow"`
	Z [2]float32 `yaml:"z,flow"`
}

// Trigger modes.
const (
	TriggerKey   = "key"
	TriggerClick = "click"
)

// InteractionConfig holds picking settings.
type InteractionConfig struct {
	Threshold    float32 `yaml:"threshold"`
	Trigger      string  `yaml:"trigger"` // "key" or "click"
	Key          string  `yaml:"key"`     // Key name when Trigger is "key"
	MarkerRadius float32 `yaml:"marker_radius"`
	HitColor     string  `yaml:"hit_color"`
	NearestColor string  `yaml:"nearest_color"`
}

// ShaderConfig selects where shader sources come from.
type ShaderConfig struct {
	Dir   string `yaml:"dir"`   // Empty uses the built-in sources
	Watch bool   `yaml:"watch"` // Reload on change, requires Dir
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir string `yaml:"dir"`
	Key string `yaml:"key"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:  "Cloudview",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Cloud: CloudConfig{
			Width:     150,
			Length:    150,
			PointSize: 0.05,
		},
		Scene: SceneConfig{
			Scale:      10,
			ClearColor: "#000000",
			AxesSize:   0.5,
			Fog: FogConfig{
				Enabled: true,
				Color:   "#000000",
				Density: 0.08,
			},
			Colors: VariantColors{
				Plain:        "#66b8ff",
				Indexed:      "#00ffad",
				IndexedGroup: "#ffab4c",
				Regular:      "#d199ff",
			},
			Ambient: "#222222",
			Lights: []LightConfig{
				{Position: [3]float32{1, 1, 1}, Color: "#00ff00", Intensity: 1},
				{Position: [3]float32{-1, -1, -1}, Color: "#002288", Intensity: 1},
			},
		},
		Camera: CameraConfig{
			Fov:      45,
			Near:     0.1,
			Far:      1000,
			Position: [3]float32{0, 0.5, 2},
			Bounds: BoundsConfig{
				X: [2]float32{-10, 10},
				Y: [2]float32{-10, 10},
				Z: [2]float32{-10, 10},
			},
			Step:          0.2,
			RotationSpeed: 0.005,
		},
		Controls: map[string]any{
			"rotate_speed":           2.0,
			"zoom_speed":             2.0,
			"pan_speed":              0.8,
			"no_zoom":                false,
			"no_pan":                 false,
			"static_moving":          true,
			"dynamic_damping_factor": 0.3,
		},
		Interaction: InteractionConfig{
			Threshold:    0.03,
			Trigger:      TriggerKey,
			Key:          "space",
			MarkerRadius: 0.02,
			HitColor:     "#ff0000",
			NearestColor: "#ffff00",
		},
		Capture: CaptureConfig{
			Dir: "screenshots",
			Key: "p",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

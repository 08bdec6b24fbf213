// Package scene assembles the point-cloud demo scene: four cloud variants at
// fixed offsets, lights, fog, an axis indicator and the current hit markers.
package scene

import (
	"github.com/Faultbox/cloudview/internal/cloud"
	"github.com/Faultbox/cloudview/internal/engine/lighting"
	"github.com/Faultbox/cloudview/internal/pointcloud"
	"github.com/Faultbox/cloudview/pkg/math"
)

// DefaultScale is the uniform scale applied to every cloud.
const DefaultScale = 10

// Layout maps each variant to its world offset. The offsets keep the
// scaled unit grids from overlapping.
var Layout = map[pointcloud.Kind]math.Vec3{
	pointcloud.KindPlain:        {X: -5, Y: 0, Z: 5},
	pointcloud.KindIndexed:      {X: 5, Y: 0, Z: 5},
	pointcloud.KindIndexedGroup: {X: 5, Y: 0, Z: -5},
	pointcloud.KindRegular:      {X: -5, Y: 0, Z: -5},
}

// DefaultColors are the per-variant colour themes.
var DefaultColors = map[pointcloud.Kind]cloud.RGB{
	pointcloud.KindPlain:        {R: 0.4, G: 0.722, B: 1},
	pointcloud.KindIndexed:      {R: 0, G: 1, B: 0.68},
	pointcloud.KindIndexedGroup: {R: 1, G: 0.67, B: 0.298},
	pointcloud.KindRegular:      {R: 0.819, G: 0.6, B: 1},
}

// Fog is squared exponential distance fog:
// factor = 1 - exp(-(density * distance)^2).
type Fog struct {
	Enabled bool
	Color   [3]float32
	Density float32
}

// Axes is the small axis indicator drawn at the origin.
type Axes struct {
	Size float32
}

// Lines returns the indicator as line-segment vertices (x, y, z, r, g, b),
// two vertices per axis.
func (a Axes) Lines() []float32 {
	s := a.Size
	return []float32{
		0, 0, 0, 1, 0, 0, s, 0, 0, 1, 0, 0,
		0, 0, 0, 0, 1, 0, 0, s, 0, 0, 1, 0,
		0, 0, 0, 0, 0, 1, 0, 0, s, 0, 0, 1,
	}
}

// Marker is a sphere dropped on a ray hit.
type Marker struct {
	Position math.Vec3
	Color    [3]float32
	Radius   float32
	Nearest  bool
}

// Config controls scene assembly.
type Config struct {
	Grid   cloud.Grid
	Scale  float32
	Colors map[pointcloud.Kind]cloud.RGB
	Fog    Fog
	Axes   Axes

	// ShowBounds draws each cloud's bounding box.
	ShowBounds bool

	Ambient lighting.Ambient
	Lights  []lighting.Directional
}

// DefaultConfig returns the reference layout configuration.
func DefaultConfig() Config {
	return Config{
		Grid:  cloud.Grid{Width: 150, Length: 150, PointSize: 0.05},
		Scale: DefaultScale,
		Fog: Fog{
			Enabled: true,
			Color:   [3]float32{0, 0, 0},
			Density: 0.08,
		},
		Axes:    Axes{Size: 0.5},
		Ambient: lighting.Ambient{Color: [3]float32{0.133, 0.133, 0.133}, Intensity: 1},
		Lights: []lighting.Directional{
			lighting.DirectionalFrom([3]float32{1, 1, 1}, [3]float32{0, 1, 0}, 1),
			lighting.DirectionalFrom([3]float32{-1, -1, -1}, [3]float32{0, 0.133, 0.533}, 1),
		},
	}
}

// Scene owns the point clouds and the hit markers.
type Scene struct {
	clouds  []*pointcloud.Points
	markers []Marker

	Fog        Fog
	Axes       Axes
	ShowBounds bool
	Ambient    lighting.Ambient
	Lights     []lighting.Directional
}

// Assemble builds the four variants and places them according to Layout.
func Assemble(cfg Config) *Scene {
	scale := cfg.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	s := &Scene{
		Fog:        cfg.Fog,
		Axes:       cfg.Axes,
		ShowBounds: cfg.ShowBounds,
		Ambient:    cfg.Ambient,
		Lights:     cfg.Lights,
	}

	for _, kind := range pointcloud.Kinds {
		color, ok := cfg.Colors[kind]
		if !ok {
			color = DefaultColors[kind]
		}
		p := pointcloud.Build(kind, cfg.Grid, color)
		p.Transform = pointcloud.Transform{Scale: scale, Position: Layout[kind]}
		s.clouds = append(s.clouds, p)
	}
	return s
}

// Clouds returns the point clouds in layout order. Callers must not modify
// the slice.
func (s *Scene) Clouds() []*pointcloud.Points {
	return s.clouds
}

// Markers returns the live hit markers.
func (s *Scene) Markers() []Marker {
	return s.markers
}

// ReplaceMarkers drops every marker and installs the given set.
func (s *Scene) ReplaceMarkers(markers []Marker) {
	s.markers = append(s.markers[:0:0], markers...)
}

// ClearMarkers removes every marker.
func (s *Scene) ClearMarkers() {
	s.markers = nil
}

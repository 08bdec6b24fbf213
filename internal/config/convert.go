package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cloudview/internal/cloud"
	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/engine/lighting"
	"github.com/Faultbox/cloudview/internal/engine/scene"
	"github.com/Faultbox/cloudview/internal/interaction"
	"github.com/Faultbox/cloudview/internal/pointcloud"
	"github.com/Faultbox/cloudview/pkg/math"
)

// colorParser collects parse errors so a conversion can read several
// colours and check once.
type colorParser struct {
	errs []error
}

func (p *colorParser) parse(name, hex string) [3]float32 {
	c, err := ParseColor(hex)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %w", name, err))
	}
	return c
}

func (p *colorParser) err() error {
	return errors.Join(p.errs...)
}

// ClearColorRGB returns the parsed background colour.
func (c *Config) ClearColorRGB() ([3]float32, error) {
	return ParseColor(c.Scene.ClearColor)
}

// SceneSetup converts the cloud and scene sections into an assembly config.
func (c *Config) SceneSetup() (scene.Config, error) {
	var p colorParser
	sc := c.Scene

	variant := func(name, hex string) cloud.RGB {
		rgb := p.parse("scene.colors."+name, hex)
		return cloud.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
	}

	out := scene.Config{
		Grid: cloud.Grid{
			Width:     c.Cloud.Width,
			Length:    c.Cloud.Length,
			PointSize: c.Cloud.PointSize,
		},
		Scale: sc.Scale,
		Colors: map[pointcloud.Kind]cloud.RGB{
			pointcloud.KindPlain:        variant("plain", sc.Colors.Plain),
			pointcloud.KindIndexed:      variant("indexed", sc.Colors.Indexed),
			pointcloud.KindIndexedGroup: variant("indexed_group", sc.Colors.IndexedGroup),
			pointcloud.KindRegular:      variant("regular", sc.Colors.Regular),
		},
		Fog: scene.Fog{
			Enabled: sc.Fog.Enabled,
			Color:   p.parse("scene.fog.color", sc.Fog.Color),
			Density: sc.Fog.Density,
		},
		Axes:       scene.Axes{Size: sc.AxesSize},
		ShowBounds: sc.ShowBounds,
		Ambient:    lighting.Ambient{Color: p.parse("scene.ambient", sc.Ambient), Intensity: 1},
	}

	for i, l := range sc.Lights {
		color := p.parse(fmt.Sprintf("scene.lights[%d].color", i), l.Color)
		if l.Position != ([3]float32{}) {
			out.Lights = append(out.Lights, lighting.DirectionalFrom(l.Position, color, l.Intensity))
			continue
		}
		d := lighting.NewDirectional(l.Azimuth, l.Elevation, l.Intensity)
		d.Color = color
		out.Lights = append(out.Lights, d)
	}

	if err := p.err(); err != nil {
		return scene.Config{}, err
	}
	return out, nil
}

// PickerSetup converts the interaction section into raycast settings.
func (c *Config) PickerSetup() (interaction.Config, error) {
	var p colorParser
	ic := c.Interaction
	out := interaction.Config{
		Threshold:    ic.Threshold,
		MarkerRadius: ic.MarkerRadius,
		HitColor:     p.parse("interaction.hit_color", ic.HitColor),
		NearestColor: p.parse("interaction.nearest_color", ic.NearestColor),
	}
	if err := p.err(); err != nil {
		return interaction.Config{}, err
	}
	return out, nil
}

// KeyBindings converts the interaction and capture keys.
func (c *Config) KeyBindings() (interaction.Bindings, error) {
	b := interaction.Bindings{
		Trigger: interaction.TriggerOnKey,
		Step:    c.Camera.Step,
	}
	if c.Interaction.Trigger == TriggerClick {
		b.Trigger = interaction.TriggerOnClick
	}

	if b.Trigger == interaction.TriggerOnKey {
		k, err := input.ParseKey(c.Interaction.Key)
		if err != nil {
			return b, fmt.Errorf("interaction: %w", err)
		}
		b.TriggerKey = k
	}
	if c.Capture.Key != "" {
		k, err := input.ParseKey(c.Capture.Key)
		if err != nil {
			return b, fmt.Errorf("capture: %w", err)
		}
		b.CaptureKey = k
	}
	return b, nil
}

// Live holds the settings the panel edits while the viewer runs.
type Live struct {
	Threshold     float32
	RotationSpeed float32
	AutoRotate    bool
	ClearColor    [3]float32
	ShowBounds    bool
}

// SetLive copies run-time edits back into c so Save persists them.
func (c *Config) SetLive(l Live) {
	c.Interaction.Threshold = l.Threshold
	c.Camera.RotationSpeed = l.RotationSpeed
	c.Camera.AutoRotate = l.AutoRotate
	c.Scene.ClearColor = FormatColor(l.ClearColor)
	c.Scene.ShowBounds = l.ShowBounds
}

// NewRig builds the camera and its rig for a width x height viewport. The
// configured position becomes the rig's home pose.
func (c *Config) NewRig(width, height int) *camera.Rig {
	cc := c.Camera
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}

	cam := camera.NewPerspective(cc.Fov, aspect, cc.Near, cc.Far)
	cam.Position = math.V3(cc.Position)
	cam.Target = math.Vec3{}
	cam.Up = math.Vec3{Y: 1}

	rig := camera.NewRig(cam)
	rig.RotationSpeed = cc.RotationSpeed
	rig.AutoRotate = cc.AutoRotate
	rig.Home = camera.Pose{Position: cam.Position, Target: cam.Target, Up: cam.Up}
	rig.Controls.SetScreen(0, 0, float32(width), float32(height))
	rig.Controls.ApplyOptions(c.Controls)
	rig.SetBounds([3]camera.AxisRange{
		{Min: cc.Bounds.X[0], Max: cc.Bounds.X[1]},
		{Min: cc.Bounds.Y[0], Max: cc.Bounds.Y[1]},
		{Min: cc.Bounds.Z[0], Max: cc.Bounds.Z[1]},
	})
	return rig
}

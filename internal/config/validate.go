package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/interaction"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Graphics.Width > 0 && c.Graphics.Height > 0,
		"graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height)

	// An empty grid is allowed and renders nothing.
	check(c.Cloud.Width >= 0 && c.Cloud.Length >= 0,
		"cloud: grid %dx%d must not be negative", c.Cloud.Width, c.Cloud.Length)
	check(c.Cloud.PointSize > 0, "cloud: point_size %v must be positive", c.Cloud.PointSize)

	check(c.Scene.Scale > 0, "scene: scale %v must be positive", c.Scene.Scale)
	check(c.Scene.Fog.Density >= 0, "scene: fog density %v must not be negative", c.Scene.Fog.Density)

	check(c.Camera.Fov > 0 && c.Camera.Fov < 180, "camera: fov %v must be in (0, 180)", c.Camera.Fov)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near,
		"camera: need 0 < near (%v) < far (%v)", c.Camera.Near, c.Camera.Far)
	for _, b := range []struct {
		axis string
		r    [2]float32
	}{{"x", c.Camera.Bounds.X}, {"y", c.Camera.Bounds.Y}, {"z", c.Camera.Bounds.Z}} {
		check(b.r[0] <= b.r[1], "camera: bounds.%s min %v > max %v", b.axis, b.r[0], b.r[1])
	}
	check(c.Camera.Step >= 0, "camera: step %v must not be negative", c.Camera.Step)

	check(c.Interaction.Threshold > 0, "interaction: threshold %v must be positive", c.Interaction.Threshold)
	check(c.Interaction.Trigger == TriggerKey || c.Interaction.Trigger == TriggerClick,
		"interaction: trigger %q must be %q or %q", c.Interaction.Trigger, TriggerKey, TriggerClick)
	check(c.Interaction.Trigger != TriggerKey || c.Interaction.Key != "",
		"interaction: key must be set for trigger %q", TriggerKey)

	trigger := input.KeyUnknown
	if c.Interaction.Trigger == TriggerKey && c.Interaction.Key != "" {
		k, err := input.ParseKey(c.Interaction.Key)
		if err != nil {
			errs = append(errs, fmt.Errorf("interaction: %w", err))
		} else {
			trigger = k
			check(!interaction.Reserved(k), "interaction: key %q is reserved for navigation", k)
		}
	}
	if c.Capture.Key != "" {
		k, err := input.ParseKey(c.Capture.Key)
		if err != nil {
			errs = append(errs, fmt.Errorf("capture: %w", err))
		} else {
			check(!interaction.Reserved(k), "capture: key %q is reserved for navigation", k)
			check(k != trigger, "capture: key %q is already the interaction key", k)
		}
	}

	check(!c.Shaders.Watch || c.Shaders.Dir != "", "shaders: watch requires dir")

	colors := map[string]string{
		"scene.clear_color":          c.Scene.ClearColor,
		"scene.fog.color":            c.Scene.Fog.Color,
		"scene.ambient":              c.Scene.Ambient,
		"scene.colors.plain":         c.Scene.Colors.Plain,
		"scene.colors.indexed":       c.Scene.Colors.Indexed,
		"scene.colors.indexed_group": c.Scene.Colors.IndexedGroup,
		"scene.colors.regular":       c.Scene.Colors.Regular,
		"interaction.hit_color":      c.Interaction.HitColor,
		"interaction.nearest_color":  c.Interaction.NearestColor,
	}
	for i, l := range c.Scene.Lights {
		colors[fmt.Sprintf("scene.lights[%d].color", i)] = l.Color
	}
	for _, key := range sortedKeys(colors) {
		if _, err := ParseColor(colors[key]); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package config

import (
	"strings"
	"testing"

	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/interaction"
	"github.com/Faultbox/cloudview/internal/pointcloud"
)

func TestSceneSetup(t *testing.T) {
	cfg := Default()
	cfg.Scene.Lights = append(cfg.Scene.Lights, LightConfig{Elevation: 90, Color: "#ffffff", Intensity: 0.5})

	sc, err := cfg.SceneSetup()
	if err != nil {
		t.Fatalf("SceneSetup: %v", err)
	}

	if sc.Grid.Count() != 150*150 {
		t.Errorf("expected 22500 points, got %d", sc.Grid.Count())
	}
	if sc.Scale != 10 {
		t.Errorf("expected scale 10, got %v", sc.Scale)
	}
	if got := sc.Colors[pointcloud.KindIndexed]; got.G != 1 || got.R != 0 {
		t.Errorf("unexpected indexed colour %+v", got)
	}
	if !sc.Fog.Enabled || sc.Fog.Density != 0.08 {
		t.Errorf("unexpected fog %+v", sc.Fog)
	}
	if len(sc.Lights) != 3 {
		t.Fatalf("expected 3 lights, got %d", len(sc.Lights))
	}

	// Position lights point from the origin towards the position.
	if d := sc.Lights[0].Direction; d[0] <= 0 || d[0] != d[1] || d[1] != d[2] {
		t.Errorf("expected diagonal direction, got %v", d)
	}
	// Azimuth/elevation lights use the sun direction.
	if d := sc.Lights[2].Direction; d[1] < 0.999 {
		t.Errorf("expected overhead light, got %v", d)
	}
	if sc.Lights[2].Intensity != 0.5 {
		t.Errorf("expected intensity 0.5, got %v", sc.Lights[2].Intensity)
	}
}

func TestSceneSetupReportsEveryBadColor(t *testing.T) {
	cfg := Default()
	cfg.Scene.Colors.Plain = "blue"
	cfg.Scene.Fog.Color = "#12"

	_, err := cfg.SceneSetup()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"scene.colors.plain", "scene.fog.color"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestPickerSetup(t *testing.T) {
	pc, err := Default().PickerSetup()
	if err != nil {
		t.Fatalf("PickerSetup: %v", err)
	}
	if pc.Threshold != 0.03 || pc.MarkerRadius != 0.02 {
		t.Errorf("unexpected threshold/radius %v/%v", pc.Threshold, pc.MarkerRadius)
	}
	if pc.HitColor != [3]float32{1, 0, 0} {
		t.Errorf("expected red hits, got %v", pc.HitColor)
	}
	if pc.NearestColor != [3]float32{1, 1, 0} {
		t.Errorf("expected yellow nearest, got %v", pc.NearestColor)
	}
}

func TestKeyBindings(t *testing.T) {
	cfg := Default()
	b, err := cfg.KeyBindings()
	if err != nil {
		t.Fatalf("KeyBindings: %v", err)
	}
	if b.Trigger != interaction.TriggerOnKey || b.TriggerKey != input.KeySpace {
		t.Errorf("expected space trigger, got %+v", b)
	}
	if b.CaptureKey != input.KeyP {
		t.Errorf("expected capture on p, got %v", b.CaptureKey)
	}
	if b.Step != 0.2 {
		t.Errorf("expected step 0.2, got %v", b.Step)
	}

	cfg.Interaction.Trigger = TriggerClick
	cfg.Interaction.Key = ""
	cfg.Capture.Key = ""
	b, err = cfg.KeyBindings()
	if err != nil {
		t.Fatalf("KeyBindings: %v", err)
	}
	if b.Trigger != interaction.TriggerOnClick || b.CaptureKey != input.KeyUnknown {
		t.Errorf("expected click trigger without capture, got %+v", b)
	}

	cfg.Interaction.Trigger = TriggerKey
	cfg.Interaction.Key = "hyper"
	if _, err := cfg.KeyBindings(); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestNewRig(t *testing.T) {
	cfg := Default()
	cfg.Camera.AutoRotate = true
	cfg.Controls["rotate_speed"] = 4.0
	cfg.Controls["bogus"] = 1

	rig := cfg.NewRig(1600, 800)
	if rig.Camera.Aspect != 2 {
		t.Errorf("expected aspect 2, got %v", rig.Camera.Aspect)
	}
	if rig.Camera.Position.Z != 2 || rig.Camera.Position.Y != 0.5 {
		t.Errorf("unexpected position %+v", rig.Camera.Position)
	}
	if rig.Home.Position != rig.Camera.Position {
		t.Errorf("home %+v differs from start %+v", rig.Home.Position, rig.Camera.Position)
	}
	if rig.Bounds[2].Min != -10 || rig.Bounds[2].Max != 10 {
		t.Errorf("unexpected z bounds %+v", rig.Bounds[2])
	}
	if !rig.AutoRotate || rig.RotationSpeed != 0.005 {
		t.Errorf("unexpected rotation %v/%v", rig.AutoRotate, rig.RotationSpeed)
	}
	if rig.Controls.RotateSpeed != 4 {
		t.Errorf("expected rotate speed 4, got %v", rig.Controls.RotateSpeed)
	}
	// Zoom is capped at the diagonal of the [-10, 10] cube.
	if d := rig.Controls.MaxDistance; d < 34.6 || d > 34.65 {
		t.Errorf("expected max distance ~34.64, got %v", d)
	}
}

func TestSetLive(t *testing.T) {
	cfg := Default()
	cfg.SetLive(Live{
		Threshold:     0.2,
		RotationSpeed: 0.01,
		AutoRotate:    true,
		ClearColor:    [3]float32{1, 0.5, 0},
		ShowBounds:    true,
	})

	if cfg.Interaction.Threshold != 0.2 || cfg.Camera.RotationSpeed != 0.01 || !cfg.Camera.AutoRotate {
		t.Errorf("live values not copied: %+v %+v", cfg.Interaction, cfg.Camera)
	}
	if cfg.Scene.ClearColor != "#ff8000" {
		t.Errorf("expected clear color #ff8000, got %s", cfg.Scene.ClearColor)
	}
	if !cfg.Scene.ShowBounds {
		t.Error("expected show_bounds")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("saved settings must stay valid: %v", err)
	}
}

package panel

import (
	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/interaction"
)

// Field names used by BindControls.
const (
	FieldThreshold       = "threshold"
	FieldCameraX         = "camera.x"
	FieldCameraY         = "camera.y"
	FieldCameraZ         = "camera.z"
	FieldRotationSpeed   = "rotation.speed"
	FieldRotationEnabled = "rotation.enabled"
	FieldClearColor      = "clear color"
	FieldShowBounds      = "bounds"
	FieldReset           = "reset"
	FieldCapture         = "capture"
	FieldSave            = "save"
)

// MaxRotationSpeed is the slider limit for automatic rotation, radians per
// frame.
const MaxRotationSpeed = 0.05

// Controls are the live values the standard panel edits.
type Controls struct {
	Picker *interaction.Controller
	Rig    *camera.Rig

	// ClearColor is the renderer's background colour.
	ClearColor *[3]float32

	// ShowBounds toggles the cloud bounding boxes.
	ShowBounds *bool

	// Reset restores the home view.
	Reset func()

	// Capture saves a screenshot.
	Capture func()

	// Save writes the current settings to the config file.
	Save func()
}

// BindControls registers the standard fields. Nil targets are skipped.
func (p *Panel) BindControls(c Controls) {
	if c.Picker != nil {
		p.BindFloat(FloatField{
			Name:  FieldThreshold,
			Label: "Threshold",
			Min:   0.005,
			Max:   0.5,
			Get:   c.Picker.Threshold,
			Set:   c.Picker.SetThreshold,
		})
	}

	if c.Rig != nil {
		rig := c.Rig
		axes := []struct {
			name string
			axis camera.Axis
		}{
			{FieldCameraX, camera.AxisX},
			{FieldCameraY, camera.AxisY},
			{FieldCameraZ, camera.AxisZ},
		}
		for _, a := range axes {
			axis := a.axis
			r := rig.Bounds[axis]
			p.BindFloat(FloatField{
				Name:  a.name,
				Label: "Camera " + axis.String(),
				Min:   r.Min,
				Max:   r.Max,
				Get:   func() float32 { return rig.Axis(axis) },
				Set:   func(v float32) { rig.SetAxis(axis, v) },
			})
		}

		p.BindFloat(FloatField{
			Name:  FieldRotationSpeed,
			Label: "Rotation speed",
			Min:   0,
			Max:   MaxRotationSpeed,
			Get:   func() float32 { return rig.RotationSpeed },
			Set:   func(v float32) { rig.RotationSpeed = v },
		})
		p.BindBool(BoolField{
			Name:  FieldRotationEnabled,
			Label: "Auto rotate",
			Get:   func() bool { return rig.AutoRotate },
			Set:   func(v bool) { rig.AutoRotate = v },
		})
	}

	if c.ClearColor != nil {
		cc := c.ClearColor
		p.BindColor(ColorField{
			Name:  FieldClearColor,
			Label: "Clear color",
			Get:   func() [3]float32 { return *cc },
			Set:   func(v [3]float32) { *cc = v },
		})
	}

	if c.ShowBounds != nil {
		sb := c.ShowBounds
		p.BindBool(BoolField{
			Name:  FieldShowBounds,
			Label: "Show bounds",
			Get:   func() bool { return *sb },
			Set:   func(v bool) { *sb = v },
		})
	}

	if c.Reset != nil {
		p.BindAction(ActionField{Name: FieldReset, Label: "Reset", Run: c.Reset})
	}
	if c.Capture != nil {
		p.BindAction(ActionField{Name: FieldCapture, Label: "Screenshot", Run: c.Capture})
	}
	if c.Save != nil {
		p.BindAction(ActionField{Name: FieldSave, Label: "Save settings", Run: c.Save})
	}
}

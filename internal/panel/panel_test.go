package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/engine/scene"
	"github.com/Faultbox/cloudview/internal/interaction"
)

func TestFloatFieldClampsAndNotifies(t *testing.T) {
	p := New("test")
	var value, notified float32
	p.BindFloat(FloatField{
		Name:     "speed",
		Min:      0,
		Max:      1,
		Get:      func() float32 { return value },
		Set:      func(v float32) { value = v },
		OnChange: func(v float32) { notified = v },
	})

	require.NoError(t, p.Set("speed", 5.0))
	assert.Equal(t, float32(1), value)
	assert.Equal(t, float32(1), notified)

	require.NoError(t, p.Set("speed", -3))
	assert.Equal(t, float32(0), value)

	v, ok := p.Get("speed")
	require.True(t, ok)
	assert.Equal(t, float32(0), v)
}

func TestSetErrors(t *testing.T) {
	p := New("test")
	var b bool
	p.BindBool(BoolField{Name: "flag", Get: func() bool { return b }, Set: func(v bool) { b = v }})

	assert.ErrorIs(t, p.Set("missing", true), ErrUnknownField)

	err := p.Set("flag", 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownField)
	assert.False(t, b)

	_, ok := p.Get("missing")
	assert.False(t, ok)
}

func TestColorFieldClamps(t *testing.T) {
	p := New("test")
	var c [3]float32
	p.BindColor(ColorField{Name: "bg", Get: func() [3]float32 { return c }, Set: func(v [3]float32) { c = v }})

	require.NoError(t, p.Set("bg", [3]float32{-1, 0.5, 2}))
	assert.Equal(t, [3]float32{0, 0.5, 1}, c)
}

func TestRebindReplacesInPlace(t *testing.T) {
	p := New("test")
	var a, b float32
	p.BindFloat(FloatField{Name: "x", Get: func() float32 { return a }, Set: func(v float32) { a = v }})
	p.BindFloat(FloatField{Name: "y", Get: func() float32 { return 0 }, Set: func(float32) {}})
	p.BindFloat(FloatField{Name: "x", Get: func() float32 { return b }, Set: func(v float32) { b = v }})

	assert.Equal(t, []string{"x", "y"}, p.Names())
	require.NoError(t, p.Set("x", 3))
	assert.Equal(t, float32(0), a)
	assert.Equal(t, float32(3), b)
}

func TestBindControls(t *testing.T) {
	cam := camera.NewPerspective(45, 1, 0.1, 100)
	rig := camera.NewRig(cam)
	rig.Bounds[camera.AxisZ] = camera.AxisRange{Min: 1, Max: 10}
	picker := interaction.New(scene.Assemble(scene.DefaultConfig()), cam, interaction.DefaultConfig())
	bg := [3]float32{0, 0, 0}

	p := New("Settings")
	resets := 0
	p.BindControls(Controls{Picker: picker, Rig: rig, ClearColor: &bg, Reset: func() { resets++ }})

	assert.Equal(t, []string{
		FieldThreshold, FieldCameraX, FieldCameraY, FieldCameraZ,
		FieldRotationSpeed, FieldRotationEnabled, FieldClearColor, FieldReset,
	}, p.Names())

	require.NoError(t, p.Set(FieldReset, nil))
	assert.Equal(t, 1, resets)

	require.NoError(t, p.Set(FieldThreshold, 0.5))
	assert.Equal(t, float32(0.5), picker.Threshold())

	// Panel range follows the rig bounds.
	require.NoError(t, p.Set(FieldCameraZ, 11))
	assert.Equal(t, float32(10), cam.Position.Z)

	require.NoError(t, p.Set(FieldRotationEnabled, true))
	assert.True(t, rig.AutoRotate)

	require.NoError(t, p.Set(FieldRotationSpeed, 1.0))
	assert.Equal(t, float32(MaxRotationSpeed), rig.RotationSpeed)

	require.NoError(t, p.Set(FieldClearColor, [3]float32{0.2, 0.3, 0.4}))
	assert.Equal(t, [3]float32{0.2, 0.3, 0.4}, bg)

	// Values changed elsewhere are visible through the panel.
	rig.SetAxis(camera.AxisX, 7)
	v, _ := p.Get(FieldCameraX)
	assert.Equal(t, float32(7), v)
}

func TestBindControlsSkipsNil(t *testing.T) {
	p := New("Settings")
	p.BindControls(Controls{})
	assert.Empty(t, p.Names())
}

func TestBindControlsOverlayAndActions(t *testing.T) {
	show := false
	captures := 0
	saves := 0

	p := New("Settings")
	p.BindControls(Controls{
		ShowBounds: &show,
		Capture:    func() { captures++ },
		Save:       func() { saves++ },
	})
	assert.Equal(t, []string{FieldShowBounds, FieldCapture, FieldSave}, p.Names())

	require.NoError(t, p.Set(FieldShowBounds, true))
	assert.True(t, show)

	require.NoError(t, p.Set(FieldCapture, nil))
	assert.Equal(t, 1, captures)

	require.NoError(t, p.Set(FieldSave, nil))
	assert.Equal(t, 1, saves)
}

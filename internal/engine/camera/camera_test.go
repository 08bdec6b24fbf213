package camera

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cloudview/pkg/math"
)

const eps = 1e-4

func newTestRig() *Rig {
	c := NewPerspective(45, 1, 0.1, 1000)
	r := NewRig(c)
	r.Controls.SetScreen(0, 0, 800, 600)
	return r
}

func TestNewPerspective(t *testing.T) {
	c := NewPerspective(90, 0, 1, 100)
	assert.InDelta(t, math32.Pi/2, c.Fov, eps)
	assert.Equal(t, float32(1), c.Aspect)
	assert.Equal(t, math.Vec3{Y: 1}, c.Up)

	c.SetViewport(1600, 800)
	assert.InDelta(t, 2.0, c.Aspect, eps)
	c.SetViewport(0, 10)
	assert.InDelta(t, 2.0, c.Aspect, eps)
}

func TestViewProjectionCentersTarget(t *testing.T) {
	c := NewPerspective(60, 1.5, 0.1, 100)
	c.Target = math.Vec3{X: 1, Y: 2, Z: 3}
	clip := c.ViewProjection().MulVec4(math.Vec4{1, 2, 3, 1})
	assert.InDelta(t, 0, clip[0]/clip[3], eps)
	assert.InDelta(t, 0, clip[1]/clip[3], eps)
}

func TestAdjustAxisClamps(t *testing.T) {
	r := newTestRig()
	r.Camera.Position.Z = 2
	r.Bounds[AxisZ] = AxisRange{Min: 1, Max: 10}

	got := r.AdjustAxis(AxisZ, 9)
	assert.Equal(t, float32(10), got)
	assert.Equal(t, float32(10), r.Camera.Position.Z)

	got = r.AdjustAxis(AxisZ, -100)
	assert.Equal(t, float32(1), got)
}

func TestSetAxisNaNFallsBackToHome(t *testing.T) {
	r := newTestRig()
	r.AdjustAxis(AxisX, -3)
	require.InDelta(t, r.Home.Position.X-3, r.Camera.Position.X, eps)

	got := r.SetAxis(AxisX, math32.NaN())
	assert.Equal(t, r.Home.Position.X, got)
	assert.Equal(t, r.Home.Position.X, r.Camera.Position.X)
}

func TestSetBoundsCapsMaxDistance(t *testing.T) {
	r := newTestRig()
	r.SetBounds([3]AxisRange{{-10, 10}, {-10, 10}, {-10, 10}})
	assert.InDelta(t, 20*math32.Sqrt(3), r.Controls.MaxDistance, eps)

	// A tighter configured limit is kept.
	r.Controls.MaxDistance = 5
	r.SetBounds([3]AxisRange{{-10, 10}, {-10, 10}, {-10, 10}})
	assert.Equal(t, float32(5), r.Controls.MaxDistance)
}

func TestUpdateRecoversFromNonFinitePose(t *testing.T) {
	r := newTestRig()
	r.Camera.Position = math.Vec3{X: math32.NaN(), Y: 1, Z: 1}
	r.Camera.Target = math.Vec3{X: math32.Inf(1)}
	r.Update()

	assert.Equal(t, r.Home.Position, r.Camera.Position)
	assert.Equal(t, r.Home.Target, r.Camera.Target)
}

func TestPanAndZoomStayInBounds(t *testing.T) {
	for _, static := range []bool{false, true} {
		t.Run(fmt.Sprintf("static=%v", static), func(t *testing.T) {
			c := NewPerspective(45, 800.0/600.0, 0.1, 1000)
			c.Position = math.Vec3{Y: 0.5, Z: 2}
			r := NewRig(c)
			r.Controls.SetScreen(0, 0, 800, 600)
			r.Controls.ApplyOptions(map[string]any{
				"rotate_speed":           2.0,
				"zoom_speed":             2.0,
				"pan_speed":              0.8,
				"static_moving":          static,
				"dynamic_damping_factor": 0.3,
			})
			r.SetBounds([3]AxisRange{{-10, 10}, {-10, 10}, {-10, 10}})

			inRange := func(frame int) {
				for a := AxisX; a <= AxisZ; a++ {
					for _, v := range []float32{component(c.Position, a), component(c.Target, a)} {
						require.False(t, math32.IsNaN(v), "frame %d axis %s is NaN", frame, a)
						require.GreaterOrEqual(t, v, r.Bounds[a].Min, "frame %d axis %s", frame, a)
						require.LessOrEqual(t, v, r.Bounds[a].Max, "frame %d axis %s", frame, a)
					}
				}
			}

			for i := 0; i < 1000; i++ {
				r.Controls.PointerDown(ButtonRight, 400, 300)
				r.Controls.PointerMove(790, 300)
				r.Update()
				r.Controls.PointerUp()
				inRange(i)

				r.Controls.PointerDown(ButtonMiddle, 400, 300)
				r.Controls.PointerMove(400, 590)
				r.Update()
				r.Controls.PointerUp()
				inRange(i)
			}
			assert.Greater(t, c.Eye().Length(), float32(0))
		})
	}
}

func TestRotateYKeepsDistance(t *testing.T) {
	r := newTestRig()
	d := r.Camera.Eye().Length()
	y := r.Camera.Position.Y

	r.RotateY(math32.Pi / 2)
	assert.InDelta(t, d, r.Camera.Eye().Length(), eps)
	assert.InDelta(t, y, r.Camera.Position.Y, eps)
	// (10,10,10) about +Y by 90 degrees lands on (10,10,-10).
	assert.InDelta(t, 10, r.Camera.Position.X, eps)
	assert.InDelta(t, -10, r.Camera.Position.Z, eps)
}

func TestSpinOnlyWhenEnabled(t *testing.T) {
	r := newTestRig()
	start := r.Camera.Position
	r.RotationSpeed = 0.1

	r.Spin()
	assert.Equal(t, start, r.Camera.Position)

	r.AutoRotate = true
	r.Spin()
	assert.NotEqual(t, start, r.Camera.Position)
}

func TestUpdateClampsAfterControls(t *testing.T) {
	r := newTestRig()
	r.Bounds = [3]AxisRange{{-5, 5}, {-5, 5}, {-5, 5}}
	r.Update()
	p := r.Camera.Position
	assert.Equal(t, math.Vec3{X: 5, Y: 5, Z: 5}, p)
}

func TestTrackballWheelZoom(t *testing.T) {
	r := newTestRig()
	r.Controls.StaticMoving = true
	d := r.Camera.Eye().Length()

	r.Controls.Wheel(10) // zoom in
	r.Update()
	assert.Less(t, r.Camera.Eye().Length(), d)
}

func TestTrackballRotatePreservesDistance(t *testing.T) {
	r := newTestRig()
	r.Controls.StaticMoving = true
	d := r.Camera.Eye().Length()

	r.Controls.PointerDown(ButtonLeft, 400, 300)
	r.Controls.PointerMove(500, 300)
	r.Update()
	r.Controls.PointerUp()

	assert.InDelta(t, d, r.Camera.Eye().Length(), 1e-3)
	assert.Equal(t, stateNone, r.Controls.state)
}

func TestTrackballPanMovesTarget(t *testing.T) {
	r := newTestRig()
	r.Controls.StaticMoving = true

	r.Controls.PointerDown(ButtonRight, 400, 300)
	r.Controls.PointerMove(450, 300)
	r.Update()

	assert.NotEqual(t, math.Vec3{}, r.Camera.Target)
	assert.InDelta(t, 10*math32.Sqrt(3), r.Camera.Eye().Length(), 1e-3)
}

func TestTrackballNoRotate(t *testing.T) {
	r := newTestRig()
	r.Controls.NoRotate = true
	start := r.Camera.Position

	r.Controls.PointerDown(ButtonLeft, 400, 300)
	r.Controls.PointerMove(600, 100)
	r.Update()
	assert.Equal(t, start, r.Camera.Position)
}

func TestTrackballMaxDistance(t *testing.T) {
	r := newTestRig()
	r.Controls.MaxDistance = 5
	r.Update()
	assert.InDelta(t, 5, r.Camera.Eye().Length(), eps)
}

func TestSetOption(t *testing.T) {
	tb := NewTrackball(NewPerspective(45, 1, 0.1, 100))

	tests := []struct {
		name  string
		value any
		check func() bool
	}{
		{"rotate_speed", 2.5, func() bool { return tb.RotateSpeed == 2.5 }},
		{"zoom_speed", 3, func() bool { return tb.ZoomSpeed == 3 }},
		{"pan_speed", float32(0.5), func() bool { return tb.PanSpeed == 0.5 }},
		{"no_pan", true, func() bool { return tb.NoPan }},
		{"static_moving", true, func() bool { return tb.StaticMoving }},
		{"max_distance", 100, func() bool { return tb.MaxDistance == 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tb.SetOption(tt.name, tt.value))
			assert.True(t, tt.check())
		})
	}

	err := tb.SetOption("warp_speed", 9)
	assert.ErrorIs(t, err, ErrUnknownOption)

	err = tb.SetOption("no_zoom", "yes")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownOption)
}

func TestApplyOptionsSkipsUnknown(t *testing.T) {
	tb := NewTrackball(NewPerspective(45, 1, 0.1, 100))
	tb.ApplyOptions(map[string]any{
		"bogus":        1,
		"rotate_speed": 4.0,
		"no_zoom":      "nope",
		"no_rotate":    true,
	})
	assert.Equal(t, float32(4), tb.RotateSpeed)
	assert.True(t, tb.NoRotate)
	assert.False(t, tb.NoZoom)
}

func TestRigResetRestoresHome(t *testing.T) {
	r := newTestRig()
	r.Home = Pose{Position: math.Vec3{Y: 0.5, Z: 2}, Up: math.Vec3{Y: 1}}
	r.AutoRotate = true

	r.RotateY(1)
	r.Controls.PointerDown(ButtonLeft, 400, 300)
	require.Equal(t, stateRotate, r.Controls.state)

	r.Reset()
	assert.Equal(t, math.Vec3{Y: 0.5, Z: 2}, r.Camera.Position)
	assert.Equal(t, math.Vec3{}, r.Camera.Target)
	assert.Equal(t, math.Vec3{Y: 1}, r.Camera.Up)
	assert.False(t, r.AutoRotate)
	assert.Equal(t, stateNone, r.Controls.state)

	// No motion is left pending for the next update.
	r.Update()
	assert.InDelta(t, 2, r.Camera.Position.Z, eps)
}

package math

import (
	"math"
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3SetLength(t *testing.T) {
	got := Vec3{0, 3, 4}.SetLength(10)
	if abs(got.Length()-10) > 1e-4 {
		t.Errorf("SetLength(10).Length() = %v", got.Length())
	}
	if (Vec3{}).SetLength(3) != (Vec3{}) {
		t.Error("SetLength on zero vector should stay zero")
	}
}

func TestVec3RotateQuat(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, float32(math.Pi/2))
	got := Vec3{1, 0, 0}.Rotate(q)

	// Matches RotateY: (1,0,0) -> (0,0,-1)
	if abs(got.X) > 1e-5 || abs(got.Y) > 1e-5 || abs(got.Z+1) > 1e-5 {
		t.Errorf("Rotate = %v, want (0, 0, -1)", got)
	}
}

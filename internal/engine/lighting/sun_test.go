package lighting

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name      string
		azimuth   float32
		elevation float32
		want      [3]float32
	}{
		{"zenith", 0, 90, [3]float32{0, 1, 0}},
		{"south horizon", 0, 0, [3]float32{0, 0, 1}},
		{"east horizon", 90, 0, [3]float32{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SunDirection(tt.azimuth, tt.elevation)
			for i := range got {
				if math32.Abs(got[i]-tt.want[i]) > 1e-5 {
					t.Errorf("SunDirection(%v, %v) = %v, want %v", tt.azimuth, tt.elevation, got, tt.want)
					break
				}
			}
		})
	}
}

func TestSunDirectionNormalized(t *testing.T) {
	d := SunDirection(37, 52)
	l := math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if math32.Abs(l-1) > 1e-5 {
		t.Errorf("direction length = %v, want 1", l)
	}
}

func TestDirectionalFrom(t *testing.T) {
	l := DirectionalFrom([3]float32{2, 0, 0}, [3]float32{0, 1, 0}, 0.5)
	if l.Direction != [3]float32{1, 0, 0} {
		t.Errorf("direction = %v, want [1 0 0]", l.Direction)
	}
	if l.Intensity != 0.5 || l.Color != [3]float32{0, 1, 0} {
		t.Errorf("unexpected light %+v", l)
	}

	zero := DirectionalFrom([3]float32{}, [3]float32{1, 1, 1}, 1)
	if zero.Direction != [3]float32{} {
		t.Errorf("zero position should keep zero direction, got %v", zero.Direction)
	}
}

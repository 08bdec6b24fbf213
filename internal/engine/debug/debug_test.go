package debug

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/cloudview/internal/cloud"
	"github.com/Faultbox/cloudview/internal/pointcloud"
	"github.com/Faultbox/cloudview/pkg/math"
)

func TestBoxLines(t *testing.T) {
	lo := math.Vec3{X: -1, Y: -2, Z: -3}
	hi := math.Vec3{X: 1, Y: 2, Z: 3}
	lines := BoxLines(lo, hi, [3]float32{1, 0, 0})

	require.Len(t, lines, BoxVertexCount*6)
	for v := 0; v < BoxVertexCount; v++ {
		x, y, z := lines[v*6], lines[v*6+1], lines[v*6+2]
		assert.Contains(t, []float32{-1, 1}, x)
		assert.Contains(t, []float32{-2, 2}, y)
		assert.Contains(t, []float32{-3, 3}, z)
		assert.Equal(t, float32(1), lines[v*6+3])
	}
}

func TestCloudBoundsAppliesTransform(t *testing.T) {
	p := pointcloud.Build(pointcloud.KindPlain, cloud.Grid{Width: 4, Length: 4, PointSize: 0.1}, cloud.RGB{R: 1, G: 1, B: 1})
	p.Transform = pointcloud.Transform{Scale: 2, Position: math.Vec3{X: 10}}

	lines := CloudBounds([]*pointcloud.Points{p}, BoundsColor)
	require.Len(t, lines, BoxVertexCount*6)

	b := p.Geometry.Bounds()
	assert.InDelta(t, b.Min.X*2+10, lines[0], 1e-5)
	assert.Empty(t, CloudBounds(nil, BoundsColor))
}

func TestFlipRGBA(t *testing.T) {
	// Two rows: bottom red, top blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r)
	assert.NotZero(t, b)

	r, _, _, _ = img.At(0, 1).RGBA()
	assert.NotZero(t, r)

	_, err = FlipRGBA(pixels, 2, 2)
	assert.Error(t, err)
}

func TestScreenshotsSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "")
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	pixels := make([]byte, 2*2*4)
	first, err := s.Save(pixels, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cloudview_2024-03-01_12-30-00.png"), first)

	second, err := s.Save(pixels, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cloudview_2024-03-01_12-30-00_1.png"), second)

	f, err := os.Open(first)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
}

func TestScreenshotsFailedEncodeLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	s := NewScreenshots(dir, "")

	// PNG cannot encode an empty image.
	_, err := s.SaveImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = s.Save(make([]byte, 3), 1, 1)
	require.Error(t, err)
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

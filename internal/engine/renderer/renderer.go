// Package renderer draws the point-cloud scene with OpenGL.
package renderer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/engine/debug"
	"github.com/Faultbox/cloudview/internal/engine/scene"
	"github.com/Faultbox/cloudview/internal/engine/shader"
	"github.com/Faultbox/cloudview/internal/logger"
	"github.com/Faultbox/cloudview/pkg/math"
)

// ErrCapabilityMissing is returned when the GL context cannot run the
// viewer's shaders.
var ErrCapabilityMissing = errors.New("required OpenGL capability missing")

// Minimum GL version for the #version 330 shaders.
const (
	minMajor = 3
	minMinor = 3
)

const maxLights = 4

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	width  int
	height int

	// ClearColor is read every frame.
	ClearColor [3]float32

	programs map[string]*Program
	clouds   []*cloudMesh
	sphere   *sphereMesh
	axes     *lineMesh
	bounds   *lineMesh

	log *zap.Logger
}

// Init loads GL entry points and checks the context version. Failures wrap
// ErrCapabilityMissing.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCapabilityMissing, err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	major, minor, ok := ParseVersion(version)
	if !ok || major < minMajor || (major == minMajor && minor < minMinor) {
		return version, fmt.Errorf("%w: need OpenGL %d.%d, have %q",
			ErrCapabilityMissing, minMajor, minMinor, version)
	}
	return version, nil
}

// ParseVersion extracts major and minor from a GL_VERSION string such as
// "4.1 Metal - 83.1" or "OpenGL ES 3.0 Mesa".
func ParseVersion(s string) (major, minor int, ok bool) {
	for _, field := range strings.Fields(s) {
		parts := strings.SplitN(field, ".", 3)
		if len(parts) < 2 {
			continue
		}
		maj, err1 := strconv.Atoi(parts[0])
		mnr, err2 := strconv.Atoi(parts[1])
		if err1 == nil && err2 == nil {
			return maj, mnr, true
		}
	}
	return 0, 0, false
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	version, err := Init()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		width:      cfg.Width,
		height:     cfg.Height,
		ClearColor: cfg.ClearColor,
		programs:   make(map[string]*Program),
		log:        logger.Named("renderer"),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return r, nil
}

// LoadPrograms compiles every source. On failure nothing is replaced.
func (r *Renderer) LoadPrograms(srcs map[string]shader.Source) error {
	built := make(map[string]*Program, len(srcs))
	for name, src := range srcs {
		p, err := BuildProgram(src)
		if err != nil {
			for _, b := range built {
				b.Delete()
			}
			return err
		}
		built[name] = p
	}
	for name, p := range built {
		if old := r.programs[name]; old != nil {
			old.Delete()
		}
		r.programs[name] = p
	}
	return nil
}

// Reload recompiles one program, keeping the previous one if it fails.
func (r *Renderer) Reload(src shader.Source) error {
	p, err := BuildProgram(src)
	if err != nil {
		return err
	}
	if old := r.programs[src.Name]; old != nil {
		old.Delete()
	}
	r.programs[src.Name] = p
	r.log.Info("Reloaded shader", zap.String("program", src.Name))
	return nil
}

// Upload creates GPU buffers for the scene's clouds, axes and marker mesh,
// replacing any previous upload.
func (r *Renderer) Upload(s *scene.Scene) {
	r.releaseMeshes()

	for _, c := range s.Clouds() {
		r.clouds = append(r.clouds, newCloudMesh(c))
	}
	verts, idx := scene.SphereMesh(scene.MarkerSegments, scene.MarkerSegments)
	r.sphere = newSphereMesh(verts, idx)
	r.axes = newLineMesh(s.Axes.Lines())
	if lines := debug.CloudBounds(s.Clouds(), debug.BoundsColor); len(lines) > 0 {
		r.bounds = newLineMesh(lines)
	}

	total := 0
	for _, c := range r.clouds {
		total += int(c.count)
	}
	r.log.Debug("Uploaded scene", zap.Int("clouds", len(r.clouds)), zap.Int("points", total))
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Render draws one frame into the bound framebuffer.
func (r *Renderer) Render(s *scene.Scene, cam *camera.Perspective) {
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(r.ClearColor[0], r.ClearColor[1], r.ClearColor[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix()

	r.drawClouds(s, &view, &proj)
	r.drawMarkers(s, &view, &proj)
	r.drawLines(r.axes, &view, &proj)
	if s.ShowBounds {
		r.drawLines(r.bounds, &view, &proj)
	}
}

func (r *Renderer) drawClouds(s *scene.Scene, view, proj *math.Mat4) {
	p := r.programs[shader.Points]
	if p == nil {
		return
	}
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.Uniform1f(p.Uniform("uScreenScale"), float32(r.height)/2)
	setFog(p, s.Fog)

	for _, m := range r.clouds {
		model := m.points.Matrix()
		gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
		gl.Uniform1f(p.Uniform("uPointSize"), m.points.Material.Size)
		m.draw()
	}
}

func (r *Renderer) drawMarkers(s *scene.Scene, view, proj *math.Mat4) {
	p := r.programs[shader.Marker]
	markers := s.Markers()
	if p == nil || r.sphere == nil || len(markers) == 0 {
		return
	}
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	setFog(p, s.Fog)
	setLights(p, s)

	for _, mk := range markers {
		model := math.Translate(mk.Position.X, mk.Position.Y, mk.Position.Z).
			Mul(math.Scale(mk.Radius, mk.Radius, mk.Radius))
		gl.UniformMatrix4fv(p.Uniform("uModel"), 1, false, model.Ptr())
		gl.Uniform3f(p.Uniform("uColor"), mk.Color[0], mk.Color[1], mk.Color[2])
		r.sphere.draw()
	}
}

func (r *Renderer) drawLines(m *lineMesh, view, proj *math.Mat4) {
	p := r.programs[shader.Lines]
	if p == nil || m == nil {
		return
	}
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uView"), 1, false, view.Ptr())
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	m.draw()
}

func setFog(p *Program, fog scene.Fog) {
	enabled := int32(0)
	if fog.Enabled {
		enabled = 1
	}
	gl.Uniform1i(p.Uniform("uFogEnabled"), enabled)
	gl.Uniform3f(p.Uniform("uFogColor"), fog.Color[0], fog.Color[1], fog.Color[2])
	gl.Uniform1f(p.Uniform("uFogDensity"), fog.Density)
}

func setLights(p *Program, s *scene.Scene) {
	a := s.Ambient
	gl.Uniform3f(p.Uniform("uAmbient"), a.Color[0]*a.Intensity, a.Color[1]*a.Intensity, a.Color[2]*a.Intensity)

	var dirs, colors [maxLights][3]float32
	n := min(len(s.Lights), maxLights)
	for i := 0; i < n; i++ {
		l := s.Lights[i]
		dirs[i] = l.Direction
		colors[i] = [3]float32{l.Color[0] * l.Intensity, l.Color[1] * l.Intensity, l.Color[2] * l.Intensity}
	}
	gl.Uniform1i(p.Uniform("uLightCount"), int32(n))
	gl.Uniform3fv(p.Uniform("uLightDir[0]"), maxLights, &dirs[0][0])
	gl.Uniform3fv(p.Uniform("uLightColor[0]"), maxLights, &colors[0][0])
}

func (r *Renderer) releaseMeshes() {
	for _, c := range r.clouds {
		c.release()
	}
	r.clouds = nil
	if r.sphere != nil {
		r.sphere.release()
		r.sphere = nil
	}
	for _, m := range []*lineMesh{r.axes, r.bounds} {
		if m != nil {
			m.release()
		}
	}
	r.axes, r.bounds = nil, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.releaseMeshes()
	for name, p := range r.programs {
		p.Delete()
		delete(r.programs, name)
	}
}

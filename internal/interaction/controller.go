// Package interaction turns pointer position and a trigger into ray hits
// against the scene's point clouds, and shows them as markers.
package interaction

import (
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/engine/picking"
	"github.com/Faultbox/cloudview/internal/engine/scene"
	"github.com/Faultbox/cloudview/internal/logger"
)

// State is the controller's display state.
type State int

const (
	Idle State = iota
	HitDisplayed
)

func (s State) String() string {
	if s == HitDisplayed {
		return "hit-displayed"
	}
	return "idle"
}

// Config holds raycast and marker settings.
type Config struct {
	Threshold    float32
	MarkerRadius float32
	HitColor     [3]float32
	NearestColor [3]float32
}

// DefaultConfig returns small red markers with a yellow nearest hit.
func DefaultConfig() Config {
	return Config{
		Threshold:    0.03,
		MarkerRadius: 0.02,
		HitColor:     [3]float32{1, 0, 0},
		NearestColor: [3]float32{1, 1, 0},
	}
}

// Controller casts rays from the last pointer position into the scene.
type Controller struct {
	scene  *scene.Scene
	camera *camera.Perspective
	caster *picking.Raycaster
	cfg    Config

	pointerX, pointerY float32
	state              State

	log *zap.Logger
}

// New creates an idle controller.
func New(s *scene.Scene, cam *camera.Perspective, cfg Config) *Controller {
	rc := picking.NewRaycaster()
	if cfg.Threshold > 0 {
		rc.Threshold = cfg.Threshold
	}
	return &Controller{
		scene:  s,
		camera: cam,
		caster: rc,
		cfg:    cfg,
		log:    logger.Named("interaction"),
	}
}

// State returns the display state.
func (c *Controller) State() State {
	return c.state
}

// Threshold returns the world-space pick distance.
func (c *Controller) Threshold() float32 {
	return c.caster.Threshold
}

// SetThreshold changes the pick distance. Non-positive values are ignored.
func (c *Controller) SetThreshold(v float32) {
	if v <= 0 {
		return
	}
	c.caster.Threshold = v
}

// PointerMove records the pointer position in a width x height viewport.
func (c *Controller) PointerMove(x, y, width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	c.pointerX, c.pointerY = picking.NDC(x, y, width, height)
}

// Clear removes every marker and returns to Idle.
func (c *Controller) Clear() {
	c.scene.ClearMarkers()
	c.state = Idle
}

// Trigger casts a ray through the stored pointer and replaces all markers
// with one per hit. The nearest hit uses NearestColor. Hits are returned
// nearest first.
func (c *Controller) Trigger() []picking.Intersection {
	c.scene.ClearMarkers()

	c.caster.SetFromCamera(c.camera.Position, c.pointerX, c.pointerY, c.camera.InverseViewProjection())
	hits := c.caster.IntersectObjects(c.scene.Clouds())
	if len(hits) == 0 {
		c.state = Idle
		c.log.Debug("No hits", zap.Float32("x", c.pointerX), zap.Float32("y", c.pointerY))
		return nil
	}

	markers := make([]scene.Marker, len(hits))
	for i, h := range hits {
		markers[i] = scene.Marker{
			Position: h.Point,
			Color:    c.cfg.HitColor,
			Radius:   c.cfg.MarkerRadius,
		}
	}
	markers[0].Color = c.cfg.NearestColor
	markers[0].Nearest = true

	c.scene.ReplaceMarkers(markers)
	c.state = HitDisplayed

	c.log.Debug("Ray hits",
		zap.Int("count", len(hits)),
		zap.Float32("nearest", hits[0].Distance),
		zap.Stringer("kind", hits[0].Object.Kind))
	return hits
}

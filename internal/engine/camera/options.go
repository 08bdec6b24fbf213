package camera

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/logger"
)

// ErrUnknownOption is returned for an option name the controls do not have.
var ErrUnknownOption = errors.New("unknown control option")

// SetOption sets a named control parameter. Names follow the controls'
// configuration keys (rotate_speed, no_pan, ...). Numeric values may be any
// Go number type.
func (t *Trackball) SetOption(name string, value any) error {
	switch name {
	case "rotate_speed":
		return setFloat(&t.RotateSpeed, name, value)
	case "zoom_speed":
		return setFloat(&t.ZoomSpeed, name, value)
	case "pan_speed":
		return setFloat(&t.PanSpeed, name, value)
	case "dynamic_damping_factor":
		return setFloat(&t.DynamicDampingFactor, name, value)
	case "min_distance":
		return setFloat(&t.MinDistance, name, value)
	case "max_distance":
		return setFloat(&t.MaxDistance, name, value)
	case "no_rotate":
		return setBool(&t.NoRotate, name, value)
	case "no_zoom":
		return setBool(&t.NoZoom, name, value)
	case "no_pan":
		return setBool(&t.NoPan, name, value)
	case "static_moving":
		return setBool(&t.StaticMoving, name, value)
	}
	return fmt.Errorf("%w: %q", ErrUnknownOption, name)
}

// ApplyOptions sets every option in opts. Unknown names and bad values are
// logged and skipped; the remaining options still apply.
func (t *Trackball) ApplyOptions(opts map[string]any) {
	names := make([]string, 0, len(opts))
	for name := range opts {
		names = append(names, name)
	}
	sort.Strings(names)

	log := logger.Named("camera")
	for _, name := range names {
		if err := t.SetOption(name, opts[name]); err != nil {
			log.Warn("Ignoring control option", zap.String("option", name), zap.Error(err))
		}
	}
}

func setFloat(dst *float32, name string, value any) error {
	switch v := value.(type) {
	case float32:
		*dst = v
	case float64:
		*dst = float32(v)
	case int:
		*dst = float32(v)
	case int64:
		*dst = float32(v)
	default:
		return fmt.Errorf("option %q: want number, got %T", name, value)
	}
	return nil
}

func setBool(dst *bool, name string, value any) error {
	v, ok := value.(bool)
	if !ok {
		return fmt.Errorf("option %q: want bool, got %T", name, value)
	}
	*dst = v
	return nil
}

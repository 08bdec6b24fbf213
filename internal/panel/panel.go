// Package panel is the settings panel: named fields bound to live values,
// drawn with Dear ImGui.
package panel

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/logger"
)

// ErrUnknownField is returned by Set for a name with no bound field.
var ErrUnknownField = errors.New("unknown panel field")

// FloatField is a slider bound to a float value.
type FloatField struct {
	Name     string
	Label    string
	Min, Max float32
	Get      func() float32
	Set      func(float32)
	OnChange func(float32)
}

// BoolField is a checkbox bound to a bool value.
type BoolField struct {
	Name     string
	Label    string
	Get      func() bool
	Set      func(bool)
	OnChange func(bool)
}

// ColorField is an RGB colour editor.
type ColorField struct {
	Name     string
	Label    string
	Get      func() [3]float32
	Set      func([3]float32)
	OnChange func([3]float32)
}

// ActionField is a button. Set with any value runs it.
type ActionField struct {
	Name  string
	Label string
	Run   func()
}

type field interface {
	name() string
	value() any
	apply(v any) error
	draw()
}

// Panel holds bound fields in registration order.
type Panel struct {
	Title   string
	Visible bool

	fields []field
	byName map[string]field
	log    *zap.Logger
}

// New creates an empty, visible panel.
func New(title string) *Panel {
	return &Panel{
		Title:   title,
		Visible: true,
		byName:  make(map[string]field),
		log:     logger.Named("panel"),
	}
}

func (p *Panel) add(f field) {
	if _, dup := p.byName[f.name()]; dup {
		p.log.Warn("Replacing panel field", zap.String("field", f.name()))
		for i, old := range p.fields {
			if old.name() == f.name() {
				p.fields[i] = f
			}
		}
	} else {
		p.fields = append(p.fields, f)
	}
	p.byName[f.name()] = f
}

// BindFloat registers a float slider.
func (p *Panel) BindFloat(f FloatField) {
	if f.Label == "" {
		f.Label = f.Name
	}
	p.add(&floatField{f})
}

// BindBool registers a checkbox.
func (p *Panel) BindBool(f BoolField) {
	if f.Label == "" {
		f.Label = f.Name
	}
	p.add(&boolField{f})
}

// BindColor registers a colour editor.
func (p *Panel) BindColor(f ColorField) {
	if f.Label == "" {
		f.Label = f.Name
	}
	p.add(&colorField{f})
}

// BindAction registers a button.
func (p *Panel) BindAction(f ActionField) {
	if f.Label == "" {
		f.Label = f.Name
	}
	p.add(&actionField{f})
}

// Names returns field names in registration order.
func (p *Panel) Names() []string {
	names := make([]string, len(p.fields))
	for i, f := range p.fields {
		names[i] = f.name()
	}
	return names
}

// Get returns the current value of a field.
func (p *Panel) Get(name string) (any, bool) {
	f, ok := p.byName[name]
	if !ok {
		return nil, false
	}
	return f.value(), true
}

// Set applies a value to a field as if the user had edited it. Floats are
// clamped to the field range and OnChange fires.
func (p *Panel) Set(name string, v any) error {
	f, ok := p.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if err := f.apply(v); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

type floatField struct{ FloatField }

func (f *floatField) name() string { return f.Name }
func (f *floatField) value() any   { return f.Get() }

func (f *floatField) apply(v any) error {
	var x float32
	switch n := v.(type) {
	case float32:
		x = n
	case float64:
		x = float32(n)
	case int:
		x = float32(n)
	default:
		return fmt.Errorf("want number, got %T", v)
	}
	f.commit(x)
	return nil
}

func (f *floatField) commit(x float32) {
	if f.Max > f.Min {
		x = min(max(x, f.Min), f.Max)
	}
	f.Set(x)
	if f.OnChange != nil {
		f.OnChange(x)
	}
}

type boolField struct{ BoolField }

func (f *boolField) name() string { return f.Name }
func (f *boolField) value() any   { return f.Get() }

func (f *boolField) apply(v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("want bool, got %T", v)
	}
	f.commit(b)
	return nil
}

func (f *boolField) commit(b bool) {
	f.Set(b)
	if f.OnChange != nil {
		f.OnChange(b)
	}
}

type colorField struct{ ColorField }

func (f *colorField) name() string { return f.Name }
func (f *colorField) value() any   { return f.Get() }

func (f *colorField) apply(v any) error {
	c, ok := v.([3]float32)
	if !ok {
		return fmt.Errorf("want [3]float32, got %T", v)
	}
	for i := range c {
		c[i] = min(max(c[i], 0), 1)
	}
	f.commit(c)
	return nil
}

func (f *colorField) commit(c [3]float32) {
	f.Set(c)
	if f.OnChange != nil {
		f.OnChange(c)
	}
}

type actionField struct{ ActionField }

func (f *actionField) name() string { return f.Name }
func (f *actionField) value() any   { return nil }

func (f *actionField) apply(any) error {
	if f.Run != nil {
		f.Run()
	}
	return nil
}

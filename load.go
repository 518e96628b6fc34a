// FILE: lixenwraith/ranged/load.go
package ranged

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/lixenwraith/ranged/config"
)

// Definition describes a dictionary in configuration:
//
//	[dictionary]
//	size = 10
//
//	[dictionary.defaults]
//	a = "alpha"
//	b = "bravo"
//
//	[[dictionary.writes]]
//	key = "a"
//	start = 4
//	value = "foo"
type Definition struct {
	Size     int            `toml:"size"`
	Defaults map[string]any `toml:"defaults"`
	Writes   []Write        `toml:"writes"`
}

// Write is one assignment applied after construction.
// With neither Start nor Stop it sets the whole key; with only Start it sets
// that id; otherwise it sets the slice, a missing Start meaning 0 and a
// missing Stop meaning End.
type Write struct {
	Key   string `toml:"key"`
	Start *int   `toml:"start"`
	Stop  *int   `toml:"stop"`
	Value any    `toml:"value"`
}

// Apply performs the write on d.
func (w Write) Apply(d *Dictionary[any]) error {
	value, err := normalizeValue(w.Value)
	if err != nil {
		return fmt.Errorf("write to key %q: %w", w.Key, err)
	}

	switch {
	case w.Start == nil && w.Stop == nil:
		return d.SetValue(w.Key, value)
	case w.Stop == nil:
		return d.SetValueByID(w.Key, *w.Start, value)
	}

	start, stop := 0, *w.Stop
	if w.Start != nil {
		start = *w.Start
	}
	return d.SetValueBySlice(w.Key, start, stop, value)
}

// Load decodes the Definition under section of cfg, builds the dictionary and
// applies its writes in order.
func Load(cfg *config.Config, section string, opts ...Option) (*Dictionary[any], error) {
	var def Definition
	if err := cfg.Scan(section, &def); err != nil {
		return nil, err
	}
	return def.Build(opts...)
}

// Build creates the dictionary described by the definition.
func (def Definition) Build(opts ...Option) (*Dictionary[any], error) {
	defaults := make(map[string]any, len(def.Defaults))
	for key, raw := range def.Defaults {
		value, err := normalizeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("default for key %q: %w", key, err)
		}
		defaults[key] = value
	}

	d := New(def.Size, defaults, opts...)
	for i, w := range def.Writes {
		if err := w.Apply(d); err != nil {
			return nil, fmt.Errorf("write %d: %w", i, err)
		}
	}
	return d, nil
}

// normalizeValue turns JSON numbers into int64 or float64, matching what the
// TOML decoder produces, and rejects values that cannot be compared.
func normalizeValue(v any) (any, error) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: value %q is not a number", ErrType, n)
		}
		return f, nil
	}
	if v != nil && !reflect.TypeOf(v).Comparable() {
		return nil, fmt.Errorf("%w: value of type %T is not comparable", ErrType, v)
	}
	return v, nil
}

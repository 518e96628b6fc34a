// FILE: lixenwraith/ranged/dictionary.go
package ranged

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"
)

// Dictionary holds, for a fixed set of keys, one value per id in [0, Len()).
// Each key's values are stored as a coalesced List.
//
// The key set and the length are fixed at construction. A Dictionary is meant
// for a single owner; it performs no locking.
type Dictionary[V comparable] struct {
	sized
	keys  []string
	lists map[string]*List[V]
	log   logrus.FieldLogger
}

// New creates a dictionary of the given size whose keys are those of defaults.
// Every id of each key starts at the key's default. Negative sizes are clamped to zero.
func New[V comparable](size int, defaults map[string]V, opts ...Option) *Dictionary[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dictionary[V]{
		sized: newSized(size),
		keys:  slices.Sorted(maps.Keys(defaults)),
		lists: make(map[string]*List[V], len(defaults)),
		log:   o.logger,
	}
	for key, value := range defaults {
		d.lists[key] = NewList(d.size, value)
	}

	d.log.WithFields(logrus.Fields{
		"size": d.size,
		"keys": d.keys,
	}).Debug("created ranged dictionary")
	return d
}

// Keys returns the keys in sorted order.
func (d *Dictionary[V]) Keys() []string {
	return slices.Clone(d.keys)
}

// Has reports whether key is one of the dictionary's keys.
func (d *Dictionary[V]) Has(key string) bool {
	_, ok := d.lists[key]
	return ok
}

// List returns the list backing key. Writes to it are writes to the dictionary.
func (d *Dictionary[V]) List(key string) (*List[V], error) {
	l, ok := d.lists[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return l, nil
}

// Values yields the per-key lists in key order.
func (d *Dictionary[V]) Values() iter.Seq[*List[V]] {
	return func(yield func(*List[V]) bool) {
		for _, key := range d.keys {
			if !yield(d.lists[key]) {
				return
			}
		}
	}
}

// Items yields each key with its list, in key order.
func (d *Dictionary[V]) Items() iter.Seq2[string, *List[V]] {
	return func(yield func(string, *List[V]) bool) {
		for _, key := range d.keys {
			if !yield(key, d.lists[key]) {
				return
			}
		}
	}
}

// Value returns the value of key at id.
func (d *Dictionary[V]) Value(key string, id int) (V, error) {
	l, err := d.List(key)
	if err != nil {
		var zero V
		return zero, err
	}
	v, err := l.Get(id)
	if err != nil {
		return v, fmt.Errorf("key %q: %w", key, err)
	}
	return v, nil
}

// ValueBySlice returns the value of key shared by every id in [start, stop).
// It fails with ErrNotUniform if the slice spans more than one value.
func (d *Dictionary[V]) ValueBySlice(key string, start, stop int) (V, error) {
	l, err := d.List(key)
	if err != nil {
		var zero V
		return zero, err
	}
	v, err := l.GetSlice(start, stop)
	if err != nil {
		return v, fmt.Errorf("key %q: %w", key, err)
	}
	return v, nil
}

// Lookup reads key with a dynamically typed selector: any integer kind or a Slice.
func (d *Dictionary[V]) Lookup(key string, selector any) (V, error) {
	l, err := d.List(key)
	if err != nil {
		var zero V
		return zero, err
	}
	v, err := l.Lookup(selector)
	if err != nil {
		return v, fmt.Errorf("key %q: %w", key, err)
	}
	return v, nil
}

// SetValue sets key to value across every id.
func (d *Dictionary[V]) SetValue(key string, value V) error {
	l, err := d.List(key)
	if err != nil {
		return err
	}
	l.SetAll(value)
	d.log.WithFields(logrus.Fields{
		"key":   key,
		"value": value,
	}).Debug("set value for all ids")
	return nil
}

// SetValueByID sets key to value at a single id.
func (d *Dictionary[V]) SetValueByID(key string, id int, value V) error {
	l, err := d.List(key)
	if err != nil {
		return err
	}
	if err := l.Set(id, value); err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	return nil
}

// SetValueBySlice sets key to value for every id in [start, stop).
func (d *Dictionary[V]) SetValueBySlice(key string, start, stop int, value V) error {
	l, err := d.List(key)
	if err != nil {
		return err
	}
	if err := l.SetSlice(start, stop, value); err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	return nil
}

// Ranges returns the current ranges of key.
func (d *Dictionary[V]) Ranges(key string) ([]Range[V], error) {
	l, err := d.List(key)
	if err != nil {
		return nil, err
	}
	return slices.Collect(l.Ranges()), nil
}

// AllRanges returns ranges over which every key is constant. A boundary falls
// wherever any key changes value, and adjacent results never hold identical values.
func (d *Dictionary[V]) AllRanges() []MultiRange[V] {
	return d.mergeSlice(0, d.size)
}

// View returns a view of a single id.
func (d *Dictionary[V]) View(id int) (*SingleView[V], error) {
	id, err := d.checkID(id)
	if err != nil {
		return nil, err
	}
	return newSingleView(d, id), nil
}

// ViewOfIDs returns a view of ids in the given order. Repeated ids are kept.
//
// The ids are checked as each operation touches them, so SetValue on a view
// holding an invalid id updates the ids before it and then fails.
func (d *Dictionary[V]) ViewOfIDs(ids []int) *IDsView[V] {
	return newIDsView(d, ids)
}

// ViewOfSlice returns a view of the ids [start, stop).
func (d *Dictionary[V]) ViewOfSlice(start, stop int) (*SliceView[V], error) {
	start, stop, err := d.checkSlice(start, stop)
	if err != nil {
		return nil, err
	}
	return newSliceView(d, start, stop), nil
}

// ViewFactory builds a view from a dynamically typed selector:
//   - any integer kind selects one id and gives a *SingleView
//   - a []int or []any holding exactly one id also gives a *SingleView
//   - any other []int or []any gives an *IDsView
//   - a Slice gives a *SliceView
//
// Non-integer ids or selectors fail with ErrType.
func (d *Dictionary[V]) ViewFactory(selector any) (View[V], error) {
	switch s := selector.(type) {
	case Slice:
		v, err := d.ViewOfSlice(s.Start, s.Stop)
		if err != nil {
			return nil, err
		}
		return v, nil
	case []int:
		return d.viewOfIDs(s)
	case []any:
		ids := make([]int, len(s))
		for i, raw := range s {
			id, err := toInt(raw)
			if err != nil {
				return nil, err
			}
			ids[i] = id
		}
		return d.viewOfIDs(ids)
	}

	id, err := toInt(selector)
	if err != nil {
		return nil, err
	}
	v, err := d.View(id)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (d *Dictionary[V]) viewOfIDs(ids []int) (View[V], error) {
	if len(ids) == 1 {
		v, err := d.View(ids[0])
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return d.ViewOfIDs(ids), nil
}

// listsOf resolves every key, failing on the first unknown one.
func (d *Dictionary[V]) listsOf(keys []string) ([]*List[V], error) {
	lists := make([]*List[V], len(keys))
	for i, key := range keys {
		l, err := d.List(key)
		if err != nil {
			return nil, err
		}
		lists[i] = l
	}
	return lists, nil
}

func (d *Dictionary[V]) String() string {
	return fmt.Sprintf("Dictionary of length %d with keys %v", d.size, d.keys)
}

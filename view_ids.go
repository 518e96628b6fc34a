// FILE: lixenwraith/ranged/view_ids.go
package ranged

import (
	"fmt"
	"iter"
	"slices"
)

// IDsView covers an explicit sequence of ids.
type IDsView[V comparable] struct {
	dict *Dictionary[V]
	ids  []int
}

func newIDsView[V comparable](d *Dictionary[V], ids []int) *IDsView[V] {
	return &IDsView[V]{dict: d, ids: slices.Clone(ids)}
}

func (v *IDsView[V]) String() string {
	return fmt.Sprintf("View with ids: %v", v.ids)
}

// IDs yields the ids as given when the view was created.
func (v *IDsView[V]) IDs() iter.Seq[int] {
	return slices.Values(v.ids)
}

// Value requires every id to hold the same value for key.
func (v *IDsView[V]) Value(key string) (V, error) {
	var zero V
	l, err := v.dict.List(key)
	if err != nil {
		return zero, err
	}
	if len(v.ids) == 0 {
		return zero, fmt.Errorf("%w: the view holds no ids", ErrRange)
	}

	first, err := l.Get(v.ids[0])
	if err != nil {
		return zero, fmt.Errorf("key %q: %w", key, err)
	}
	for _, id := range v.ids[1:] {
		value, err := l.Get(id)
		if err != nil {
			return zero, fmt.Errorf("key %q: %w", key, err)
		}
		if value != first {
			return zero, fmt.Errorf("%w: key %q differs between ids %d and %d", ErrNotUniform, key, v.ids[0], id)
		}
	}
	return first, nil
}

// SetValue writes value at each id in view order.
// It is not atomic: if an id is invalid, the ids before it keep the new value.
func (v *IDsView[V]) SetValue(key string, value V) error {
	l, err := v.dict.List(key)
	if err != nil {
		return err
	}
	for _, id := range v.ids {
		if err := l.Set(id, value); err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
	}
	return nil
}

func (v *IDsView[V]) IterValues(key string, updateSave bool) (iter.Seq[V], error) {
	ids, err := v.normalized()
	if err != nil {
		return nil, err
	}
	return v.dict.iterValues(key, slices.Values(ids), updateSave)
}

func (v *IDsView[V]) IterValuesOf(keys []string, updateSave bool) (iter.Seq[map[string]V], error) {
	ids, err := v.normalized()
	if err != nil {
		return nil, err
	}
	return v.dict.iterValuesOf(keys, slices.Values(ids), updateSave)
}

func (v *IDsView[V]) Ranges(key string) (iter.Seq[Range[V]], error) {
	l, err := v.dict.List(key)
	if err != nil {
		return nil, err
	}
	return l.RangesByIDs(v.ids)
}

func (v *IDsView[V]) AllRanges() ([]MultiRange[V], error) {
	ids, err := v.normalized()
	if err != nil {
		return nil, err
	}
	return v.dict.mergeIDs(ids), nil
}

// normalized checks every id against the dictionary's length.
func (v *IDsView[V]) normalized() ([]int, error) {
	ids := make([]int, len(v.ids))
	for i, id := range v.ids {
		n, err := v.dict.checkID(id)
		if err != nil {
			return nil, err
		}
		ids[i] = n
	}
	return ids, nil
}

// SingleView covers exactly one id. Besides the View methods it reads like a
// map from key to the value at that id.
type SingleView[V comparable] struct {
	*IDsView[V]
	id int
}

func newSingleView[V comparable](d *Dictionary[V], id int) *SingleView[V] {
	return &SingleView[V]{IDsView: newIDsView(d, []int{id}), id: id}
}

func (v *SingleView[V]) String() string {
	return fmt.Sprintf("View with id: %d", v.id)
}

// ID returns the covered id.
func (v *SingleView[V]) ID() int {
	return v.id
}

func (v *SingleView[V]) Value(key string) (V, error) {
	return v.dict.Value(key, v.id)
}

func (v *SingleView[V]) SetValue(key string, value V) error {
	return v.dict.SetValueByID(key, v.id, value)
}

// Keys returns the dictionary's keys in sorted order.
func (v *SingleView[V]) Keys() []string {
	return v.dict.Keys()
}

// Has reports whether key is one of the dictionary's keys.
func (v *SingleView[V]) Has(key string) bool {
	return v.dict.Has(key)
}

// Values yields each key's value at the covered id, in key order.
func (v *SingleView[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for l := range v.dict.Values() {
			if !yield(l.ranges[l.find(v.id)].Value) {
				return
			}
		}
	}
}

// Items yields each key with its value at the covered id, in key order.
func (v *SingleView[V]) Items() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for key, l := range v.dict.Items() {
			if !yield(key, l.ranges[l.find(v.id)].Value) {
				return
			}
		}
	}
}

// FILE: lixenwraith/ranged/view_slice.go
package ranged

import (
	"fmt"
	"iter"
)

// SliceView covers the contiguous ids [start, stop).
type SliceView[V comparable] struct {
	dict  *Dictionary[V]
	start int
	stop  int
}

func newSliceView[V comparable](d *Dictionary[V], start, stop int) *SliceView[V] {
	return &SliceView[V]{dict: d, start: start, stop: stop}
}

func (v *SliceView[V]) String() string {
	return fmt.Sprintf("View with range: %d to %d", v.start, v.stop)
}

// Bounds returns the normalized [start, stop) of the view.
func (v *SliceView[V]) Bounds() (start, stop int) {
	return v.start, v.stop
}

func (v *SliceView[V]) IDs() iter.Seq[int] {
	return func(yield func(int) bool) {
		for id := v.start; id < v.stop; id++ {
			if !yield(id) {
				return
			}
		}
	}
}

func (v *SliceView[V]) Value(key string) (V, error) {
	return v.dict.ValueBySlice(key, v.start, v.stop)
}

func (v *SliceView[V]) SetValue(key string, value V) error {
	return v.dict.SetValueBySlice(key, v.start, v.stop, value)
}

func (v *SliceView[V]) IterValues(key string, updateSave bool) (iter.Seq[V], error) {
	return v.dict.iterValues(key, v.IDs(), updateSave)
}

func (v *SliceView[V]) IterValuesOf(keys []string, updateSave bool) (iter.Seq[map[string]V], error) {
	return v.dict.iterValuesOf(keys, v.IDs(), updateSave)
}

// Ranges yields the ranges of key overlapping the view, trimmed to its bounds.
func (v *SliceView[V]) Ranges(key string) (iter.Seq[Range[V]], error) {
	l, err := v.dict.List(key)
	if err != nil {
		return nil, err
	}
	return l.RangesBySlice(v.start, v.stop)
}

func (v *SliceView[V]) AllRanges() ([]MultiRange[V], error) {
	return v.dict.mergeSlice(v.start, v.stop), nil
}

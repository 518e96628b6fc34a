// FILE: lixenwraith/ranged/merge.go
package ranged

import (
	"iter"
	"maps"
)

// mergeSlice walks every key's ranges over [start, stop), which must be a
// valid slice, and starts a new range wherever any key changes value.
// Since each list is coalesced, every such boundary changes the combined values.
func (d *Dictionary[V]) mergeSlice(start, stop int) []MultiRange[V] {
	if start >= stop {
		return nil
	}

	cursors := make([]int, len(d.keys))
	for k, key := range d.keys {
		cursors[k] = d.lists[key].find(start)
	}

	var merged []MultiRange[V]
	for pos := start; pos < stop; {
		next := stop
		values := make(map[string]V, len(d.keys))
		for k, key := range d.keys {
			r := d.lists[key].ranges[cursors[k]]
			values[key] = r.Value
			next = min(next, r.Stop)
		}
		merged = append(merged, MultiRange[V]{Start: pos, Stop: next, Values: values})

		for k, key := range d.keys {
			if d.lists[key].ranges[cursors[k]].Stop == next {
				cursors[k]++
			}
		}
		pos = next
	}
	return merged
}

// mergeIDs builds combined ranges over already normalized ids in the given order.
// Consecutive ids with identical values merge; a gap or repeat starts a new range.
func (d *Dictionary[V]) mergeIDs(ids []int) []MultiRange[V] {
	var merged []MultiRange[V]
	for _, id := range ids {
		values := d.valuesAt(id)
		if n := len(merged); n > 0 && merged[n-1].Stop == id && maps.Equal(merged[n-1].Values, values) {
			merged[n-1].Stop++
			continue
		}
		merged = append(merged, MultiRange[V]{Start: id, Stop: id + 1, Values: values})
	}
	return merged
}

// valuesAt returns every key's value at a normalized id.
func (d *Dictionary[V]) valuesAt(id int) map[string]V {
	values := make(map[string]V, len(d.keys))
	for _, key := range d.keys {
		l := d.lists[key]
		values[key] = l.ranges[l.find(id)].Value
	}
	return values
}

// iterValues yields the value of key at each normalized id.
// With updateSave the list is read live on every step; otherwise the ranges
// are copied now and later writes are not seen.
func (d *Dictionary[V]) iterValues(key string, ids iter.Seq[int], updateSave bool) (iter.Seq[V], error) {
	l, err := d.List(key)
	if err != nil {
		return nil, err
	}

	if updateSave {
		return func(yield func(V) bool) {
			for id := range ids {
				if !yield(l.ranges[l.find(id)].Value) {
					return
				}
			}
		}, nil
	}

	frozen := l.snapshot()
	return func(yield func(V) bool) {
		for id := range ids {
			if !yield(frozen[findRange(frozen, id)].Value) {
				return
			}
		}
	}, nil
}

// iterValuesOf is iterValues for several keys, yielding a fresh map per id.
func (d *Dictionary[V]) iterValuesOf(keys []string, ids iter.Seq[int], updateSave bool) (iter.Seq[map[string]V], error) {
	lists, err := d.listsOf(keys)
	if err != nil {
		return nil, err
	}

	// Each entry is either a live list's ranges or a frozen copy.
	read := make([]func() []Range[V], len(lists))
	for i, l := range lists {
		if updateSave {
			read[i] = func() []Range[V] { return l.ranges }
		} else {
			frozen := l.snapshot()
			read[i] = func() []Range[V] { return frozen }
		}
	}

	return func(yield func(map[string]V) bool) {
		for id := range ids {
			values := make(map[string]V, len(keys))
			for i, key := range keys {
				ranges := read[i]()
				values[key] = ranges[findRange(ranges, id)].Value
			}
			if !yield(values) {
				return
			}
		}
	}, nil
}

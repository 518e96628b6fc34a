// FILE: lixenwraith/ranged/list.go
package ranged

import (
	"fmt"
	"iter"
	"slices"
	"sort"
)

// List holds one value per id in [0, Len()) stored as coalesced ranges.
//
// The stored ranges always tile [0, Len()) in ascending order with no gaps
// or overlaps, and no two adjacent ranges hold equal values. Every write
// restores this before returning.
type List[V comparable] struct {
	sized
	ranges []Range[V]
}

// NewList creates a list of the given size with every id set to value.
// Negative sizes are clamped to zero.
func NewList[V comparable](size int, value V) *List[V] {
	l := &List[V]{sized: newSized(size)}
	if l.size > 0 {
		l.ranges = []Range[V]{{Start: 0, Stop: l.size, Value: value}}
	}
	return l
}

// RangeCount returns the number of stored ranges.
func (l *List[V]) RangeCount() int {
	return len(l.ranges)
}

// Get returns the value at id. Negative ids count back from the end.
func (l *List[V]) Get(id int) (V, error) {
	id, err := l.checkID(id)
	if err != nil {
		var zero V
		return zero, err
	}
	return l.ranges[l.find(id)].Value, nil
}

// GetSlice returns the single value shared by every id in [start, stop).
// It fails with ErrNotUniform if the slice spans more than one value.
func (l *List[V]) GetSlice(start, stop int) (V, error) {
	var zero V
	start, stop, err := l.checkSlice(start, stop)
	if err != nil {
		return zero, err
	}
	if start == stop {
		return zero, fmt.Errorf("%w: the slice [%d, %d) is empty", ErrRange, start, stop)
	}

	// Adjacent ranges never share a value, so a slice is uniform exactly
	// when it sits inside one range.
	r := l.ranges[l.find(start)]
	if r.Stop < stop {
		return zero, fmt.Errorf("%w: the slice [%d, %d) spans several values", ErrNotUniform, start, stop)
	}
	return r.Value, nil
}

// Lookup accepts any integer kind or a Slice.
// Other selector types fail with ErrType.
func (l *List[V]) Lookup(selector any) (V, error) {
	if s, ok := selector.(Slice); ok {
		return l.GetSlice(s.Start, s.Stop)
	}
	id, err := toInt(selector)
	if err != nil {
		var zero V
		return zero, err
	}
	return l.Get(id)
}

// SingleValue returns the value of the whole list if it holds only one.
func (l *List[V]) SingleValue() (V, error) {
	var zero V
	switch len(l.ranges) {
	case 0:
		return zero, fmt.Errorf("%w: the list is empty", ErrRange)
	case 1:
		return l.ranges[0].Value, nil
	}
	return zero, fmt.Errorf("%w: the list holds %d ranges", ErrNotUniform, len(l.ranges))
}

// Set assigns value to a single id.
func (l *List[V]) Set(id int, value V) error {
	id, err := l.checkID(id)
	if err != nil {
		return err
	}
	l.set(id, id+1, value)
	return nil
}

// SetSlice assigns value to every id in [start, stop). An empty slice is a no-op.
func (l *List[V]) SetSlice(start, stop int, value V) error {
	start, stop, err := l.checkSlice(start, stop)
	if err != nil {
		return err
	}
	if start < stop {
		l.set(start, stop, value)
	}
	return nil
}

// SetAll assigns value to every id.
func (l *List[V]) SetAll(value V) {
	if l.size > 0 {
		l.set(0, l.size, value)
	}
}

// Ranges yields the stored ranges in ascending order.
// The sequence reads the list as it is when iterated, not when created.
func (l *List[V]) Ranges() iter.Seq[Range[V]] {
	return func(yield func(Range[V]) bool) {
		for i := 0; i < len(l.ranges); i++ {
			if !yield(l.ranges[i]) {
				return
			}
		}
	}
}

// RangesBySlice yields the ranges overlapping [start, stop), trimmed to the slice.
func (l *List[V]) RangesBySlice(start, stop int) (iter.Seq[Range[V]], error) {
	start, stop, err := l.checkSlice(start, stop)
	if err != nil {
		return nil, err
	}
	return func(yield func(Range[V]) bool) {
		if start >= stop {
			return
		}
		for i := l.find(start); i < len(l.ranges) && l.ranges[i].Start < stop; i++ {
			r := l.ranges[i]
			r.Start = max(r.Start, start)
			r.Stop = min(r.Stop, stop)
			if !yield(r) {
				return
			}
		}
	}, nil
}

// RangesByIDs yields ranges restricted to ids, visited in the given order.
// Consecutive ids with equal values merge; any gap or repeat starts a new range.
func (l *List[V]) RangesByIDs(ids []int) (iter.Seq[Range[V]], error) {
	normalized, err := l.checkIDs(ids)
	if err != nil {
		return nil, err
	}
	return func(yield func(Range[V]) bool) {
		var current Range[V]
		started := false
		for _, id := range normalized {
			value := l.ranges[l.find(id)].Value
			if started && id == current.Stop && value == current.Value {
				current.Stop++
				continue
			}
			if started && !yield(current) {
				return
			}
			current = Range[V]{Start: id, Stop: id + 1, Value: value}
			started = true
		}
		if started {
			yield(current)
		}
	}, nil
}

// Values yields the value of every id in order, read live on each step.
func (l *List[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for id := 0; id < l.size; id++ {
			if !yield(l.ranges[l.find(id)].Value) {
				return
			}
		}
	}
}

// snapshot copies the current ranges.
func (l *List[V]) snapshot() []Range[V] {
	return slices.Clone(l.ranges)
}

// checkIDs normalizes every id, failing on the first invalid one.
func (l *List[V]) checkIDs(ids []int) ([]int, error) {
	normalized := make([]int, len(ids))
	for i, id := range ids {
		n, err := l.checkID(id)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}
	return normalized, nil
}

// find returns the position of the range holding id, which must be valid.
func (l *List[V]) find(id int) int {
	return findRange(l.ranges, id)
}

// set writes value over [start, stop), which must be a valid non-empty slice.
// The covered ranges are replaced by at most three: the untouched head of the
// first covered range, the new range, and the untouched tail of the last one.
// The new range absorbs any neighbor holding the same value.
func (l *List[V]) set(start, stop int, value V) {
	lo := l.find(start)
	hi := l.find(stop-1) + 1
	first, last := l.ranges[lo], l.ranges[hi-1]

	if hi-lo == 1 && first.Value == value {
		return
	}

	replacement := make([]Range[V], 0, 3)
	written := Range[V]{Start: start, Stop: stop, Value: value}

	if first.Start < start {
		if first.Value == value {
			written.Start = first.Start
		} else {
			replacement = append(replacement, Range[V]{Start: first.Start, Stop: start, Value: first.Value})
		}
	} else if lo > 0 && l.ranges[lo-1].Value == value {
		lo--
		written.Start = l.ranges[lo].Start
	}

	var tail []Range[V]
	if last.Stop > stop {
		if last.Value == value {
			written.Stop = last.Stop
		} else {
			tail = []Range[V]{{Start: stop, Stop: last.Stop, Value: last.Value}}
		}
	} else if hi < len(l.ranges) && l.ranges[hi].Value == value {
		written.Stop = l.ranges[hi].Stop
		hi++
	}

	replacement = append(replacement, written)
	replacement = append(replacement, tail...)
	l.ranges = slices.Replace(l.ranges, lo, hi, replacement...)
}

// findRange binary searches ranges for the one holding id.
func findRange[V comparable](ranges []Range[V], id int) int {
	return sort.Search(len(ranges), func(i int) bool { return ranges[i].Stop > id })
}

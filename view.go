// FILE: lixenwraith/ranged/view.go
package ranged

import (
	"fmt"
	"iter"
)

// View is a read/write projection of some of a dictionary's ids.
//
// Views hold no values of their own: every read and write goes to the
// dictionary that created them, so a change made through one view, or
// through the dictionary, is seen at once through every other view.
// A view must not outlive its dictionary.
type View[V comparable] interface {
	fmt.Stringer

	// IDs yields the ids the view covers, in view order.
	IDs() iter.Seq[int]

	// Value returns the value of key shared by every covered id.
	// It fails with ErrNotUniform if the ids hold different values.
	Value(key string) (V, error)

	// SetValue writes value for key at every covered id.
	SetValue(key string, value V) error

	// IterValues yields the value of key at each covered id.
	// With updateSave false the values are those at call time; with
	// updateSave true each step reads the dictionary as it is then.
	IterValues(key string, updateSave bool) (iter.Seq[V], error)

	// IterValuesOf is IterValues for several keys, yielding one map per id.
	IterValuesOf(keys []string, updateSave bool) (iter.Seq[map[string]V], error)

	// Ranges yields the ranges of key restricted to the covered ids.
	Ranges(key string) (iter.Seq[Range[V]], error)

	// AllRanges returns the combined ranges of every key restricted to the covered ids.
	AllRanges() ([]MultiRange[V], error)
}

var (
	_ View[string] = (*SingleView[string])(nil)
	_ View[string] = (*IDsView[string])(nil)
	_ View[string] = (*SliceView[string])(nil)
)

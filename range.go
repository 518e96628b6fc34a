// FILE: lixenwraith/ranged/range.go
package ranged

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Range is a run of ids [Start, Stop) that share one value.
type Range[V comparable] struct {
	Start int
	Stop  int
	Value V
}

// Len returns the number of ids in the range.
func (r Range[V]) Len() int {
	return r.Stop - r.Start
}

// Contains reports whether id lies in [Start, Stop).
func (r Range[V]) Contains(id int) bool {
	return id >= r.Start && id < r.Stop
}

func (r Range[V]) String() string {
	return fmt.Sprintf("(%d, %d, %v)", r.Start, r.Stop, r.Value)
}

// MultiRange is a run of ids [Start, Stop) over which every key holds a constant value.
type MultiRange[V comparable] struct {
	Start  int
	Stop   int
	Values map[string]V
}

// Len returns the number of ids in the range.
func (r MultiRange[V]) Len() int {
	return r.Stop - r.Start
}

func (r MultiRange[V]) String() string {
	keys := slices.Sorted(maps.Keys(r.Values))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %v", k, r.Values[k])
	}
	return fmt.Sprintf("(%d, %d, {%s})", r.Start, r.Stop, strings.Join(parts, ", "))
}

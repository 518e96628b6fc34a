// FILE: lixenwraith/ranged/sized.go
package ranged

import (
	"fmt"
	"math"
	"reflect"
)

// End used as a slice stop selects through the last id of the container.
const End = math.MaxInt

// Slice selects the contiguous ids [Start, Stop).
// Negative values count back from the end; a Stop of End selects through the last id.
type Slice struct {
	Start int
	Stop  int
}

// To returns the slice [start, stop).
func To(start, stop int) Slice {
	return Slice{Start: start, Stop: stop}
}

// sized validates ids and slices against a fixed length.
// It is embedded by the container and every list.
type sized struct {
	size int
}

// newSized clamps negative sizes to zero.
func newSized(size int) sized {
	if size < 0 {
		size = 0
	}
	return sized{size: size}
}

// Len returns the fixed number of ids, irrespective of the values held.
func (s sized) Len() int {
	return s.size
}

// checkID normalizes a negative id from the end and verifies the result lies in [0, size).
func (s sized) checkID(id int) (int, error) {
	normalized := id
	if normalized < 0 {
		normalized += s.size
	}
	if normalized < 0 || normalized >= s.size {
		return 0, fmt.Errorf("%w: the index %d is out of range for length %d", ErrRange, id, s.size)
	}
	return normalized, nil
}

// checkSlice normalizes a slice to 0 <= start <= stop <= size.
// A start that underflows after normalization saturates to zero; a stop does not.
func (s sized) checkSlice(start, stop int) (int, int, error) {
	if start < 0 {
		start += s.size
		if start < 0 {
			start = 0
		}
	}

	if stop == End {
		stop = s.size
	} else if stop < 0 {
		stop += s.size
	}

	if start > stop {
		return 0, 0, fmt.Errorf("%w: the range start %d is after the range stop %d", ErrRange, start, stop)
	}
	if stop > s.size {
		return 0, 0, fmt.Errorf("%w: the range stop %d is out of range for length %d", ErrRange, stop, s.size)
	}
	return start, stop, nil
}

// toInt converts any signed or unsigned integer kind to int.
// Every other kind, including nil, is rejected with ErrType.
func toInt(v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		if i > math.MaxInt || i < math.MinInt {
			return 0, fmt.Errorf("%w: the index %d overflows int", ErrRange, i)
		}
		return int(i), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, fmt.Errorf("%w: the index %d overflows int", ErrRange, u)
		}
		return int(u), nil
	}
	return 0, fmt.Errorf("%w: index of type %T is not an integer", ErrType, v)
}

// FILE: lixenwraith/ranged/list_test.go
package ranged

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireCoalesced checks that the ranges tile [0, Len()) and that no two
// neighbors hold equal values.
func requireCoalesced[V comparable](t *testing.T, l *List[V]) {
	t.Helper()
	if l.Len() == 0 {
		require.Empty(t, l.ranges)
		return
	}
	require.NotEmpty(t, l.ranges)
	require.Equal(t, 0, l.ranges[0].Start)
	require.Equal(t, l.Len(), l.ranges[len(l.ranges)-1].Stop)
	for i, r := range l.ranges {
		require.Less(t, r.Start, r.Stop, "range %d is empty", i)
		if i > 0 {
			prev := l.ranges[i-1]
			require.Equal(t, prev.Stop, r.Start, "ranges %d and %d are not adjacent", i-1, i)
			require.NotEqual(t, prev.Value, r.Value, "ranges %d and %d share a value", i-1, i)
		}
	}
}

func rng[V comparable](start, stop int, value V) Range[V] {
	return Range[V]{Start: start, Stop: stop, Value: value}
}

func TestListSet(t *testing.T) {
	t.Run("PointWriteSplits", func(t *testing.T) {
		l := NewList(10, "alpha")
		require.NoError(t, l.Set(4, "foo"))
		requireCoalesced(t, l)
		assert.Equal(t, []Range[string]{
			rng(0, 4, "alpha"), rng(4, 5, "foo"), rng(5, 10, "alpha"),
		}, slices.Collect(l.Ranges()))
	})

	t.Run("PointWriteRestores", func(t *testing.T) {
		l := NewList(10, "alpha")
		require.NoError(t, l.Set(4, "foo"))
		require.NoError(t, l.Set(4, "alpha"))
		requireCoalesced(t, l)
		assert.Equal(t, 1, l.RangeCount())
	})

	t.Run("IdempotentWrite", func(t *testing.T) {
		l := NewList(10, "alpha")
		require.NoError(t, l.Set(3, "alpha"))
		require.NoError(t, l.SetSlice(2, 7, "alpha"))
		assert.Equal(t, []Range[string]{rng(0, 10, "alpha")}, slices.Collect(l.Ranges()))
	})

	t.Run("AdjacentSlicesMerge", func(t *testing.T) {
		l := NewList(10, "a")
		require.NoError(t, l.SetSlice(2, 5, "b"))
		require.NoError(t, l.SetSlice(5, 8, "b"))
		requireCoalesced(t, l)
		assert.Equal(t, []Range[string]{
			rng(0, 2, "a"), rng(2, 8, "b"), rng(8, 10, "a"),
		}, slices.Collect(l.Ranges()))
	})

	t.Run("BridgingWriteMergesBothSides", func(t *testing.T) {
		l := NewList(10, "a")
		require.NoError(t, l.SetSlice(3, 5, "b"))
		require.NoError(t, l.SetSlice(3, 5, "a"))
		assert.Equal(t, []Range[string]{rng(0, 10, "a")}, slices.Collect(l.Ranges()))
	})

	t.Run("WriteAcrossSeveralRanges", func(t *testing.T) {
		l := NewList(10, "a")
		require.NoError(t, l.Set(1, "b"))
		require.NoError(t, l.Set(5, "c"))
		require.NoError(t, l.SetSlice(1, 6, "d"))
		requireCoalesced(t, l)
		assert.Equal(t, []Range[string]{
			rng(0, 1, "a"), rng(1, 6, "d"), rng(6, 10, "a"),
		}, slices.Collect(l.Ranges()))
	})

	t.Run("NegativeIDs", func(t *testing.T) {
		l := NewList(10, 0)
		require.NoError(t, l.Set(-1, 7))
		require.NoError(t, l.SetSlice(-4, -2, 3))
		assert.Equal(t, []Range[int]{
			rng(0, 6, 0), rng(6, 8, 3), rng(8, 9, 0), rng(9, 10, 7),
		}, slices.Collect(l.Ranges()))
	})

	t.Run("SetAll", func(t *testing.T) {
		l := NewList(10, 0)
		require.NoError(t, l.Set(3, 1))
		l.SetAll(2)
		assert.Equal(t, []Range[int]{rng(0, 10, 2)}, slices.Collect(l.Ranges()))
	})

	t.Run("EmptySliceIsNoop", func(t *testing.T) {
		l := NewList(10, 0)
		require.NoError(t, l.SetSlice(4, 4, 1))
		assert.Equal(t, 1, l.RangeCount())
	})

	t.Run("Errors", func(t *testing.T) {
		l := NewList(10, 0)
		assert.ErrorIs(t, l.Set(10, 1), ErrRange)
		assert.ErrorIs(t, l.SetSlice(5, 2, 1), ErrRange)
		assert.ErrorIs(t, l.SetSlice(0, 11, 1), ErrRange)
		assert.Equal(t, 1, l.RangeCount())
	})
}

// TestListMatchesModel applies random writes to a List and to a plain slice
// and compares them after every step.
func TestListMatchesModel(t *testing.T) {
	const size = 40
	r := rand.New(rand.NewPCG(7, 11))

	l := NewList(size, 0)
	model := make([]int, size)

	for step := 0; step < 2000; step++ {
		value := r.IntN(3)
		if r.IntN(2) == 0 {
			id := r.IntN(2*size) - size
			require.NoError(t, l.Set(id, value))
			if id < 0 {
				id += size
			}
			model[id] = value
		} else {
			start := r.IntN(size + 1)
			stop := start + r.IntN(size+1-start)
			require.NoError(t, l.SetSlice(start, stop, value))
			for i := start; i < stop; i++ {
				model[i] = value
			}
		}

		requireCoalesced(t, l)
		require.Equal(t, model, slices.Collect(l.Values()), "step %d", step)
	}
}

func TestListGet(t *testing.T) {
	l := NewList(10, "a")
	require.NoError(t, l.SetSlice(3, 6, "b"))

	v, err := l.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	v, err = l.Get(-1)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	_, err = l.Get(10)
	assert.ErrorIs(t, err, ErrRange)

	t.Run("GetSlice", func(t *testing.T) {
		v, err := l.GetSlice(3, 6)
		require.NoError(t, err)
		assert.Equal(t, "b", v)

		v, err = l.GetSlice(6, End)
		require.NoError(t, err)
		assert.Equal(t, "a", v)

		_, err = l.GetSlice(2, 6)
		assert.ErrorIs(t, err, ErrNotUniform)

		_, err = l.GetSlice(4, 4)
		assert.ErrorIs(t, err, ErrRange)

		_, err = l.GetSlice(0, 11)
		assert.ErrorIs(t, err, ErrRange)
	})

	t.Run("Lookup", func(t *testing.T) {
		v, err := l.Lookup(int8(4))
		require.NoError(t, err)
		assert.Equal(t, "b", v)

		v, err = l.Lookup(To(0, 3))
		require.NoError(t, err)
		assert.Equal(t, "a", v)

		_, err = l.Lookup("4")
		assert.ErrorIs(t, err, ErrType)

		_, err = l.Lookup(To(0, 4))
		assert.ErrorIs(t, err, ErrNotUniform)
	})
}

func TestListSingleValue(t *testing.T) {
	l := NewList(5, 1)
	v, err := l.SingleValue()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, l.Set(2, 9))
	_, err = l.SingleValue()
	assert.ErrorIs(t, err, ErrNotUniform)

	_, err = NewList(0, 1).SingleValue()
	assert.ErrorIs(t, err, ErrRange)
}

func TestListEmpty(t *testing.T) {
	l := NewList(-3, "x")
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.RangeCount())

	l.SetAll("y")
	require.NoError(t, l.SetSlice(0, End, "y"))
	assert.Equal(t, 0, l.RangeCount())
	assert.Empty(t, slices.Collect(l.Values()))

	_, err := l.Get(0)
	assert.ErrorIs(t, err, ErrRange)
}

func TestListRangesBySlice(t *testing.T) {
	l := NewList(10, "a")
	require.NoError(t, l.SetSlice(2, 5, "b"))

	seq, err := l.RangesBySlice(3, 7)
	require.NoError(t, err)
	assert.Equal(t, []Range[string]{rng(3, 5, "b"), rng(5, 7, "a")}, slices.Collect(seq))

	seq, err = l.RangesBySlice(6, 6)
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))

	_, err = l.RangesBySlice(7, 3)
	assert.ErrorIs(t, err, ErrRange)
}

func TestListRangesByIDs(t *testing.T) {
	l := NewList(10, "a")
	require.NoError(t, l.Set(5, "b"))

	seq, err := l.RangesByIDs([]int{0, 1, 2, 4, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []Range[string]{
		rng(0, 3, "a"), rng(4, 5, "a"), rng(4, 5, "a"), rng(5, 6, "b"),
	}, slices.Collect(seq))

	seq, err = l.RangesByIDs([]int{-1, -2})
	require.NoError(t, err)
	assert.Equal(t, []Range[string]{rng(9, 10, "a"), rng(8, 9, "a")}, slices.Collect(seq))

	_, err = l.RangesByIDs([]int{1, 10})
	assert.ErrorIs(t, err, ErrRange)
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "(0, 4, alpha)", rng(0, 4, "alpha").String())
	assert.Equal(t, 4, rng(0, 4, "alpha").Len())
	assert.True(t, rng(2, 4, 0).Contains(3))
	assert.False(t, rng(2, 4, 0).Contains(4))

	m := MultiRange[string]{Start: 1, Stop: 3, Values: map[string]string{"b": "y", "a": "x"}}
	assert.Equal(t, "(1, 3, {a: x, b: y})", m.String())
	assert.Equal(t, 2, m.Len())
}

// FILE: lixenwraith/ranged/dictionary_test.go
package ranged

import (
	"bytes"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDictionary(t *testing.T) *Dictionary[string] {
	t.Helper()
	return New(10, map[string]string{"a": "alpha", "b": "bravo"})
}

func TestNewDictionary(t *testing.T) {
	d := newTestDictionary(t)
	assert.Equal(t, 10, d.Len())
	assert.Equal(t, []string{"a", "b"}, d.Keys())
	assert.True(t, d.Has("a"))
	assert.False(t, d.Has("c"))
	assert.Equal(t, "Dictionary of length 10 with keys [a b]", d.String())

	for key, l := range d.Items() {
		v, err := l.SingleValue()
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"a": "alpha", "b": "bravo"}[key], v)
	}
	assert.Len(t, slices.Collect(d.Values()), 2)

	t.Run("NegativeSize", func(t *testing.T) {
		d := New(-4, map[string]int{"x": 1})
		assert.Equal(t, 0, d.Len())
		assert.Empty(t, d.AllRanges())
	})

	t.Run("NoKeys", func(t *testing.T) {
		d := New[int](5, nil)
		assert.Empty(t, d.Keys())
		ranges := d.AllRanges()
		require.Len(t, ranges, 1)
		assert.Equal(t, 0, ranges[0].Start)
		assert.Equal(t, 5, ranges[0].Stop)
		assert.Empty(t, ranges[0].Values)
	})
}

func TestDictionaryWrites(t *testing.T) {
	d := newTestDictionary(t)
	require.NoError(t, d.SetValueByID("a", 4, "foo"))

	ranges, err := d.Ranges("a")
	require.NoError(t, err)
	assert.Equal(t, []Range[string]{
		rng(0, 4, "alpha"), rng(4, 5, "foo"), rng(5, 10, "alpha"),
	}, ranges)

	ranges, err = d.Ranges("b")
	require.NoError(t, err)
	assert.Equal(t, []Range[string]{rng(0, 10, "bravo")}, ranges)

	require.NoError(t, d.SetValueBySlice("b", 7, End, "x"))
	v, err := d.Value("b", -1)
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	v, err = d.ValueBySlice("b", 0, 7)
	require.NoError(t, err)
	assert.Equal(t, "bravo", v)

	_, err = d.ValueBySlice("b", 6, 8)
	assert.ErrorIs(t, err, ErrNotUniform)

	require.NoError(t, d.SetValue("a", "zulu"))
	ranges, err = d.Ranges("a")
	require.NoError(t, err)
	assert.Equal(t, []Range[string]{rng(0, 10, "zulu")}, ranges)
}

func TestDictionaryErrors(t *testing.T) {
	d := newTestDictionary(t)

	tests := []struct {
		name string
		fn   func() error
		err  error
	}{
		{"ValueUnknownKey", func() error { _, err := d.Value("c", 0); return err }, ErrUnknownKey},
		{"ValueOutOfRange", func() error { _, err := d.Value("a", 10); return err }, ErrRange},
		{"SliceUnknownKey", func() error { _, err := d.ValueBySlice("c", 0, 2); return err }, ErrUnknownKey},
		{"SetUnknownKey", func() error { return d.SetValue("c", "x") }, ErrUnknownKey},
		{"SetByIDUnknownKey", func() error { return d.SetValueByID("c", 0, "x") }, ErrUnknownKey},
		{"SetByIDOutOfRange", func() error { return d.SetValueByID("a", -11, "x") }, ErrRange},
		{"SetBySliceReversed", func() error { return d.SetValueBySlice("a", 5, 4, "x") }, ErrRange},
		{"RangesUnknownKey", func() error { _, err := d.Ranges("c"); return err }, ErrUnknownKey},
		{"ListUnknownKey", func() error { _, err := d.List("c"); return err }, ErrUnknownKey},
		{"LookupBadSelector", func() error { _, err := d.Lookup("a", 2.5); return err }, ErrType},
		{"LookupUnknownKey", func() error { _, err := d.Lookup("c", 1); return err }, ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), tt.err)
		})
	}

	ranges, err := d.Ranges("a")
	require.NoError(t, err)
	assert.Equal(t, []Range[string]{rng(0, 10, "alpha")}, ranges, "failed writes must not change the dictionary")
}

func TestDictionaryLookup(t *testing.T) {
	d := newTestDictionary(t)
	require.NoError(t, d.SetValueBySlice("a", 2, 4, "x"))

	v, err := d.Lookup("a", uint8(3))
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	v, err = d.Lookup("a", To(2, 4))
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	_, err = d.Lookup("a", To(1, 4))
	assert.ErrorIs(t, err, ErrNotUniform)
}

func TestDictionaryAllRanges(t *testing.T) {
	d := newTestDictionary(t)
	require.NoError(t, d.SetValueByID("a", 4, "foo"))
	require.NoError(t, d.SetValueBySlice("b", 3, 5, "x"))

	got := d.AllRanges()
	want := []MultiRange[string]{
		{Start: 0, Stop: 3, Values: map[string]string{"a": "alpha", "b": "bravo"}},
		{Start: 3, Stop: 4, Values: map[string]string{"a": "alpha", "b": "x"}},
		{Start: 4, Stop: 5, Values: map[string]string{"a": "foo", "b": "x"}},
		{Start: 5, Stop: 10, Values: map[string]string{"a": "alpha", "b": "bravo"}},
	}
	assert.Equal(t, want, got)

	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1].Stop, got[i].Start)
		assert.NotEqual(t, got[i-1].Values, got[i].Values)
	}
}

func TestDictionaryListSharesStorage(t *testing.T) {
	d := newTestDictionary(t)
	l, err := d.List("a")
	require.NoError(t, err)
	require.NoError(t, l.Set(0, "direct"))

	v, err := d.Value("a", 0)
	require.NoError(t, err)
	assert.Equal(t, "direct", v)
}

func TestViewFactory(t *testing.T) {
	d := newTestDictionary(t)

	tests := []struct {
		name     string
		selector any
		want     string
		err      error
	}{
		{"Int", 3, "View with id: 3", nil},
		{"NegativeInt", -1, "View with id: 9", nil},
		{"Uint", uint(2), "View with id: 2", nil},
		{"SingleIDList", []int{4}, "View with id: 4", nil},
		{"SingleAnyList", []any{int64(5)}, "View with id: 5", nil},
		{"IDList", []int{1, 3, 3}, "View with ids: [1 3 3]", nil},
		{"AnyList", []any{1, uint8(2)}, "View with ids: [1 2]", nil},
		{"Slice", To(2, End), "View with range: 2 to 10", nil},
		{"NegativeSlice", To(-3, -1), "View with range: 7 to 9", nil},
		{"OutOfRangeInt", 10, "", ErrRange},
		{"ReversedSlice", To(5, 2), "", ErrRange},
		{"StringSelector", "3", "", ErrType},
		{"FloatInList", []any{1, 2.5}, "", ErrType},
		{"NilSelector", nil, "", ErrType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := d.ViewFactory(tt.selector)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}

	t.Run("Types", func(t *testing.T) {
		v, err := d.ViewFactory([]int{4})
		require.NoError(t, err)
		assert.IsType(t, &SingleView[string]{}, v)

		v, err = d.ViewFactory([]int{4, 5})
		require.NoError(t, err)
		assert.IsType(t, &IDsView[string]{}, v)

		v, err = d.ViewFactory(To(0, 2))
		require.NoError(t, err)
		assert.IsType(t, &SliceView[string]{}, v)
	})
}

func TestDictionaryLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	d := New(4, map[string]int{"k": 0}, WithLogger(logger))
	assert.Contains(t, buf.String(), "created ranged dictionary")

	buf.Reset()
	require.NoError(t, d.SetValue("k", 3))
	assert.Contains(t, buf.String(), "set value for all ids")
	assert.Contains(t, buf.String(), "key=k")
}

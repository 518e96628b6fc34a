// FILE: lixenwraith/ranged/doc.go

// Package ranged provides a fixed-length, multi-key container that stores a
// value for every id in [0, n) per key, compressed as runs of equal values.
//
// Each key's values are held by a List: an ordered sequence of ranges that
// tiles [0, n) exactly, where no two adjacent ranges share a value. Every
// write, whether to one id or a slice, merges equal neighbors before it
// returns, so the ranges a List reports are always maximal.
//
// A Dictionary owns one List per key. The key set and the length are fixed
// at construction:
//
//	d := ranged.New(10, map[string]string{"a": "alpha", "b": "bravo"})
//	_ = d.SetValueByID("a", 4, "foo")
//	ranges, _ := d.Ranges("a")
//	// [(0, 4, alpha) (4, 5, foo) (5, 10, alpha)]
//	merged := d.AllRanges()
//	// [(0, 4, {a: alpha, b: bravo}) (4, 5, {a: foo, b: bravo}) (5, 10, {a: alpha, b: bravo})]
//
// Views project part of the id space onto the same read/write surface:
//
//	single, _ := d.View(4)          // one id; also reads like a map of key to value
//	ids := d.ViewOfIDs([]int{1, 3}) // an explicit id sequence
//	slice, _ := d.ViewOfSlice(2, 8) // the contiguous ids [2, 8)
//
// Views share the dictionary's storage, so writes through any handle are
// seen through every other one at once. ViewFactory accepts a dynamically
// typed selector (an integer, an id list, or a Slice).
//
// Ids may be negative, counting back from the end. Slice starts saturate at
// zero; a slice stop of End reaches the last id.
//
// Errors:
//   - ErrType: an id or selector is not an integer kind, or a value loaded
//     from configuration cannot be compared
//   - ErrRange: an id is outside [0, n), or a slice violates start <= stop <= n
//   - ErrNotUniform: a slice or id-set read spans differing values
//   - ErrUnknownKey: the key was not given at construction
//
// A Dictionary and its views perform no locking; they are meant for a single
// owner.
package ranged

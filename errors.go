// FILE: lixenwraith/ranged/errors.go
package ranged

import "errors"

// Error kinds returned by the container, its lists and its views.
// Callers should match them with errors.Is; returned errors carry context.
var (
	// ErrType reports an index, selector or value whose type cannot be used:
	// an index or slice endpoint that is not an integer kind, or a value
	// that cannot be compared.
	ErrType = errors.New("invalid type")

	// ErrRange reports an index outside [0, size) or a slice that violates start <= stop <= size.
	ErrRange = errors.New("index out of range")

	// ErrNotUniform reports a read spanning indices that hold different values.
	ErrNotUniform = errors.New("values are not uniform")

	// ErrUnknownKey reports a key the container was not constructed with.
	ErrUnknownKey = errors.New("unknown key")
)

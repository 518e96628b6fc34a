// FILE: lixenwraith/ranged/config/errors.go
package config

import "errors"

// MaxValueSize bounds a single environment value.
const MaxValueSize = 1 << 20

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	// Builders treat it as non-fatal: defaults, env and CLI still apply.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrCLIParse wraps command-line parsing failures.
	ErrCLIParse = errors.New("failed to parse command-line arguments")

	// ErrValueSize is returned when an environment value exceeds MaxValueSize.
	ErrValueSize = errors.New("value exceeds maximum size")

	// ErrInvalidKey is returned for a file key that cannot be part of a
	// dot-separated path, such as an empty key or one containing a dot.
	ErrInvalidKey = errors.New("key cannot be addressed by a dot-separated path")

	// ErrNotRegistered is returned for operations on unknown paths.
	ErrNotRegistered = errors.New("path not registered")
)

// FILE: lixenwraith/ranged/config/doc.go

// Package config supplies the defaults a ranged dictionary is built from,
// along with the settings of the tools around it.
//
// Values live under dot-separated paths. Each path has a default and may be
// overridden by a file (TOML, YAML or JSON), environment variables or
// command-line arguments, with configurable precedence:
//
//  1. Command-line arguments (--dictionary.size=64)
//  2. Environment variables (RANGEDICT_DICTIONARY_SIZE=64)
//  3. Configuration file (rangedict.toml)
//  4. Default values
//
// Paths found in a file but never registered are registered on load, so a
// section such as
//
//	[dictionary.defaults]
//	tau = 20.0
//	label = "excitatory"
//
// can be read back with Scan without knowing its keys in advance. File keys
// that a path cannot address, such as the quoted TOML key "a.b", are
// rejected with ErrInvalidKey.
//
//	cfg, err := config.NewBuilder().
//	    WithFileDiscovery(config.DefaultDiscoveryOptions("rangedict")).
//	    WithEnvPrefix("RANGEDICT_").
//	    Build()
//
// All operations are safe for concurrent use.
package config

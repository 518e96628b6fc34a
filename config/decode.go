// FILE: lixenwraith/ranged/config/decode.go
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the effective values under basePath into target, which must be
// a non-nil pointer to a struct or map. Fields map through `toml` tags and
// values convert weakly (for example "10" into an int).
// A basePath that does not exist decodes an empty section.
func (c *Config) Scan(basePath string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("target of Scan must be a non-nil pointer, got %T", target)
	}

	section, err := c.Section(basePath)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "toml",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			trimmedStringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(section); err != nil {
		return fmt.Errorf("failed to scan section %q into %T: %w", basePath, target, err)
	}
	return nil
}

// Section returns a nested copy of the effective values under basePath.
func (c *Config) Section(basePath string) (map[string]any, error) {
	c.mutex.RLock()
	nested := make(map[string]any)
	for path, item := range c.items {
		setNestedValue(nested, path, item.currentValue)
	}
	c.mutex.RUnlock()

	data := navigateToPath(nested, basePath)
	if data == nil {
		return make(map[string]any), nil
	}
	section, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("configuration path %q does not refer to a section, but to type %T", basePath, data)
	}
	return section, nil
}

// trimmedStringToSliceHookFunc splits a string into a slice on sep and trims
// the spaces around each element, so "a, b" decodes as ["a", "b"].
func trimmedStringToSliceHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Slice {
			return data, nil
		}
		raw := data.(string)
		if raw == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, sep)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}

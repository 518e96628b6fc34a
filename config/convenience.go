// FILE: lixenwraith/ranged/config/convenience.go
package config

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// Validate checks that every required path is registered and was given a
// value by some source other than its default.
func (c *Config) Validate(required ...string) error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var missing []string
	for _, path := range required {
		item, exists := c.items[path]
		if !exists {
			missing = append(missing, path+" (not registered)")
			continue
		}
		if len(item.values) == 0 && reflect.DeepEqual(item.currentValue, item.defaultValue) {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Debug lists every path in order, one per line, as
//
//	path = effective (default=..., file=..., env=..., cli=...)
//
// naming only the sources that hold a value for the path.
func (c *Config) Debug() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "precedence: %v\n", c.options.Sources)
	if c.configFilePath != "" {
		fmt.Fprintf(&b, "file: %s\n", c.configFilePath)
	}

	for _, path := range slices.Sorted(maps.Keys(c.items)) {
		item := c.items[path]
		origins := []string{fmt.Sprintf("default=%v", item.defaultValue)}
		for _, source := range c.options.Sources {
			if value, ok := item.values[source]; ok {
				origins = append(origins, fmt.Sprintf("%s=%v", source, value))
			}
		}
		fmt.Fprintf(&b, "%s = %v (%s)\n", path, item.currentValue, strings.Join(origins, ", "))
	}
	return b.String()
}

// FilePath returns the last file loaded, if any.
func (c *Config) FilePath() string {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.configFilePath
}

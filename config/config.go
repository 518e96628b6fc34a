// FILE: lixenwraith/ranged/config/config.go
package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// configItem holds the default, per-source and effective value of one path.
type configItem struct {
	defaultValue any
	values       map[Source]any
	currentValue any

	// fromFile marks a path registered by loading a file rather than by Register.
	fromFile bool
}

// Config is a registry of dot-separated paths, each with a default value that
// can be overridden by a file, the environment or the command line.
type Config struct {
	items          map[string]configItem
	options        LoadOptions
	configFilePath string
	mutex          sync.RWMutex
}

// New creates an empty Config with the default load options.
func New() *Config {
	return NewWithOptions(DefaultLoadOptions())
}

// NewWithOptions creates an empty Config with custom load options.
func NewWithOptions(opts LoadOptions) *Config {
	return &Config{
		items:   make(map[string]configItem),
		options: opts,
	}
}

// Register makes a path known with its default value.
// Each dot-separated segment must be a valid TOML bare key.
func (c *Config) Register(path string, defaultValue any) error {
	if path == "" {
		return fmt.Errorf("registration path cannot be empty")
	}
	if err := validatePath(path); err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items[path] = configItem{
		defaultValue: defaultValue,
		currentValue: defaultValue,
	}
	return nil
}

// RegisterStruct registers every exported field of a struct, recursing into
// nested structs. Paths come from `toml` tags, or field names without one,
// and are prefixed with prefix.
func (c *Config) RegisterStruct(prefix string, structWithDefaults any) error {
	v := reflect.ValueOf(structWithDefaults)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("RegisterStruct requires a non-nil struct pointer or value")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("RegisterStruct requires a struct or struct pointer, got %T", structWithDefaults)
	}

	var errs []string
	c.registerFields(v, prefix, &errs)
	if len(errs) > 0 {
		return fmt.Errorf("failed to register %d field(s): %s", len(errs), strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) registerFields(v reflect.Value, prefix string, errs *[]string) {
	if prefix != "" && !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		tag := field.Tag.Get("toml")
		if tag == "-" {
			continue
		}
		key := field.Name
		if name, _, _ := strings.Cut(tag, ","); name != "" {
			key = name
		}
		path := prefix + key

		fieldValue := v.Field(i)
		switch {
		case fieldValue.Kind() == reflect.Struct:
			c.registerFields(fieldValue, path, errs)
			continue
		case fieldValue.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.Struct:
			if !fieldValue.IsNil() {
				c.registerFields(fieldValue.Elem(), path, errs)
			}
			continue
		}

		if err := c.Register(path, fieldValue.Interface()); err != nil {
			*errs = append(*errs, fmt.Sprintf("field %s (path %s): %v", field.Name, path, err))
		}
	}
}

// Get returns the effective value of path and whether it is registered.
func (c *Config) Get(path string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	item, registered := c.items[path]
	if !registered {
		return nil, false
	}
	return item.currentValue, true
}

// applyValue records value for path as coming from source and recomputes the
// effective value. Callers must hold the lock and the path must be registered.
func (c *Config) applyValue(path string, source Source, value any) {
	item := c.items[path]
	if item.values == nil {
		item.values = make(map[Source]any)
	}
	item.values[source] = value
	item.currentValue = c.computeValue(item)
	c.items[path] = item
}

// computeValue picks the first source in precedence order holding a value.
// Callers must hold the lock.
func (c *Config) computeValue(item configItem) any {
	for _, source := range c.options.Sources {
		if source == SourceDefault {
			return item.defaultValue
		}
		if value, ok := item.values[source]; ok {
			return value
		}
	}
	return item.defaultValue
}

// validatePath checks every segment of a dot-separated path.
func validatePath(path string) error {
	for _, segment := range strings.Split(path, ".") {
		if !isValidKeySegment(segment) {
			return fmt.Errorf("invalid path segment %q in path %q", segment, path)
		}
	}
	return nil
}

// FILE: lixenwraith/ranged/config/loader.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source names where a configuration value came from.
type Source string

const (
	// SourceDefault is the value given at registration
	SourceDefault Source = "default"
	// SourceFile is a value read from the configuration file
	SourceFile Source = "file"
	// SourceEnv is a value read from an environment variable
	SourceEnv Source = "env"
	// SourceCLI is a value read from command-line arguments
	SourceCLI Source = "cli"
)

// LoadOptions configures how sources are layered.
type LoadOptions struct {
	// Sources lists sources from highest to lowest precedence.
	// Default: [SourceCLI, SourceEnv, SourceFile, SourceDefault]
	Sources []Source

	// EnvPrefix is prepended to environment variable names.
	// "RANGEDICT_" maps "dictionary.size" to "RANGEDICT_DICTIONARY_SIZE".
	EnvPrefix string
}

// DefaultLoadOptions returns the standard precedence CLI > env > file > default.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Sources: []Source{SourceCLI, SourceEnv, SourceFile, SourceDefault},
	}
}

// LoadWithOptions layers every source in opts. A missing file is reported as
// ErrConfigNotFound, joined with any other non-fatal errors; other file errors
// are returned at once.
func (c *Config) LoadWithOptions(filePath string, args []string, opts LoadOptions) error {
	c.mutex.Lock()
	c.options = opts
	c.mutex.Unlock()

	var loadErrors []error

	// Lowest precedence first so that later sources see the file's paths.
	for i := len(opts.Sources) - 1; i >= 0; i-- {
		switch opts.Sources[i] {
		case SourceDefault:
			continue

		case SourceFile:
			if filePath == "" {
				continue
			}
			if err := c.loadFile(filePath); err != nil {
				if !errors.Is(err, ErrConfigNotFound) {
					return err
				}
				loadErrors = append(loadErrors, err)
			}

		case SourceEnv:
			if err := c.loadEnv(opts); err != nil {
				loadErrors = append(loadErrors, err)
			}

		case SourceCLI:
			if len(args) > 0 {
				if err := c.loadCLI(args); err != nil {
					loadErrors = append(loadErrors, err)
				}
			}
		}
	}

	return errors.Join(loadErrors...)
}

// loadFile parses path and records its values as SourceFile.
// Paths present in the file but not registered are registered with the file
// value as their default, since some sections (such as dictionary defaults)
// only become known from the file. Such paths are forgotten again when a
// later load of the file no longer holds them.
func (c *Config) loadFile(path string) error {
	fileData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	fileConfig, err := decodeFile(path, fileData)
	if err != nil {
		return err
	}
	if err := checkKeys(fileConfig, ""); err != nil {
		return fmt.Errorf("config file '%s': %w", path, err)
	}
	flattened := flattenMap(fileConfig, "")

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.configFilePath = path
	for p, item := range c.items {
		if _, ok := flattened[p]; ok {
			continue
		}
		if item.fromFile {
			delete(c.items, p)
			continue
		}
		delete(item.values, SourceFile)
		item.currentValue = c.computeValue(item)
		c.items[p] = item
	}
	for p, value := range flattened {
		if _, registered := c.items[p]; !registered {
			c.items[p] = configItem{defaultValue: value, currentValue: value, fromFile: true}
		}
		c.applyValue(p, SourceFile, value)
	}
	return nil
}

// decodeFile picks a format from the extension, falling back to the content.
func decodeFile(path string, data []byte) (map[string]any, error) {
	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
	}

	fileConfig := make(map[string]any)
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case "json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unable to determine config format for file '%s'", path)
	}
	return fileConfig, nil
}

// loadEnv looks up each registered path in the environment.
func (c *Config) loadEnv(opts LoadOptions) error {
	toEnv := envName(opts.EnvPrefix)

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for path := range c.items {
		name := toEnv(path)
		value, exists := os.LookupEnv(name)
		if !exists {
			continue
		}
		if len(value) > MaxValueSize {
			return fmt.Errorf("%w: %s", ErrValueSize, name)
		}
		c.applyValue(path, SourceEnv, parseValue(value))
	}
	return nil
}

// loadCLI applies arguments to registered paths; others are ignored.
func (c *Config) loadCLI(args []string) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCLIParse, err)
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for path, value := range flattenMap(parsed, "") {
		if _, registered := c.items[path]; registered {
			c.applyValue(path, SourceCLI, value)
		}
	}
	return nil
}

// envName upper-cases a path, replaces dots with underscores and prepends prefix.
func envName(prefix string) func(path string) string {
	return func(path string) string {
		return prefix + strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
	}
}

// parseArgs turns arguments into a nested map. Non-flag arguments are skipped.
func parseArgs(args []string) (map[string]any, error) {
	result := make(map[string]any)
	for i := 0; i < len(args); {
		arg := args[i]
		content, isFlag := strings.CutPrefix(arg, "--")
		if !isFlag || content == "" {
			i++
			continue
		}

		var keyPath, valueStr string
		if k, v, found := strings.Cut(content, "="); found {
			keyPath, valueStr = k, v
			i++
		} else if i+1 >= len(args) || strings.HasPrefix(args[i+1], "--") {
			keyPath, valueStr = content, "true"
			i++
		} else {
			keyPath, valueStr = content, args[i+1]
			i += 2
		}

		if err := validatePath(keyPath); err != nil {
			return nil, fmt.Errorf("invalid command-line key: %w", err)
		}
		setNestedValue(result, keyPath, parseValue(valueStr))
	}
	return result, nil
}

// detectFileFormat determines the format from the file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	}
	return ""
}

// detectFormatFromContent tries the stricter formats first.
func detectFormatFromContent(data []byte) string {
	var asJSON map[string]any
	if err := json.Unmarshal(data, &asJSON); err == nil {
		return "json"
	}
	var asTOML map[string]any
	if _, err := toml.Decode(string(data), &asTOML); err == nil {
		return "toml"
	}
	var asYAML map[string]any
	if err := yaml.Unmarshal(data, &asYAML); err == nil {
		return "yaml"
	}
	return ""
}

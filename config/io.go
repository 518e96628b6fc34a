// FILE: lixenwraith/ranged/config/io.go
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Dump writes the effective values to w as TOML. Paths whose value is nil are left out.
func (c *Config) Dump(w io.Writer) error {
	nested, err := c.Section("")
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(w).Encode(nested); err != nil {
		return fmt.Errorf("failed to encode config as TOML: %w", err)
	}
	return nil
}

// Save dumps the effective values to path. The TOML is written to a
// temporary file in the same directory and renamed over path, so a reader
// sees either the old file or the complete new one.
func (c *Config) Save(path string) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory '%s': %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}
	defer os.Remove(tmp.Name())

	err = c.Dump(tmp)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmp.Name(), 0644)
	}
	if err != nil {
		return fmt.Errorf("failed to write config '%s': %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}

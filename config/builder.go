// FILE: lixenwraith/ranged/config/builder.go
package config

import (
	"errors"
	"fmt"
	"os"
)

// ValidatorFunc checks a fully loaded Config.
type ValidatorFunc func(c *Config) error

// Builder provides a fluent interface for building configurations.
type Builder struct {
	cfg        *Config
	opts       LoadOptions
	defaults   any
	file       string
	args       []string
	validators []ValidatorFunc
}

// NewBuilder creates a builder reading os.Args[1:] with default precedence.
func NewBuilder() *Builder {
	return &Builder{
		cfg:  New(),
		opts: DefaultLoadOptions(),
		args: os.Args[1:],
	}
}

// WithDefaults sets the struct whose fields are registered as defaults.
func (b *Builder) WithDefaults(defaults any) *Builder {
	b.defaults = defaults
	return b
}

// WithEnvPrefix sets the environment variable prefix.
func (b *Builder) WithEnvPrefix(prefix string) *Builder {
	b.opts.EnvPrefix = prefix
	return b
}

// WithArgs sets the command-line arguments.
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithValidator adds a check run after loading, in the order added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build registers defaults, loads every source and runs the validators.
// A missing file is not fatal: the Config is returned with ErrConfigNotFound.
func (b *Builder) Build() (*Config, error) {
	if b.defaults != nil {
		if err := b.cfg.RegisterStruct("", b.defaults); err != nil {
			return nil, fmt.Errorf("failed to register defaults: %w", err)
		}
	}

	loadErr := b.cfg.LoadWithOptions(b.file, b.args, b.opts)
	if loadErr != nil && !errors.Is(loadErr, ErrConfigNotFound) {
		return nil, loadErr
	}

	for _, validator := range b.validators {
		if err := validator(b.cfg); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	return b.cfg, loadErr
}

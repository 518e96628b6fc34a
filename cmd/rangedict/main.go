// FILE: lixenwraith/ranged/cmd/rangedict/main.go

// Command rangedict builds a ranged dictionary from configuration, applies the
// configured writes and prints the resulting ranges.
//
// The configuration file is found through --config, RANGEDICT_CONFIG, the
// working directory or the XDG config directories. Any registered setting can
// be overridden with RANGEDICT_* variables or --section.key flags:
//
//	rangedict --config dict.toml --output.format yaml --output.key a
//
// With --output.save path the effective configuration, after every override,
// is also written to path as TOML.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lixenwraith/ranged"
	"github.com/lixenwraith/ranged/config"
	"github.com/lixenwraith/ranged/logging"
	log "github.com/sirupsen/logrus"
)

// Settings are the registered defaults of the command.
type Settings struct {
	Dictionary struct {
		Size int64 `toml:"size"`
	} `toml:"dictionary"`
	Output  Output          `toml:"output"`
	Logging logging.Section `toml:"logging"`
}

// Output selects what is printed and how. A non-empty Save also writes the
// effective configuration to that path as TOML.
type Output struct {
	Format string `toml:"format"`
	Key    string `toml:"key"`
	Save   string `toml:"save"`
}

func defaultSettings() *Settings {
	s := &Settings{}
	s.Output.Format = formatTable
	s.Logging.Default = "warning"
	return s
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.WithField("err", err).Fatal("rangedict failed")
	}
}

func run(args []string, out, logOut io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	factory, err := logging.New(cfg)
	if err != nil {
		return err
	}
	factory.SetOutput(logOut)

	logger := factory.Logger("rangedict")
	if path := cfg.FilePath(); path != "" {
		logger.WithField("path", path).Info("loaded configuration")
	}
	if factory.LevelOf("rangedict") >= log.DebugLevel {
		logger.Debug(cfg.Debug())
	}

	dict, err := ranged.Load(cfg, "dictionary", ranged.WithLogger(factory.Logger("ranged")))
	if err != nil {
		return fmt.Errorf("building dictionary: %w", err)
	}

	var output Output
	if err := cfg.Scan("output", &output); err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"dictionary": dict.String(),
		"format":     output.Format,
		"key":        output.Key,
	}).Debug("rendering")

	if err := render(out, dict, output); err != nil {
		return err
	}

	if output.Save != "" {
		if err := cfg.Save(output.Save); err != nil {
			return err
		}
		logger.WithField("path", output.Save).Info("saved effective configuration")
	}
	return nil
}

// loadConfig builds the configuration. A missing file leaves the defaults.
func loadConfig(args []string) (*config.Config, error) {
	cfg, err := config.NewBuilder().
		WithArgs(args).
		WithDefaults(defaultSettings()).
		WithEnvPrefix("RANGEDICT_").
		WithFileDiscovery(config.DefaultDiscoveryOptions("rangedict")).
		WithValidator(validateDictionary).
		WithValidator(validateOutput).
		Build()
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, err
	}
	return cfg, nil
}

// validateDictionary requires a configuration file to give the dictionary
// size, and the size to be an integer wherever it came from.
func validateDictionary(c *config.Config) error {
	if c.FilePath() != "" {
		if err := c.Validate("dictionary.size"); err != nil {
			return err
		}
	}
	if _, err := c.Int64("dictionary.size"); err != nil {
		return err
	}
	return nil
}

func validateOutput(c *config.Config) error {
	format, err := c.String("output.format")
	if err != nil {
		return err
	}
	switch format {
	case formatTable, formatYAML, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

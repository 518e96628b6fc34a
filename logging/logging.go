// FILE: lixenwraith/ranged/logging/logging.go

// Package logging builds logrus loggers whose levels come from the
// [logging] section of a config.Config.
//
// The section names a default level and, per level, a comma-separated list of
// components:
//
//	[logging]
//	default = "info"
//	debug = "ranged.view, rangedict"
//	error = "ranged"
//
// A component logs at the level of its deepest configured parent: with the
// section above, "ranged.view.slice" logs at debug, "ranged.list" at error
// and "other" at info.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/lixenwraith/ranged/config"
	"github.com/sirupsen/logrus"
)

// Section is the decoded [logging] configuration.
type Section struct {
	Default  string   `toml:"default"`
	Debug    []string `toml:"debug"`
	Info     []string `toml:"info"`
	Warning  []string `toml:"warning"`
	Error    []string `toml:"error"`
	Critical []string `toml:"critical"`
}

// TimestampFormat is used for every log line.
const TimestampFormat = "2006-01-02 15:04:05"

// levels maps configuration names to logrus levels. "critical" admits only
// fatal and panic entries.
var levels = map[string]logrus.Level{
	"trace":    logrus.TraceLevel,
	"debug":    logrus.DebugLevel,
	"info":     logrus.InfoLevel,
	"warning":  logrus.WarnLevel,
	"error":    logrus.ErrorLevel,
	"critical": logrus.FatalLevel,
}

// ParseLevel resolves a configuration level name, case-insensitively.
func ParseLevel(name string) (logrus.Level, error) {
	level, ok := levels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown logging level %q", name)
	}
	return level, nil
}

// Factory hands out one logger per component, sharing output and format.
type Factory struct {
	defaultLevel logrus.Level
	levels       map[string]logrus.Level
	formatter    logrus.Formatter
	reportCaller bool

	mu      sync.Mutex
	out     io.Writer
	loggers map[string]*logrus.Logger
}

// New reads the [logging] section of cfg. A missing section logs at info.
func New(cfg *config.Config) (*Factory, error) {
	var section Section
	if cfg != nil {
		if err := cfg.Scan("logging", &section); err != nil {
			return nil, fmt.Errorf("failed to read logging configuration: %w", err)
		}
	}
	return NewFromSection(section)
}

// NewFromSection builds a factory from an already decoded section.
func NewFromSection(section Section) (*Factory, error) {
	defaultLevel := logrus.InfoLevel
	if section.Default != "" {
		level, err := ParseLevel(section.Default)
		if err != nil {
			return nil, err
		}
		defaultLevel = level
	}

	f := &Factory{
		defaultLevel: defaultLevel,
		levels:       make(map[string]logrus.Level),
		out:          os.Stderr,
		loggers:      make(map[string]*logrus.Logger),
		formatter: &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: TimestampFormat,
		},
		// Debug output names the calling function and file.
		reportCaller: defaultLevel >= logrus.DebugLevel,
	}

	perLevel := []struct {
		components []string
		level      logrus.Level
	}{
		{section.Debug, logrus.DebugLevel},
		{section.Info, logrus.InfoLevel},
		{section.Warning, logrus.WarnLevel},
		{section.Error, logrus.ErrorLevel},
		{section.Critical, logrus.FatalLevel},
	}
	for _, entry := range perLevel {
		for _, component := range entry.components {
			if component = strings.TrimSpace(component); component != "" {
				f.levels[component] = entry.level
			}
		}
	}
	return f, nil
}

// SetOutput redirects every logger, current and future, to w.
func (f *Factory) SetOutput(w io.Writer) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.out = w
	for _, l := range f.loggers {
		l.SetOutput(w)
	}
}

// Logger returns the logger for a dot-separated component name.
func (f *Factory) Logger(component string) logrus.FieldLogger {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.loggers[component]
	if !ok {
		l = logrus.New()
		l.SetOutput(f.out)
		l.SetFormatter(f.formatter)
		l.SetReportCaller(f.reportCaller)
		l.SetLevel(f.LevelOf(component))
		f.loggers[component] = l
	}
	return l.WithField("component", component)
}

// LevelOf returns the level of component's deepest configured parent, or the
// default level when none is configured.
func (f *Factory) LevelOf(component string) logrus.Level {
	if parent, ok := DeepestParent(f.levels, component); ok {
		return f.levels[parent]
	}
	return f.defaultLevel
}

// DeepestParent strips trailing segments from child until it names a key of
// parents. It reports false if no prefix matches.
func DeepestParent[T any](parents map[string]T, child string) (string, bool) {
	match := child
	for {
		if _, ok := parents[match]; ok {
			return match, true
		}
		i := strings.LastIndexByte(match, '.')
		if i < 0 {
			return "", false
		}
		match = match[:i]
	}
}

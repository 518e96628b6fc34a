// FILE: lixenwraith/ranged/options.go
package ranged

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option customizes a Dictionary at construction.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

// WithLogger routes the dictionary's debug logging to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// discardLogger keeps dictionaries silent unless a logger is supplied.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func defaultOptions() options {
	return options{logger: discardLogger}
}

// Package logging builds the structured logger shared by every component.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Supported output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New creates a logger writing to stdout with the given level and format
func New(level, format string) (*logrus.Logger, error) {
	return NewWithOutput(level, format, os.Stdout)
}

// NewWithOutput is New with an explicit writer
func NewWithOutput(level, format string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)

	lvl := logrus.InfoLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrapf(err, "log level %q", level)
		}
		lvl = parsed
	}
	log.SetLevel(lvl)

	switch strings.ToLower(format) {
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	case FormatText, "":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}

	return log, nil
}

// Discard returns a logger that drops everything, for tests
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

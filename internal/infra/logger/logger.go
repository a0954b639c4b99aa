// Package logger builds the logrus logger shared by the inventory and its
// command line front end.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the level, formatter and destination of a logger.
type Config struct {
	Level  string
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a configured logger. An empty level means warn and an empty
// format means text.
func New(cfg Config) (*logrus.Logger, error) {
	logg := logrus.New()
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		logg.SetFormatter(&logrus.JSONFormatter{})
	case "", "text":
		logg.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	level := logrus.WarnLevel
	if raw := strings.TrimSpace(cfg.Level); raw != "" {
		parsed, err := logrus.ParseLevel(raw)
		if err != nil {
			return nil, err
		}
		level = parsed
	}
	logg.SetLevel(level)
	if cfg.Output != nil {
		logg.SetOutput(cfg.Output)
	} else {
		logg.SetOutput(os.Stderr)
	}
	return logg, nil
}

// LogError logs err at error level with the module, function and context
// fields. data is attached when non-nil.
func LogError(logger logrus.FieldLogger, moduleName, funcName, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}

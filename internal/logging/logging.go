// Package logging configures the logrus loggers used by the CLI.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvsteiner/internal/config"
)

// New returns a logger writing to out with the level and formatter from cfg.
func New(cfg config.LogConfig, out io.Writer) (*log.Logger, error) {
	l := log.New()
	if err := Configure(l, cfg, out); err != nil {
		return nil, err
	}

	return l, nil
}

// Configure applies cfg to an existing logger, e.g. log.StandardLogger().
func Configure(l *log.Logger, cfg config.LogConfig, out io.Writer) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return errors.Wrap(err, "logging: level")
	}
	l.SetOutput(out)
	l.SetLevel(level)

	switch cfg.Format {
	case "json":
		l.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		l.SetFormatter(&log.TextFormatter{
			DisableColors:    !Colorable(out),
			DisableQuote:     true,
			DisableTimestamp: true,
			PadLevelText:     true,
		})
	default:
		return errors.Errorf("logging: unknown format %q", cfg.Format)
	}

	return nil
}

// Colorable reports whether w is a terminal that accepts color codes.
func Colorable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

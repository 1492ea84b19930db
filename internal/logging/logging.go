// Package logging sets up the process wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const timeFormat = "2006-01-02 15:04:05.000"

// NewHandler returns a tint handler writing to w. Colour is only used on terminals.
func NewHandler(w io.Writer, level slog.Level, color bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
		NoColor:    !color,
	})
}

// Setup installs a stderr logger at level as the slog default.
func Setup(level slog.Level) *slog.Logger {
	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	logger := slog.New(NewHandler(colorable.NewColorable(os.Stderr), level, color))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(level)
	return logger
}

// Since is a small helper for timing attributes.
func Since(t time.Time) slog.Attr {
	return slog.Duration("took", time.Since(t))
}

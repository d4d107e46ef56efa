package logs

import (
	"io"
	"log/slog"
)

type Options struct {
	// Level is the minimum level of the records to emit. Defaults to warn.
	Level slog.Leveler
}

// NewHandler returns a slog.Handler writing human-readable records to the
// given writer.
func NewHandler(w io.Writer, opts *Options) slog.Handler {
	level := slog.Leveler(slog.LevelWarn)
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
}

// VerbosityToLevel maps the number of -v flags to a log level.
func VerbosityToLevel(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// Err returns a slog attribute for the given error.
func Err(err error) slog.Attr {
	return slog.Any("err", err)
}

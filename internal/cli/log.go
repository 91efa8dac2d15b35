package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, prefixed with the
// program name. Timestamps look like "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "ugraph",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type loggerKey struct{}

// commandContext attaches a logger tagged with the running command's name.
func commandContext(ctx context.Context, base *log.Logger, command string) context.Context {
	return context.WithValue(ctx, loggerKey{}, base.With("cmd", command))
}

// loggerFromContext returns the command logger, or log.Default() outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

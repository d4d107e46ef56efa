package testutils

import (
	"context"
	"io"

	"github.com/grafana/grafana-app-sdk/logging"
	"github.com/grafana/lintrc/internal/logs"
)

// NullLoggerContext returns a context carrying a logger that discards everything.
func NullLoggerContext() context.Context {
	return logging.Context(context.Background(), logging.NewSLogLogger(logs.NewHandler(io.Discard, &logs.Options{})))
}

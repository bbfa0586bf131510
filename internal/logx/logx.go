package logx

import (
	"context"
	"io"
	"log"
	"os"
)

type ctxKey string

const loggerKey ctxKey = "logger"

var output io.Writer = os.Stdout

// NewRequestLogger creates a logger whose lines start with [RequestId][Method:Endpoint] - .
func NewRequestLogger(requestId, method, path string) *log.Logger {
	return log.New(output, "["+requestId+"]["+method+":"+path+"] - ", log.LstdFlags)
}

func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request logger, or the default logger outside a request.
func FromContext(ctx context.Context) *log.Logger {
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}

func Errorf(ctx context.Context, format string, args ...any) {
	FromContext(ctx).Printf("ERROR: "+format, args...)
}

package bsncloud

import (
	"context"
	"log/slog"
	"time"
)

// Logger is an optional interface for structured logging.
// It uses the standard library's slog interface for compatibility.
type Logger interface {
	// LogAttrs logs a message with the given level and attributes.
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// WithLogger configures a structured logger for the client.
// When set, the client logs API requests and responses.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
//	client := bsncloud.New(bsncloud.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// logRequest logs an outbound API request at debug level.
func (c *Client) logRequest(ctx context.Context, method, url string) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "api_request",
		slog.String("method", method),
		slog.String("url", url),
	)
}

// logResponse logs an API response or transport failure. Protocol errors
// log at warn (4xx) or error (5xx); transport failures always at error.
func (c *Client) logResponse(ctx context.Context, method, url string, statusCode int, duration time.Duration, err error) {
	if c.logger == nil {
		return
	}

	level := slog.LevelDebug
	if statusCode >= 400 {
		level = slog.LevelWarn
	}
	if statusCode >= 500 || err != nil {
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", statusCode),
		slog.Duration("duration", duration),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	c.logger.LogAttrs(ctx, level, "api_response", attrs...)
}

// Package logger provides structured logging infrastructure for the application.
// This is part of the platform layer and contains no business logic.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Context key types for storing values in context
type contextKey string

const (
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
)

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New creates a new logger based on environment
func New(env string) *Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithContext returns a logger with context values extracted.
// Supports request_id from context.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if ctx == nil {
		return l
	}

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		return l.WithRequestID(requestID)
	}

	return l
}

// WithRequestID returns a logger with request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.With(slog.String("request_id", requestID)),
	}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, status int, latencyMs float64, clientIP string) {
	l.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("latency_ms", latencyMs),
		slog.String("client_ip", clientIP),
	)
}

// WebhookReceived logs the arrival of an inbound webhook payload.
func (l *Logger) WebhookReceived(processingID, level, model string) {
	l.Info("webhook_received",
		slog.String("processing_id", processingID),
		slog.String("level", level),
		slog.String("model", model),
	)
}

// GenerationFallback logs a failed primary generation attempt before the
// fallback model is tried.
func (l *Logger) GenerationFallback(processingID, primaryModel, fallbackModel string, err error) {
	l.Warn("generation_fallback",
		slog.String("processing_id", processingID),
		slog.String("primary_model", primaryModel),
		slog.String("fallback_model", fallbackModel),
		slog.String("error", errString(err)),
	)
}

// GenerationFailed logs a terminal generation failure (both attempts).
func (l *Logger) GenerationFailed(processingID, model string, err error) {
	l.Error("generation_failed",
		slog.String("processing_id", processingID),
		slog.String("model", model),
		slog.String("error", errString(err)),
	)
}

// DeliverySkipped logs that delivery was skipped for a request.
func (l *Logger) DeliverySkipped(processingID, reason string) {
	l.Info("delivery_skipped",
		slog.String("processing_id", processingID),
		slog.String("reason", reason),
	)
}

// SinkError logs a swallowed delivery sink failure.
func (l *Logger) SinkError(processingID, sink string, err error) {
	l.Error("sink_error",
		slog.String("processing_id", processingID),
		slog.String("sink", sink),
		slog.String("error", errString(err)),
	)
}

func errString(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}

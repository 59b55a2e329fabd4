package middleware

import (
	"context"

	"go.uber.org/zap"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyLogger ctxKey = "logger"
	ctxKeyLang   ctxKey = "lang"
)

var noopLogger = zap.NewNop()

// WithLogger stores the request-scoped logger in context.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = noopLogger
	}
	return context.WithValue(ctx, ctxKeyLogger, logger)
}

// LoggerFrom returns the request-scoped logger or a no-op logger.
func LoggerFrom(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return noopLogger
	}
	if l, ok := ctx.Value(ctxKeyLogger).(*zap.Logger); ok && l != nil {
		return l
	}
	return noopLogger
}

// WithLang stores the resolved language in context.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLang, lang)
}

// LangFrom returns the resolved language, if any.
func LangFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyLang).(string)
	return v, ok && v != ""
}

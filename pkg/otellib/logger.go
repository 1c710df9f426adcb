package otellib

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ctxLoggerKey struct{}
type ctxLoggerValue struct {
	logger *zap.Logger
}

var loggerKey ctxLoggerKey

const (
	traceIDField    = "trace.id"
	spanIDField     = "span.id"
	traceFlagsField = "trace.flags"
)

// Middleware attaches the logger to every request context
func Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ToContext(r.Context(), logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Extract ...
func Extract(ctx context.Context) *zap.Logger {
	val, ok := ctx.Value(loggerKey).(ctxLoggerValue)
	if !ok {
		return zap.NewNop()
	}
	sc := trace.SpanContextFromContext(ctx)
	return val.logger.With(
		zap.String(traceIDField, sc.TraceID().String()),
		zap.String(spanIDField, sc.SpanID().String()),
		zap.String(traceFlagsField, sc.TraceFlags().String()),
	)
}

// WrapError ...
func WrapError(ctx context.Context, err error) {
	Extract(ctx).WithOptions(zap.AddCallerSkip(2)).
		Error("WrapError", zap.Error(err))
}

// ToContext ...
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, ctxLoggerValue{logger: l})
}

package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TraceOperation traces an operation with timing and attributes
func TraceOperation(ctx context.Context, operationName string, attributes map[string]interface{}) (context.Context, trace.Span, func()) {
	start := time.Now()

	otelAttrs := make([]attribute.KeyValue, 0, len(attributes))
	for k, v := range attributes {
		switch val := v.(type) {
		case string:
			otelAttrs = append(otelAttrs, attribute.String(k, val))
		case int:
			otelAttrs = append(otelAttrs, attribute.Int(k, val))
		case int64:
			otelAttrs = append(otelAttrs, attribute.Int64(k, val))
		case bool:
			otelAttrs = append(otelAttrs, attribute.Bool(k, val))
		case float64:
			otelAttrs = append(otelAttrs, attribute.Float64(k, val))
		default:
			otelAttrs = append(otelAttrs, attribute.String(k, "unknown_type"))
		}
	}

	spanCtx, span := otel.Tracer("app-landing").Start(ctx, operationName, trace.WithAttributes(otelAttrs...))

	cleanup := func() {
		duration := time.Since(start)
		span.SetAttributes(
			attribute.Int64("duration_ms", duration.Milliseconds()),
			attribute.String("duration", duration.String()),
		)
		span.End()
	}

	return spanCtx, span, cleanup
}

// TraceDatabaseFind traces a database find operation
func TraceDatabaseFind(ctx context.Context, collection, filter string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("app-landing").Start(ctx, "db.find",
		trace.WithAttributes(
			attribute.String("db.system", "mongodb"),
			attribute.String("db.operation", "find"),
			attribute.String("db.collection", collection),
			attribute.String("db.filter", filter),
		),
	)
	return ctx, span
}

// TraceCacheGet traces a cache read
func TraceCacheGet(ctx context.Context, key string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("app-landing").Start(ctx, "cache.get",
		trace.WithAttributes(
			attribute.String("cache.key", key),
		),
	)
	return ctx, span
}

// TraceBusinessLogic traces a named business-logic step
func TraceBusinessLogic(ctx context.Context, step string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("app-landing").Start(ctx, "logic."+step)
	return ctx, span
}

// TraceInputValidation traces input validation for a field
func TraceInputValidation(ctx context.Context, rule, field string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("app-landing").Start(ctx, "validate."+rule,
		trace.WithAttributes(
			attribute.String("validation.field", field),
		),
	)
	return ctx, span
}

// TraceResponseSerialization traces response serialization
func TraceResponseSerialization(ctx context.Context, outcome string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer("app-landing").Start(ctx, "response.serialize",
		trace.WithAttributes(
			attribute.String("response.outcome", outcome),
		),
	)
	return ctx, span
}

// AddSpanAttribute adds a single attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	switch val := value.(type) {
	case string:
		span.SetAttributes(attribute.String(key, val))
	case int:
		span.SetAttributes(attribute.Int(key, val))
	case int64:
		span.SetAttributes(attribute.Int64(key, val))
	case bool:
		span.SetAttributes(attribute.Bool(key, val))
	case float64:
		span.SetAttributes(attribute.Float64(key, val))
	default:
		span.SetAttributes(attribute.String(key, "unknown_type"))
	}
}

// RecordErrorInSpan records an error with context attributes in a span
func RecordErrorInSpan(span trace.Span, err error, attributes map[string]interface{}) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	for k, v := range attributes {
		AddSpanAttribute(span, k, v)
	}
}

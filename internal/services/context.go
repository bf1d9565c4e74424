package services

import "context"

type contextKey string

const (
	operationIDKey   contextKey = "operation_id"
	operationKindKey contextKey = "operation_kind"
)

// WithOperationID annotates context with the correlation identifier minted
// for one CLI invocation.
func WithOperationID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, operationIDKey, id)
}

// OperationIDFromContext extracts the correlation identifier if present.
func OperationIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(operationIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithOperationKind annotates context with the operation name (convert,
// probe, download).
func WithOperationKind(ctx context.Context, kind string) context.Context {
	if kind == "" {
		return ctx
	}
	return context.WithValue(ctx, operationKindKey, kind)
}

// OperationKindFromContext returns the operation name if present.
func OperationKindFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(operationKindKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

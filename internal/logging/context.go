package logging

import (
	"context"
	"log/slog"

	"semitone/internal/services"
)

const (
	// FieldOperationID is the standardized structured logging key for
	// per-invocation correlation identifiers.
	FieldOperationID = "operation_id"
	// FieldOperation is the standardized structured logging key for the
	// operation name (convert, probe, download).
	FieldOperation = "operation"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := services.OperationIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldOperationID, id))
	}
	if kind, ok := services.OperationKindFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldOperation, kind))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from
// the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}

package services_test

import (
	"context"
	"testing"

	"semitone/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithOperationID(ctx, "op-123")
	ctx = services.WithOperationKind(ctx, "convert")

	if id, ok := services.OperationIDFromContext(ctx); !ok || id != "op-123" {
		t.Fatalf("unexpected operation id: %v %v", id, ok)
	}
	if kind, ok := services.OperationKindFromContext(ctx); !ok || kind != "convert" {
		t.Fatalf("unexpected operation kind: %v %v", kind, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithOperationID(ctx, "")
	ctx = services.WithOperationKind(ctx, "")
	if _, ok := services.OperationIDFromContext(ctx); ok {
		t.Fatal("expected no operation id value")
	}
	if _, ok := services.OperationKindFromContext(ctx); ok {
		t.Fatal("expected no operation kind value")
	}
}

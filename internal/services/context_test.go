package services_test

import (
	"context"
	"testing"

	"dumpdriver/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithSessionID(ctx, "9f1c")
	ctx = services.WithEngine(ctx, "redumper")
	ctx = services.WithStage(ctx, "verify")
	ctx = services.WithBasePath(ctx, "/dumps/game")

	if id, ok := services.SessionIDFromContext(ctx); !ok || id != "9f1c" {
		t.Fatalf("unexpected session id: %v %v", id, ok)
	}
	if engine, ok := services.EngineFromContext(ctx); !ok || engine != "redumper" {
		t.Fatalf("unexpected engine: %v %v", engine, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "verify" {
		t.Fatalf("unexpected stage: %v %v", stage, ok)
	}
	if base, ok := services.BasePathFromContext(ctx); !ok || base != "/dumps/game" {
		t.Fatalf("unexpected base path: %v %v", base, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithStage(ctx, "")
	ctx = services.WithEngine(ctx, "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected no stage value")
	}
	if _, ok := services.EngineFromContext(ctx); ok {
		t.Fatal("expected no engine value")
	}
}

package services

import "context"

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	engineKey    contextKey = "engine"
	stageKey     contextKey = "stage"
	basePathKey  contextKey = "base_path"
)

// WithSessionID annotates context with the CLI session identifier.
func WithSessionID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext extracts the session identifier if present.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, sessionIDKey)
}

// WithEngine annotates context with the dumping engine identifier.
func WithEngine(ctx context.Context, engine string) context.Context {
	if engine == "" {
		return ctx
	}
	return context.WithValue(ctx, engineKey, engine)
}

// EngineFromContext returns the engine identifier if present.
func EngineFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, engineKey)
}

// WithStage annotates context with the operation stage name.
func WithStage(ctx context.Context, stage string) context.Context {
	if stage == "" {
		return ctx
	}
	return context.WithValue(ctx, stageKey, stage)
}

// StageFromContext returns the stage name if present.
func StageFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, stageKey)
}

// WithBasePath annotates context with the base path of the dump being
// processed.
func WithBasePath(ctx context.Context, base string) context.Context {
	if base == "" {
		return ctx
	}
	return context.WithValue(ctx, basePathKey, base)
}

// BasePathFromContext returns the dump base path if present.
func BasePathFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, basePathKey)
}

func stringValue(ctx context.Context, key contextKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

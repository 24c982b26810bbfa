package logging

import (
	"context"
	"log/slog"
)

// sessionHandler stamps session_id on records that do not already carry one.
// Loggers derived through WithContext bind the ID themselves, so bound tracks
// whether WithAttrs has seen it.
type sessionHandler struct {
	next      slog.Handler
	sessionID string
	bound     bool
}

func newSessionHandler(next slog.Handler, sessionID string) slog.Handler {
	if next == nil {
		return NoopHandler{}
	}
	if sessionID == "" {
		return next
	}
	return &sessionHandler{next: next, sessionID: sessionID}
}

func (h *sessionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *sessionHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.bound || recordHasKey(record, FieldSessionID) {
		return h.next.Handle(ctx, record)
	}
	record.AddAttrs(slog.String(FieldSessionID, h.sessionID))
	return h.next.Handle(ctx, record)
}

func (h *sessionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &sessionHandler{
		next:      h.next.WithAttrs(attrs),
		sessionID: h.sessionID,
		bound:     h.bound || HasAttrKey(attrs, FieldSessionID),
	}
}

func (h *sessionHandler) WithGroup(name string) slog.Handler {
	return &sessionHandler{next: h.next.WithGroup(name), sessionID: h.sessionID, bound: h.bound}
}

func recordHasKey(record slog.Record, key string) bool {
	found := false
	record.Attrs(func(attr slog.Attr) bool {
		found = attr.Key == key
		return !found
	})
	return found
}

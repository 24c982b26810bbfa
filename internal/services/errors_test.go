package services_test

import (
	"errors"
	"strings"
	"testing"

	"dumpdriver/internal/history"
	"dumpdriver/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "archive", "write bundle", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"archive", "write bundle", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutMarkerIsTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected default detail, got %q", err)
	}
}

func TestFailureStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want history.Status
	}{
		{services.Wrap(services.ErrValidation, "generate", "parse", "invalid", nil), history.StatusReview},
		{services.Wrap(services.ErrUnsupported, "engine", "parse", "unknown engine", nil), history.StatusReview},
		{services.Wrap(services.ErrNotFound, "verify", "stat", "missing", nil), history.StatusReview},
		{services.Wrap(services.ErrTransient, "archive", "copy", "copy failed", errors.New("io")), history.StatusFailed},
		{nil, history.StatusFailed},
	}
	for _, tc := range cases {
		if got := services.FailureStatus(tc.err); got != tc.want {
			t.Fatalf("FailureStatus(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

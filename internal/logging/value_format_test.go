package logging

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		value slog.Value
		want  string
	}{
		{slog.StringValue("dic"), "dic"},
		{slog.StringValue("two words"), `"two words"`},
		{slog.StringValue(""), `""`},
		{slog.IntValue(42), "42"},
		{slog.BoolValue(true), "true"},
		{slog.DurationValue(1500 * time.Millisecond), "1.5s"},
		{slog.AnyValue(errors.New("bundle locked")), `"bundle locked"`},
		{slog.AnyValue([]string{"a.log", "b.dat"}), "a.log,b.dat"},
	}
	for _, tc := range cases {
		if got := formatValue(tc.value); got != tc.want {
			t.Fatalf("formatValue(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestAttrStringDoesNotQuote(t *testing.T) {
	if got := attrString(slog.StringValue("log retention")); got != "log retention" {
		t.Fatalf("attrString = %q", got)
	}
	if formatTimestamp(time.Time{}) != "" {
		t.Fatal("expected empty timestamp for zero time")
	}
}

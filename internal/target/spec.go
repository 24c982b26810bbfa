package target

import (
	"strconv"
	"strings"
)

// Options is the flat key/value option bag a caller supplies with a dump
// request. Keys are namespaced by engine, for example "dic.reread_count".
type Options map[string]string

// Bool reports whether key holds a truthy value. Absent keys are false.
func (o Options) Bool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(o[key])) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// Int returns the integer stored under key, or fallback when the key is
// absent or not a valid integer.
func (o Options) Int(key string, fallback int) int {
	raw := strings.TrimSpace(o[key])
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// String returns the trimmed value stored under key.
func (o Options) String(key string) string {
	return strings.TrimSpace(o[key])
}

// Clone returns an independent copy of the bag.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Spec describes one dumping intent.
type Spec struct {
	System     System
	Media      MediaType
	Drive      string
	Speed      int
	OutputPath string
	Options    Options
}

// HasSpeed reports whether a usable speed was requested. Non-positive values
// mean the engine should pick its own speed.
func (s Spec) HasSpeed() bool {
	return s.Speed > 0
}

// Option returns the option bag, never nil.
func (s Spec) Option() Options {
	if s.Options == nil {
		return Options{}
	}
	return s.Options
}

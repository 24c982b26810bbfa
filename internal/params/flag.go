package params

import (
	"regexp"
	"strconv"
	"strings"
)

// TriState records whether a flag was never touched, explicitly enabled, or
// explicitly disabled.
type TriState uint8

const (
	Unset TriState = iota
	On
	Off
)

func (t TriState) String() string {
	switch t {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unset"
	}
}

// Kind is the value kind a flag carries.
type Kind uint8

const (
	KindPresence Kind = iota
	KindInt
	KindString
)

// Style is the token layout a flag uses on the command line.
type Style uint8

const (
	// StyleSeparate places values in the tokens after the literal: "/c2 20",
	// "/ra 0 100".
	StyleSeparate Style = iota
	// StyleEquals joins the value to the literal: "--speed=8".
	StyleEquals
	// StylePositional is a bare argument identified by its position in the
	// command's layout.
	StylePositional
)

// Command is an engine base command. Implicit is the empty command used by
// engines with a single mode.
type Command string

// Implicit is the command of engines without an explicit command token.
const Implicit Command = ""

// Flag is one immutable flag definition.
type Flag struct {
	// Name is the literal token, or a label for positional arguments.
	Name  string
	Kind  Kind
	Style Style
	// MinValues and MaxValues bound how many values a separate-style flag
	// consumes. Presence flags take none; equals and positional flags take
	// exactly one.
	MinValues int
	MaxValues int
	// Choices restricts string values. Optional separate-style strings are
	// only consumed when the next token is one of the choices.
	Choices []string
	// Commands lists the commands the flag is legal for.
	Commands []Command
}

// Value is the typed payload of an enabled flag.
type Value struct {
	Ints   []int64
	Str    string
	Quoted bool
}

// IntValue builds a value holding the given integers.
func IntValue(values ...int64) Value {
	return Value{Ints: append([]int64(nil), values...)}
}

// StringValue builds a string value. Quoting is applied on output when the
// value contains whitespace.
func StringValue(value string) Value {
	return Value{Str: value}
}

// LegalFor reports whether the flag may be enabled for cmd.
func (f Flag) LegalFor(cmd Command) bool {
	for _, c := range f.Commands {
		if c == cmd {
			return true
		}
	}
	return false
}

var canonicalInt = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)

// parseCanonicalInt accepts only the decimal form Format would produce, so a
// parsed integer always formats back to the same token.
func parseCanonicalInt(token string) (int64, bool) {
	if !canonicalInt.MatchString(token) || token == "-0" {
		return 0, false
	}
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// unquote strips one pair of surrounding double quotes. Tokens with quotes
// anywhere else are rejected.
func unquote(token string) (string, bool, bool) {
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		inner := token[1 : len(token)-1]
		if strings.Contains(inner, `"`) {
			return "", false, false
		}
		return inner, true, true
	}
	if strings.Contains(token, `"`) {
		return "", false, false
	}
	return token, false, true
}

func quote(value string, quoted bool) string {
	if quoted || strings.ContainsAny(value, " \t") {
		return `"` + value + `"`
	}
	return value
}

// Accepts reports whether value is allowed for a choice-restricted flag.
// Flags without choices accept anything.
func (f Flag) Accepts(value string) bool {
	return len(f.Choices) == 0 || f.hasChoice(value)
}

func (f Flag) hasChoice(token string) bool {
	for _, c := range f.Choices {
		if c == token {
			return true
		}
	}
	return false
}

// Parse attempts to match the flag at tokens[pos]. On a match it returns the
// value and the position after every consumed token; otherwise ok is false
// and pos is returned unchanged.
func (f Flag) Parse(tokens []string, pos int) (Value, int, bool) {
	if pos < 0 || pos >= len(tokens) {
		return Value{}, pos, false
	}
	token := tokens[pos]
	switch f.Style {
	case StylePositional:
		value, ok := f.parseValue(token)
		if !ok {
			return Value{}, pos, false
		}
		return value, pos + 1, true
	case StyleEquals:
		if f.Kind == KindPresence {
			if token != f.Name {
				return Value{}, pos, false
			}
			return Value{}, pos + 1, true
		}
		raw, found := strings.CutPrefix(token, f.Name+"=")
		if !found {
			return Value{}, pos, false
		}
		value, ok := f.parseValue(raw)
		if !ok {
			return Value{}, pos, false
		}
		return value, pos + 1, true
	default:
		if token != f.Name {
			return Value{}, pos, false
		}
		return f.parseSeparate(tokens, pos+1, pos)
	}
}

func (f Flag) parseSeparate(tokens []string, next, start int) (Value, int, bool) {
	switch f.Kind {
	case KindPresence:
		return Value{}, next, true
	case KindInt:
		var ints []int64
		for len(ints) < f.MaxValues && next < len(tokens) {
			n, ok := parseCanonicalInt(tokens[next])
			if !ok {
				break
			}
			ints = append(ints, n)
			next++
		}
		if len(ints) < f.MinValues {
			return Value{}, start, false
		}
		return Value{Ints: ints}, next, true
	default:
		if next < len(tokens) && (f.MinValues > 0 || f.hasChoice(tokens[next])) {
			if len(f.Choices) > 0 && !f.hasChoice(tokens[next]) {
				return Value{}, start, false
			}
			str, quoted, ok := unquote(tokens[next])
			if !ok || str == "" {
				return Value{}, start, false
			}
			return Value{Str: str, Quoted: quoted}, next + 1, true
		}
		if f.MinValues > 0 {
			return Value{}, start, false
		}
		return Value{}, next, true
	}
}

func (f Flag) parseValue(raw string) (Value, bool) {
	switch f.Kind {
	case KindInt:
		n, ok := parseCanonicalInt(raw)
		if !ok {
			return Value{}, false
		}
		return Value{Ints: []int64{n}}, true
	case KindString:
		str, quoted, ok := unquote(raw)
		if !ok || str == "" {
			return Value{}, false
		}
		if len(f.Choices) > 0 && !f.hasChoice(str) {
			return Value{}, false
		}
		return Value{Str: str, Quoted: quoted}, true
	default:
		return Value{}, false
	}
}

// Format renders the flag with value as command-line tokens. It is the
// inverse of Parse.
func (f Flag) Format(value Value) []string {
	switch f.Style {
	case StylePositional:
		return []string{f.formatScalar(value)}
	case StyleEquals:
		if f.Kind == KindPresence {
			return []string{f.Name}
		}
		return []string{f.Name + "=" + f.formatScalar(value)}
	default:
		out := []string{f.Name}
		switch f.Kind {
		case KindInt:
			for _, n := range value.Ints {
				out = append(out, strconv.FormatInt(n, 10))
			}
		case KindString:
			if value.Str != "" {
				out = append(out, quote(value.Str, value.Quoted))
			}
		}
		return out
	}
}

func (f Flag) formatScalar(value Value) string {
	if f.Kind == KindInt {
		if len(value.Ints) == 0 {
			return ""
		}
		return strconv.FormatInt(value.Ints[0], 10)
	}
	return quote(value.Str, value.Quoted)
}

// complete reports whether value satisfies the flag's mandatory arity.
func (f Flag) complete(value Value) bool {
	switch f.Kind {
	case KindInt:
		lo, hi := f.MinValues, f.MaxValues
		if f.Style != StyleSeparate {
			lo, hi = 1, 1
		}
		return len(value.Ints) >= lo && len(value.Ints) <= hi
	case KindString:
		if f.Style != StyleSeparate || f.MinValues > 0 {
			return value.Str != ""
		}
		return true
	default:
		return true
	}
}

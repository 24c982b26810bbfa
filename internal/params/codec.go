package params

import (
	"fmt"
	"strings"
)

// Tokenize splits a command line on spaces. Double-quoted substrings stay
// inside a single token with their quotes preserved so the value can be
// re-quoted on output.
func Tokenize(raw string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range raw {
		switch {
		case r == '"':
			quoted = !quoted
			current.WriteRune(r)
			started = true
		case (r == ' ' || r == '\t') && !quoted:
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if quoted {
		return nil, fmt.Errorf("%w: unterminated quote", ErrParse)
	}
	if started {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}

// Generate renders the set as the exact command line: the command token,
// the command's positionals, enabled flags in emission order, then any
// trailing content.
func Generate(s *Set) (string, error) {
	if s == nil || s.grammar == nil {
		return "", fmt.Errorf("%w: empty parameter set", ErrUnbuildable)
	}
	var tokens []string
	if s.command != Implicit {
		tokens = append(tokens, string(s.command))
	}
	for _, name := range s.grammar.Layouts[s.command] {
		idx, ok := s.grammar.Index(name)
		if !ok {
			return "", fmt.Errorf("%w: positional %s undefined", ErrUnbuildable, name)
		}
		flag := s.grammar.Flags[idx]
		st := s.states[idx]
		if st.state != On || !flag.complete(st.value) {
			return "", fmt.Errorf("%w: %s requires %s", ErrUnbuildable, s.command, name)
		}
		tokens = append(tokens, flag.Format(st.value)...)
	}
	for _, idx := range s.order {
		flag := s.grammar.Flags[idx]
		st := s.states[idx]
		if !flag.complete(st.value) {
			return "", fmt.Errorf("%w: %s missing value", ErrUnbuildable, flag.Name)
		}
		tokens = append(tokens, flag.Format(st.value)...)
	}
	if trailing := strings.TrimSpace(s.Trailing); trailing != "" {
		tokens = append(tokens, trailing)
	}
	return strings.Join(tokens, " "), nil
}

// Parse builds a set from a raw command line. Any deviation from the grammar
// fails the whole parse; nothing is partially applied.
func Parse(g *Grammar, raw string) (*Set, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grammar", ErrParse)
	}
	tokens, err := Tokenize(raw)
	if err != nil {
		return nil, err
	}

	cmd := Implicit
	pos := 0
	if len(tokens) > 0 && Command(tokens[0]) != Implicit && g.HasCommand(Command(tokens[0])) {
		cmd = Command(tokens[0])
		pos = 1
	} else if !g.ImplicitAllowed {
		if len(tokens) == 0 {
			return nil, fmt.Errorf("%w: missing command", ErrParse)
		}
		return nil, fmt.Errorf("%w: unknown command %q", ErrParse, tokens[0])
	}

	set, err := NewSet(g, cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	for _, name := range g.Layouts[cmd] {
		idx, ok := g.Index(name)
		if !ok {
			return nil, fmt.Errorf("%w: positional %s undefined", ErrParse, name)
		}
		value, next, matched := g.Flags[idx].Parse(tokens, pos)
		if !matched {
			return nil, fmt.Errorf("%w: %s expects %s at position %d", ErrParse, cmd, name, pos)
		}
		set.states[idx] = flagState{state: On, value: value}
		pos = next
	}

	for pos < len(tokens) {
		idx, value, next, matched := matchFlag(g, tokens, pos)
		if !matched {
			if g.AllowTrailing {
				set.Trailing = strings.Join(tokens[pos:], " ")
				break
			}
			return nil, fmt.Errorf("%w: unexpected token %q", ErrParse, tokens[pos])
		}
		flag := g.Flags[idx]
		if !flag.LegalFor(cmd) {
			return nil, fmt.Errorf("%w: %w: %s for %q", ErrParse, ErrIllegalFlag, flag.Name, cmd)
		}
		if set.states[idx].state == On {
			return nil, fmt.Errorf("%w: duplicate flag %s", ErrParse, flag.Name)
		}
		set.states[idx] = flagState{state: On, value: value}
		set.order = append(set.order, idx)
		pos = next
	}
	return set, nil
}

func matchFlag(g *Grammar, tokens []string, pos int) (int, Value, int, bool) {
	for idx, flag := range g.Flags {
		if flag.Style == StylePositional {
			continue
		}
		if value, next, ok := flag.Parse(tokens, pos); ok {
			return idx, value, next, true
		}
	}
	return -1, Value{}, pos, false
}

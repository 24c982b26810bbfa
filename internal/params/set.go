package params

import "fmt"

type flagState struct {
	state TriState
	value Value
}

// Set is one invocation of an engine: the active command plus a tri-state
// and value per flag, indexed by the grammar's flag order. Enabled flags are
// emitted in the order they were enabled.
type Set struct {
	grammar *Grammar
	command Command
	states  []flagState
	order   []int
	// Trailing holds free-form content after the last recognized flag for
	// grammars that allow it.
	Trailing string
}

// NewSet returns an empty set for cmd.
func NewSet(g *Grammar, cmd Command) (*Set, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grammar", ErrUnknownCommand)
	}
	if !g.HasCommand(cmd) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return &Set{
		grammar: g,
		command: cmd,
		states:  make([]flagState, len(g.Flags)),
	}, nil
}

// Grammar returns the grammar the set was built for.
func (s *Set) Grammar() *Grammar {
	return s.grammar
}

// Command returns the active base command.
func (s *Set) Command() Command {
	return s.command
}

func (s *Set) lookup(name string) (int, error) {
	idx, ok := s.grammar.Index(name)
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrUnknownFlag, name)
	}
	return idx, nil
}

// Enable turns the named flag on with value. Enabling a flag that is not
// legal for the active command is rejected. Re-enabling an enabled flag
// replaces its value and keeps its position.
func (s *Set) Enable(name string, value Value) error {
	idx, err := s.lookup(name)
	if err != nil {
		return err
	}
	if !s.grammar.Legal(s.command, name) {
		return fmt.Errorf("%w: %s for %q", ErrIllegalFlag, name, s.command)
	}
	if flag := s.grammar.Flags[idx]; value.Str != "" && !flag.Accepts(value.Str) {
		return fmt.Errorf("%w: %s=%q", ErrInvalidValue, name, value.Str)
	}
	if s.states[idx].state != On && s.grammar.Flags[idx].Style != StylePositional {
		s.order = append(s.order, idx)
	}
	s.states[idx] = flagState{state: On, value: value}
	return nil
}

// Disable marks the named flag as explicitly off.
func (s *Set) Disable(name string) error {
	idx, err := s.lookup(name)
	if err != nil {
		return err
	}
	s.drop(idx)
	s.states[idx] = flagState{state: Off}
	return nil
}

// Clear returns the named flag to unset.
func (s *Set) Clear(name string) error {
	idx, err := s.lookup(name)
	if err != nil {
		return err
	}
	s.drop(idx)
	s.states[idx] = flagState{}
	return nil
}

func (s *Set) drop(idx int) {
	for i, o := range s.order {
		if o == idx {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// State returns the tri-state of the named flag. Unknown names are unset.
func (s *Set) State(name string) TriState {
	idx, ok := s.grammar.Index(name)
	if !ok {
		return Unset
	}
	return s.states[idx].state
}

// Value returns the value of the named flag when it is on.
func (s *Set) Value(name string) (Value, bool) {
	idx, ok := s.grammar.Index(name)
	if !ok || s.states[idx].state != On {
		return Value{}, false
	}
	return s.states[idx].value, true
}

// Int returns the first integer of the named flag when it is on.
func (s *Set) Int(name string) (int64, bool) {
	value, ok := s.Value(name)
	if !ok || len(value.Ints) == 0 {
		return 0, false
	}
	return value.Ints[0], true
}

// Text returns the string value of the named flag when it is on.
func (s *Set) Text(name string) (string, bool) {
	value, ok := s.Value(name)
	if !ok || value.Str == "" {
		return "", false
	}
	return value.Str, true
}

// Active returns the names of enabled non-positional flags in emission
// order.
func (s *Set) Active() []string {
	out := make([]string, 0, len(s.order))
	for _, idx := range s.order {
		out = append(out, s.grammar.Flags[idx].Name)
	}
	return out
}

package params

import "fmt"

// Grammar is the static command-line grammar of one engine.
type Grammar struct {
	// Commands lists the explicit base commands in display order.
	Commands []Command
	// ImplicitAllowed permits command lines without a command token.
	ImplicitAllowed bool
	// Flags is the ordered flag table, positionals included.
	Flags []Flag
	// Layouts names, per command, the positional flags that follow the
	// command token in order. Every listed positional is mandatory.
	Layouts map[Command][]string
	// AllowTrailing keeps unrecognized trailing tokens verbatim instead of
	// rejecting the command line.
	AllowTrailing bool
}

// HasCommand reports whether cmd is accepted by the grammar.
func (g *Grammar) HasCommand(cmd Command) bool {
	if cmd == Implicit {
		return g.ImplicitAllowed
	}
	for _, c := range g.Commands {
		if c == cmd {
			return true
		}
	}
	return false
}

// Index returns the position of the named flag in the flag table.
func (g *Grammar) Index(name string) (int, bool) {
	for i := range g.Flags {
		if g.Flags[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Lookup returns the named flag definition.
func (g *Grammar) Lookup(name string) (Flag, bool) {
	idx, ok := g.Index(name)
	if !ok {
		return Flag{}, false
	}
	return g.Flags[idx], true
}

func (g *Grammar) inLayout(cmd Command, name string) bool {
	for _, n := range g.Layouts[cmd] {
		if n == name {
			return true
		}
	}
	return false
}

// Legal reports whether the named flag may be enabled under cmd.
func (g *Grammar) Legal(cmd Command, name string) bool {
	flag, ok := g.Lookup(name)
	if !ok {
		return false
	}
	if flag.Style == StylePositional {
		return g.inLayout(cmd, name)
	}
	return flag.LegalFor(cmd)
}

// Support returns the command to legal flag table, excluding positionals.
// The implicit command appears when the grammar allows it.
func (g *Grammar) Support() map[Command][]string {
	commands := append([]Command(nil), g.Commands...)
	if g.ImplicitAllowed {
		commands = append(commands, Implicit)
	}
	out := make(map[Command][]string, len(commands))
	for _, cmd := range commands {
		names := []string{}
		for _, flag := range g.Flags {
			if flag.Style != StylePositional && flag.LegalFor(cmd) {
				names = append(names, flag.Name)
			}
		}
		out[cmd] = names
	}
	return out
}

// Validate checks the grammar's internal consistency. Engine packages call
// it from tests.
func (g *Grammar) Validate() error {
	seen := make(map[string]struct{}, len(g.Flags))
	for _, flag := range g.Flags {
		if flag.Name == "" {
			return fmt.Errorf("flag without name")
		}
		if _, dup := seen[flag.Name]; dup {
			return fmt.Errorf("duplicate flag %q", flag.Name)
		}
		seen[flag.Name] = struct{}{}
		if flag.Kind == KindPresence && flag.Style == StylePositional {
			return fmt.Errorf("positional %q must carry a value", flag.Name)
		}
		if flag.Kind == KindInt && flag.Style == StyleSeparate && flag.MaxValues < flag.MinValues {
			return fmt.Errorf("flag %q has inverted value bounds", flag.Name)
		}
		for _, cmd := range flag.Commands {
			if !g.HasCommand(cmd) {
				return fmt.Errorf("flag %q references unknown command %q", flag.Name, cmd)
			}
		}
	}
	for cmd, names := range g.Layouts {
		if !g.HasCommand(cmd) {
			return fmt.Errorf("layout for unknown command %q", cmd)
		}
		for _, name := range names {
			flag, ok := g.Lookup(name)
			if !ok || flag.Style != StylePositional {
				return fmt.Errorf("layout of %q references non-positional %q", cmd, name)
			}
		}
	}
	return nil
}

package params

import "errors"

var (
	// ErrParse marks a command line that does not match the grammar.
	ErrParse = errors.New("malformed parameters")
	// ErrIllegalFlag marks a flag that is not legal for the active command.
	ErrIllegalFlag = errors.New("flag not legal for command")
	// ErrUnknownFlag marks a flag name the grammar does not declare.
	ErrUnknownFlag = errors.New("unknown flag")
	// ErrInvalidValue marks a value outside a flag's declared choices.
	ErrInvalidValue = errors.New("invalid flag value")
	// ErrUnknownCommand marks a command the grammar does not declare.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnbuildable marks a set that cannot be rendered, typically an
	// enabled flag whose mandatory value is missing.
	ErrUnbuildable = errors.New("unbuildable command")
)

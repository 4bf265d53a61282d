package logicexpr

import (
	"fmt"
)

// ParseError is returned when a symbolic-expression tree does not match any
// grammar production.
type ParseError struct {
	Node   string
	Reason string
}

// NewParseError creates a new ParseError describing why the given rendered
// node could not be parsed.
func NewParseError(node string, reason string) error {
	return &ParseError{Node: node, Reason: reason}
}

func (e ParseError) Error() string {
	return fmt.Sprintf("cannot parse '%s': %s", e.Node, e.Reason)
}

// UnknownVariableError is returned when evaluation encounters a variable
// missing from the assignment.
type UnknownVariableError struct {
	VariableName string
}

// NewUnknownVariableError creates a new UnknownVariableError with the given
// variable name.
func NewUnknownVariableError(variableName string) error {
	return &UnknownVariableError{VariableName: variableName}
}

func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable: %s", e.VariableName)
}

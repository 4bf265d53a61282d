package logicexpr

import (
	"fmt"
)

// Latex renders the expression in LaTeX math notation: variables verbatim,
// \neg prefixed to negated operands, and binary operands wrapped in
// parentheses around \wedge, \vee, \rightarrow or \iff.
func (n *Node) Latex() string {
	switch n.Operator {
	case VARIABLE:
		return n.variableName
	case NOT:
		return fmt.Sprintf("\\neg %s", n.Left.Latex())
	case AND:
		return fmt.Sprintf("(%s \\wedge %s)", n.Left.Latex(), n.Right.Latex())
	case OR:
		return fmt.Sprintf("(%s \\vee %s)", n.Left.Latex(), n.Right.Latex())
	case IMPLIES:
		return fmt.Sprintf("(%s \\rightarrow %s)", n.Left.Latex(), n.Right.Latex())
	default:
		return fmt.Sprintf("(%s \\iff %s)", n.Left.Latex(), n.Right.Latex())
	}
}

// String renders the expression with unicode connectives, the same shape as
// Latex but readable in a terminal.
func (n *Node) String() string {
	switch n.Operator {
	case VARIABLE:
		return n.variableName
	case NOT:
		return fmt.Sprintf("¬%s", n.Left.String())
	case AND:
		return fmt.Sprintf("(%s ∧ %s)", n.Left.String(), n.Right.String())
	case OR:
		return fmt.Sprintf("(%s ∨ %s)", n.Left.String(), n.Right.String())
	case IMPLIES:
		return fmt.Sprintf("(%s → %s)", n.Left.String(), n.Right.String())
	default:
		return fmt.Sprintf("(%s ↔ %s)", n.Left.String(), n.Right.String())
	}
}

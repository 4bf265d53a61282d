package logicexpr

import (
	"fmt"
)

// Solve computes the truth value of the expression under the given
// assignment. Every variable in the expression must be present in the
// assignment; a missing one yields an UnknownVariableError.
//
// Both operands of a binary node are always evaluated, there is no
// short-circuiting. Truth tables list every subexpression's value, so a
// skipped operand would still have to be computed later anyway.
func (n *Node) Solve(assignment map[string]bool) (bool, error) {
	switch n.Operator {
	case VARIABLE:
		value, ok := assignment[n.variableName]
		if !ok {
			return false, NewUnknownVariableError(n.variableName)
		}
		return value, nil

	case NOT:
		result, err := n.Left.Solve(assignment)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil
	}

	leftResult, err := n.Left.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving left expression: %w", err)
	}
	rightResult, err := n.Right.Solve(assignment)
	if err != nil {
		return false, fmt.Errorf("failed solving right expression: %w", err)
	}

	switch n.Operator {
	case AND:
		return leftResult && rightResult, nil
	case OR:
		return leftResult || rightResult, nil
	case IMPLIES:
		return !leftResult || rightResult, nil
	case IFF:
		return (!leftResult || rightResult) && (!rightResult || leftResult), nil
	}

	return false, fmt.Errorf("unknown operator: %v", n.Operator)
}

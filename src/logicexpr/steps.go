package logicexpr

import (
	"sort"

	"github.com/samber/lo"
)

// Vars collects the set of distinct variable names referenced by the
// expression. The result has no defined order; see SortedVars.
func (n *Node) Vars() map[string]struct{} {
	switch n.Operator {
	case VARIABLE:
		return map[string]struct{}{n.variableName: {}}
	case NOT:
		return n.Left.Vars()
	default:
		vars := n.Left.Vars()
		for name := range n.Right.Vars() {
			vars[name] = struct{}{}
		}
		return vars
	}
}

// SortedVars returns the expression's variable names sorted
// lexicographically. Table rendering maps row-index bits to variables by
// position, so every caller that enumerates assignments needs this fixed
// order.
func (n *Node) SortedVars() []string {
	vars := lo.Keys(n.Vars())
	sort.Strings(vars)
	return vars
}

// Steps returns the sequence of distinct subexpressions computed en route to
// evaluating the expression, in left-then-right, child-before-parent order.
// The expression itself is always the last element. Duplicates are dropped by
// structural equality, so in (p * (- p)) the inner p appears once.
func (n *Node) Steps() []*Node {
	var steps []*Node

	switch n.Operator {
	case VARIABLE:
		// a variable is its own only step
	case NOT:
		steps = n.Left.Steps()
	default:
		steps = n.Left.Steps()
		for _, step := range n.Right.Steps() {
			if !lo.ContainsBy(steps, step.Equal) {
				steps = append(steps, step)
			}
		}
	}

	return append(steps, n)
}

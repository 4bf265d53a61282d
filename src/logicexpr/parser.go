package logicexpr

import (
	"github.com/eriklarko/truthtable/src/sexpr"
)

// notToken is the only unary marker the grammar knows.
const notToken = "-"

// Parse converts a symbolic-expression tree into a logic expression.
//
// The accepted grammar is
//
//	EXPR := atom | (- EXPR) | (EXPR * EXPR) | (EXPR + EXPR) | (EXPR => EXPR) | (EXPR <=> EXPR)
//
// Example usage:
//
//	tree, _ := sexpr.Parse("(p * (- q))")
//	expr, err := logicexpr.Parse(tree)
//	if err != nil {
//		fmt.Fatalf("failed to parse expression: %v", err)
//	}
//
// Any atom that is not an operator token is a variable, held verbatim. Parsing
// is all-or-nothing; the first malformed subexpression fails the whole parse.
func Parse(node sexpr.Node) (*Node, error) {
	if node.Kind == sexpr.AtomKind {
		return Variable(node.Atom), nil
	}

	switch len(node.List) {
	case 2:
		return parseNegation(node)
	case 3:
		return parseBinary(node)
	default:
		return nil, NewParseError(node.String(), "expected a variable, (- EXPR) or (EXPR OP EXPR)")
	}
}

func parseNegation(node sexpr.Node) (*Node, error) {
	marker := node.List[0]
	if marker.Kind != sexpr.AtomKind || marker.Atom != notToken {
		return nil, NewParseError(node.String(), "two-element lists must start with '-'")
	}

	operand, err := Parse(node.List[1])
	if err != nil {
		return nil, err
	}
	return Not(operand), nil
}

func parseBinary(node sexpr.Node) (*Node, error) {
	operator := node.List[1]
	if operator.Kind != sexpr.AtomKind {
		return nil, NewParseError(node.String(), "operator must be a single token")
	}

	left, err := Parse(node.List[0])
	if err != nil {
		return nil, err
	}
	right, err := Parse(node.List[2])
	if err != nil {
		return nil, err
	}

	switch operator.Atom {
	case "*":
		return And(left, right), nil
	case "+":
		return Or(left, right), nil
	case "=>":
		return Implies(left, right), nil
	case "<=>":
		return Iff(left, right), nil
	default:
		return nil, NewParseError(node.String(), "unknown operator '"+operator.Atom+"'")
	}
}

package logicexpr

type Operator int

const (
	VARIABLE Operator = iota
	NOT
	AND
	OR
	IMPLIES
	IFF
)

// Node is one propositional-logic expression. Compound nodes own their
// operand subtrees exclusively; a tree is never mutated after Parse builds
// it.
type Node struct {
	Operator Operator
	Left     *Node
	Right    *Node

	variableName string
}

// Variable creates a leaf node referencing the named variable.
func Variable(name string) *Node {
	return &Node{Operator: VARIABLE, variableName: name}
}

// Not creates the negation of the given expression.
func Not(operand *Node) *Node {
	return &Node{Operator: NOT, Left: operand}
}

// And creates the conjunction of the given expressions.
func And(left, right *Node) *Node {
	return &Node{Operator: AND, Left: left, Right: right}
}

// Or creates the disjunction of the given expressions.
func Or(left, right *Node) *Node {
	return &Node{Operator: OR, Left: left, Right: right}
}

// Implies creates the implication from antecedent to consequent.
func Implies(antecedent, consequent *Node) *Node {
	return &Node{Operator: IMPLIES, Left: antecedent, Right: consequent}
}

// Iff creates the biconditional of the given expressions.
func Iff(left, right *Node) *Node {
	return &Node{Operator: IFF, Left: left, Right: right}
}

// Equal reports whether two expressions have the same structure, comparing
// operators and operands recursively. Pointer identity is irrelevant; two
// independently parsed copies of the same expression are equal.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Operator != other.Operator {
		return false
	}

	switch n.Operator {
	case VARIABLE:
		return n.variableName == other.variableName
	case NOT:
		return n.Left.Equal(other.Left)
	default:
		return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
	}
}

package sexpr

import (
	"fmt"
	"strings"
)

type Kind int

const (
	AtomKind Kind = iota
	ListKind
)

// Node is one element of a parsed symbolic expression. It is either an atom
// holding a token verbatim, or an ordered list of child nodes.
type Node struct {
	Kind Kind
	Atom string
	List []Node
}

// Atom creates an atom node holding the given token.
func Atom(token string) Node {
	return Node{Kind: AtomKind, Atom: token}
}

// List creates a list node with the given children.
func List(children ...Node) Node {
	if children == nil {
		children = []Node{}
	}
	return Node{Kind: ListKind, List: children}
}

func (n Node) String() string {
	if n.Kind == AtomKind {
		return n.Atom
	}

	parts := make([]string, len(n.List))
	for i, child := range n.List {
		parts[i] = child.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Parse reads one complete symbolic expression from the given line.
// Example usage:
//
//	node, err := sexpr.Parse("(p * (- q))")
//	if err != nil {
//		fmt.Fatalf("failed to parse line: %v", err)
//	}
//	fmt.Println(node.List[0].Atom) // Output: p
func Parse(line string) (Node, error) {
	tokens := tokenize(line)
	if len(tokens) == 0 {
		return Node{}, fmt.Errorf("empty input")
	}

	node, rest, err := parseNode(tokens)
	if err != nil {
		return Node{}, err
	}
	if len(rest) > 0 {
		return Node{}, fmt.Errorf("unexpected trailing input starting at '%s'", rest[0])
	}

	return node, nil
}

// tokenize splits a line into parentheses and atom tokens. Atoms are maximal
// runs of characters that are neither whitespace nor parentheses.
func tokenize(line string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range line {
		switch r {
		case '(', ')':
			flush()
			tokens = append(tokens, string(r))
		case ' ', '\t', '\r', '\n':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}

// parseNode consumes one node from the front of the token stream and returns
// the tokens left over.
func parseNode(tokens []string) (Node, []string, error) {
	switch tokens[0] {
	case ")":
		return Node{}, nil, fmt.Errorf("unexpected ')'")
	case "(":
		children := []Node{}
		rest := tokens[1:]
		for {
			if len(rest) == 0 {
				return Node{}, nil, fmt.Errorf("unbalanced parentheses, missing ')'")
			}
			if rest[0] == ")" {
				return List(children...), rest[1:], nil
			}

			child, remaining, err := parseNode(rest)
			if err != nil {
				return Node{}, nil, err
			}
			children = append(children, child)
			rest = remaining
		}
	default:
		return Atom(tokens[0]), tokens[1:], nil
	}
}

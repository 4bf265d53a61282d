package sexpr_test

import (
	"testing"

	"github.com/eriklarko/truthtable/src/sexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtoms(t *testing.T) {
	tests := map[string]sexpr.Node{
		"p":        sexpr.Atom("p"),
		"hello":    sexpr.Atom("hello"),
		"  p  ":    sexpr.Atom("p"),
		"<=>":      sexpr.Atom("<=>"),
		"\tp\t":    sexpr.Atom("p"),
		"someVar1": sexpr.Atom("someVar1"),
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			node, err := sexpr.Parse(input)
			require.NoError(t, err)
			assert.Equal(t, expected, node)
		})
	}
}

func TestParseLists(t *testing.T) {
	tests := map[string]sexpr.Node{
		"()":      sexpr.List(),
		"(p)":     sexpr.List(sexpr.Atom("p")),
		"(- p)":   sexpr.List(sexpr.Atom("-"), sexpr.Atom("p")),
		"(p * q)": sexpr.List(sexpr.Atom("p"), sexpr.Atom("*"), sexpr.Atom("q")),
		"(p*q)":   sexpr.List(sexpr.Atom("p*q")),

		"((p + q) => r)": sexpr.List(
			sexpr.List(sexpr.Atom("p"), sexpr.Atom("+"), sexpr.Atom("q")),
			sexpr.Atom("=>"),
			sexpr.Atom("r"),
		),

		"(p <=> (- (q * r)))": sexpr.List(
			sexpr.Atom("p"),
			sexpr.Atom("<=>"),
			sexpr.List(
				sexpr.Atom("-"),
				sexpr.List(sexpr.Atom("q"), sexpr.Atom("*"), sexpr.Atom("r")),
			),
		),
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			node, err := sexpr.Parse(input)
			require.NoError(t, err)
			assert.Equal(t, expected, node)
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"(p",
		"p)",
		"(p * q))",
		"((p * q)",
		")",
		"p q",
		"(p) (q)",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := sexpr.Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestString(t *testing.T) {
	tests := []string{
		"p",
		"(- p)",
		"(p * q)",
		"((p + q) => r)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			node, err := sexpr.Parse(input)
			require.NoError(t, err)
			assert.Equal(t, input, node.String())
		})
	}
}

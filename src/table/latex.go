package table

import (
	"fmt"
	"strings"

	"github.com/eriklarko/truthtable/src/logicexpr"
)

// Latex renders a final-column truth table as a LaTeX tabular block: one
// column per sorted variable plus one for the whole expression. The exact
// byte layout is load-bearing; documents built on earlier output must not
// change when they are regenerated.
func Latex(expr *logicexpr.Node) (string, error) {
	vars := expr.SortedVars()

	columnSpec := "|L|"
	var header strings.Builder
	for _, name := range vars {
		columnSpec += "L|"
		fmt.Fprintf(&header, " %s &", name)
	}
	fmt.Fprintf(&header, "%s \\\\\n\\hline\n", expr.Latex())

	var rows strings.Builder
	for i := 0; i < rowCount(len(vars)); i++ {
		assignment := rowAssignment(vars, i)
		for _, name := range vars {
			if assignment[name] {
				rows.WriteString(" T &")
			} else {
				rows.WriteString(" F &")
			}
		}

		result, err := expr.Solve(assignment)
		if err != nil {
			return "", fmt.Errorf("failed to evaluate %s: %w", expr, err)
		}
		if result {
			rows.WriteString(" T \\\\\n")
		} else {
			rows.WriteString(" F \\\\\n")
		}
	}

	return fmt.Sprintf(
		"\\begin{tabular}{%s}\n%s%s\\end{tabular}",
		columnSpec, header.String(), rows.String(),
	), nil
}

// LatexSteps renders an all-steps truth table as a LaTeX tabular block: one
// column per distinct subexpression in evaluation order, the full expression
// last, with \hline between every row.
func LatexSteps(expr *logicexpr.Node) (string, error) {
	steps := expr.Steps()
	vars := expr.SortedVars()

	columnSpec := "|"
	header := strings.Builder{}
	header.WriteString("\\hline\n")
	for i, step := range steps {
		columnSpec += "c|"
		header.WriteString(step.Latex())
		if i == len(steps)-1 {
			header.WriteString("\\\\\n\\hline\n")
		} else {
			header.WriteString("&")
		}
	}

	var rows strings.Builder
	for i := 0; i < rowCount(len(vars)); i++ {
		assignment := rowAssignment(vars, i)
		for j, step := range steps {
			result, err := step.Solve(assignment)
			if err != nil {
				return "", fmt.Errorf("failed to evaluate step %s: %w", step, err)
			}
			if result {
				rows.WriteString(" T ")
			} else {
				rows.WriteString(" F ")
			}
			if j == len(steps)-1 {
				rows.WriteString("\\\\\n\\hline\n")
			} else {
				rows.WriteString("&")
			}
		}
	}

	return fmt.Sprintf(
		"\\begin{tabular}{%s}\n%s%s\\end{tabular}",
		columnSpec, header.String(), rows.String(),
	), nil
}

package table

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lipglosstable "github.com/charmbracelet/lipgloss/table"

	"github.com/eriklarko/truthtable/src/logicexpr"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
)

// Text renders a final-column truth table as a bordered terminal table, the
// interactive-friendly counterpart to Latex.
func Text(expr *logicexpr.Node) (string, error) {
	vars := expr.SortedVars()
	headers := append(append([]string{}, vars...), expr.String())

	return renderText(headers, vars, func(assignment map[string]bool) ([]string, error) {
		cells := make([]string, 0, len(vars)+1)
		for _, name := range vars {
			cells = append(cells, truth(assignment[name]))
		}

		result, err := expr.Solve(assignment)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", expr, err)
		}
		return append(cells, truth(result)), nil
	})
}

// TextSteps renders an all-steps truth table as a bordered terminal table,
// one column per distinct subexpression in evaluation order.
func TextSteps(expr *logicexpr.Node) (string, error) {
	steps := expr.Steps()
	vars := expr.SortedVars()

	headers := make([]string, len(steps))
	for i, step := range steps {
		headers[i] = step.String()
	}

	return renderText(headers, vars, func(assignment map[string]bool) ([]string, error) {
		cells := make([]string, 0, len(steps))
		for _, step := range steps {
			result, err := step.Solve(assignment)
			if err != nil {
				return nil, fmt.Errorf("failed to evaluate step %s: %w", step, err)
			}
			cells = append(cells, truth(result))
		}
		return cells, nil
	})
}

func renderText(headers []string, vars []string, buildRow func(map[string]bool) ([]string, error)) (string, error) {
	t := lipglosstable.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lipglosstable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)

	for i := 0; i < rowCount(len(vars)); i++ {
		cells, err := buildRow(rowAssignment(vars, i))
		if err != nil {
			return "", err
		}
		t.Row(cells...)
	}

	return t.String(), nil
}

func truth(value bool) string {
	if value {
		return "T"
	}
	return "F"
}

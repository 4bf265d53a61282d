package session

import (
	"fmt"
	"log/slog"

	"github.com/eriklarko/truthtable/src/config"
	"github.com/eriklarko/truthtable/src/logicexpr"
	"github.com/eriklarko/truthtable/src/sexpr"
	"github.com/eriklarko/truthtable/src/table"
)

// Session turns input lines into rendered truth tables. Each line is handled
// independently; a failed line leaves no state behind for the next one.
type Session struct {
	config *config.Config
}

func New(config *config.Config) *Session {
	return &Session{
		config: config,
	}
}

// HandleLine parses one line as a logic expression and renders its truth
// table in the session's mode and format. The returned error is the
// user-facing diagnostic for that line; the caller reports it and keeps
// reading.
func (s *Session) HandleLine(line string) (string, error) {
	tree, err := sexpr.Parse(line)
	if err != nil {
		return "", fmt.Errorf("can't parse line: %w", err)
	}

	expr, err := logicexpr.Parse(tree)
	if err != nil {
		return "", fmt.Errorf("can't parse line: %w", err)
	}

	numVars := len(expr.Vars())
	if numVars > s.config.MaxVariables {
		return "", fmt.Errorf(
			"expression has %d distinct variables, the table would have 2^%d rows; the cap is %d variables",
			numVars, numVars, s.config.MaxVariables,
		)
	}

	slog.Debug("rendering table",
		"expression", expr.String(),
		"variables", numVars,
		"steps", s.config.Steps,
		"format", s.config.Format,
	)

	rendered, err := s.render(expr)
	if err != nil {
		return "", fmt.Errorf("failed to render table for %s: %w", expr, err)
	}
	return rendered, nil
}

func (s *Session) render(expr *logicexpr.Node) (string, error) {
	if s.config.Format == config.FormatText {
		if s.config.Steps {
			return table.TextSteps(expr)
		}
		return table.Text(expr)
	}

	if s.config.Steps {
		return table.LatexSteps(expr)
	}
	return table.Latex(expr)
}

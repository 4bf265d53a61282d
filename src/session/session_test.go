package session_test

import (
	"testing"

	"github.com/eriklarko/truthtable/src/config"
	"github.com/eriklarko/truthtable/src/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(configure func(*config.Config)) *session.Session {
	cfg := config.DefaultConfig()
	if configure != nil {
		configure(cfg)
	}
	return session.New(cfg)
}

func TestHandleLineFinalColumn(t *testing.T) {
	s := newSession(func(c *config.Config) {
		c.Steps = false
	})

	rendered, err := s.HandleLine("(p * q)")
	require.NoError(t, err)

	expected := "\\begin{tabular}{|L|L|L|}\n" +
		" p & q &(p \\wedge q) \\\\\n" +
		"\\hline\n" +
		" T & T & T \\\\\n" +
		" F & T & F \\\\\n" +
		" T & F & F \\\\\n" +
		" F & F & F \\\\\n" +
		"\\end{tabular}"
	assert.Equal(t, expected, rendered)
}

func TestHandleLineSteps(t *testing.T) {
	s := newSession(nil) // steps mode is the default

	rendered, err := s.HandleLine("(- p)")
	require.NoError(t, err)

	expected := "\\begin{tabular}{|c|c|}\n" +
		"\\hline\n" +
		"p&\\neg p\\\\\n" +
		"\\hline\n" +
		" T & F \\\\\n" +
		"\\hline\n" +
		" F & T \\\\\n" +
		"\\hline\n" +
		"\\end{tabular}"
	assert.Equal(t, expected, rendered)
}

func TestHandleLineTextFormat(t *testing.T) {
	s := newSession(func(c *config.Config) {
		c.Format = config.FormatText
		c.Steps = false
	})

	rendered, err := s.HandleLine("(p + q)")
	require.NoError(t, err)

	assert.Contains(t, rendered, "(p ∨ q)")
	assert.NotContains(t, rendered, "tabular")
}

func TestHandleLineMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		"(p *",
		"(p *)",
		"(p % q)",
		"()",
		"(p * q) trailing",
	}

	s := newSession(nil)
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := s.HandleLine(input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "can't parse line")
		})
	}
}

func TestHandleLineRecoversAfterFailure(t *testing.T) {
	s := newSession(nil)

	_, err := s.HandleLine("(p *)")
	require.Error(t, err)

	// the next line is unaffected by the failed one
	rendered, err := s.HandleLine("(p * q)")
	require.NoError(t, err)
	assert.Contains(t, rendered, "\\begin{tabular}")
}

func TestHandleLineVariableCap(t *testing.T) {
	s := newSession(func(c *config.Config) {
		c.MaxVariables = 2
	})

	t.Run("at the cap", func(t *testing.T) {
		_, err := s.HandleLine("(p * q)")
		assert.NoError(t, err)
	})

	t.Run("over the cap", func(t *testing.T) {
		_, err := s.HandleLine("((p * q) + r)")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "3 distinct variables")
	})

	t.Run("repeated variables only count once", func(t *testing.T) {
		_, err := s.HandleLine("((p * q) + (q * p))")
		assert.NoError(t, err)
	})
}

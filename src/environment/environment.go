package environment

import (
	"os"

	"github.com/mattn/go-isatty"
)

var interactiveOverride *bool

// ForceSetIsInteractive allows overriding the interactive check, used by the
// --non-interactive CLI flag and by tests.
func ForceSetIsInteractive(value bool) {
	interactiveOverride = &value
}

// IsInteractive returns true if a user is typing expressions at a terminal,
// false when input is piped in or output is redirected. The prompt and the
// text table format only make sense in the interactive case.
func IsInteractive() bool {
	if interactiveOverride != nil {
		return *interactiveOverride
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

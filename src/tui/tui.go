package tui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red

type TUI struct {
	input  io.Reader
	output io.Writer
}

func New() *TUI {
	return &TUI{
		input:  os.Stdin,
		output: os.Stdout,
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = input
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// Run reads lines from the input until it ends, handing each one to handle
// and printing the result. A failed line prints the error as a one-line
// diagnostic and the loop moves on; one bad expression never ends the run.
func (t *TUI) Run(prompt string, showPrompt bool, handle func(line string) (string, error)) error {
	scanner := bufio.NewScanner(t.input)
	for {
		if showPrompt {
			fmt.Fprint(t.output, prompt)
		}
		if !scanner.Scan() {
			break
		}

		result, err := handle(scanner.Text())
		if err != nil {
			fmt.Fprintln(t.output, errorStyle.Render(err.Error()))
			continue
		}
		fmt.Fprintln(t.output, result)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

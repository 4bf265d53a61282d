package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eriklarko/truthtable/src/config"
	"github.com/eriklarko/truthtable/src/environment"
	"github.com/eriklarko/truthtable/src/session"
	"github.com/eriklarko/truthtable/src/tui"
)

const defaultConfigPath = ".truthtable.yaml"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath     string
		noSteps        bool
		format         string
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "truthtable",
		Short: "Render truth tables for propositional-logic expressions",
		Long: `truthtable reads parenthesized prefix-notation expressions, one per line,
and prints a truth table for each.

Operators: (a * b) and, (a + b) or, (a => b) implies, (a <=> b) iff, (- a) not.
Any other token names a variable.

By default every distinct subexpression gets its own column; --no-steps
renders only the variable columns and the final result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, fromFile, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			if nonInteractive {
				environment.ForceSetIsInteractive(false)
			}
			if cmd.Flags().Changed("no-steps") {
				cfg.Steps = !noSteps
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			} else if !fromFile && environment.IsInteractive() {
				// latex in a terminal session is hard to read; only emit it
				// by default when output is being captured
				cfg.Format = config.FormatText
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			ui := tui.New()
			return ui.Run(cfg.Prompt, environment.IsInteractive(), session.New(cfg).HandleLine)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "path to the config file")
	cmd.Flags().BoolVar(&noSteps, "no-steps", false, "render only the final result column")
	cmd.Flags().StringVar(&format, "format", config.FormatLatex, "table output format, 'latex' or 'text'")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "never prompt, even on a terminal")

	return cmd
}

// loadConfig reads the config file at path, falling back to defaults when it
// does not exist. The second return value reports whether a file was found.
func loadConfig(path string) (*config.Config, bool, error) {
	cfg, err := config.LoadConfig(path)
	if os.IsNotExist(err) {
		slog.Debug("no config file found, using defaults", "path", path)
		return config.DefaultConfig(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, true, nil
}

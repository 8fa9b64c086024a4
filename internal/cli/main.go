package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/forPelevin/argseg/internal/types"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	if err := NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRoot builds the command tree.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "argseg",
		Short:        "Window transcripts into sentence segments and select argumentative ones",
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(cmd, fmt.Sprintf("unknown command %q", args[0]))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageError(cmd, "a subcommand is required")
		},
	}
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError(c, err.Error())
	})
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().String("config", "", "Config file (yaml, json or toml)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	root.PersistentFlags().String("log-format", "", "Log format: text or json")

	process := &cobra.Command{
		Use:          "process <input> <output> [window_size] [step_size]",
		Short:        "Split each document into overlapping sentence windows",
		Args:         rangeArgs(2, 4),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args)
		},
	}
	process.Flags().StringSlice("abbreviations", nil, "Abbreviations that never end a sentence")

	sel := &cobra.Command{
		Use:          "select <input> <output> [window_size]",
		Short:        "Resolve overlapping argument windows into segments",
		Args:         rangeArgs(2, 3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, args)
		},
	}
	sel.Flags().String("overlap-policy", "", "Overlap policy: first or merge")
	sel.Flags().String("index-mode", "", "Window position source: auto, row or explicit")

	root.AddCommand(process, sel)
	return root
}

func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			return usageError(cmd, fmt.Sprintf("accepts between %d and %d arg(s), received %d", lo, hi, len(args)))
		}
		return nil
	}
}

func usageError(cmd *cobra.Command, msg string) error {
	lines := []string{cmd.UseLine()}
	if cmd.HasAvailableSubCommands() {
		lines = lines[:0]
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				lines = append(lines, c.UseLine())
			}
		}
	}
	return fmt.Errorf("%w: %s\nusage:\n  %s", types.ErrInvalidArguments, msg, strings.Join(lines, "\n  "))
}

package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/aretw0/crib"
	"github.com/spf13/cobra"
)

// argsTerminator is put in front of argv so that cobra never resolves a
// filter such as "completion" or "__complete" as one of its own commands.
// RunE drops it again.
const argsTerminator = "--"

// newRootCmd builds the only command. Flag parsing is disabled: every
// argument is a filter, and -h/--help are recognised by the renderer itself
// so that "-h foo" stays a pair of filters.
func newRootCmd(program string) *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:   program + " [filters]",
		Short: "Print your notes, filtered by case-insensitive patterns",
		Long: heredoc.Doc(`
			Prints every note as two aligned columns, alternating colors per row.

			Each argument is a case-insensitive regular expression. A note is shown
			only when every expression matches its key, its value or one of its tags.

			Environment:
			  CRIB_NOTES    notes file or directory (default: built-in notes)
			  CRIB_PATTERN  include pattern for directories
			  CRIB_STRICT   reject unknown fields in notes files
			  CRIB_VERBOSE  debug logging on stderr
		`),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg = loadConfig()

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && args[0] == argsTerminator {
				args = args[1:]
			}
			slog.Debug("starting", "version", strings.TrimSpace(crib.Version), "notes", cfg.Notes, "args", len(args))

			return crib.Run(cmd.Context(), cmd.OutOrStdout(), cfg.Notes, args,
				crib.WithLogger(slog.Default()),
				crib.WithProgramName(program),
				crib.WithPattern(cfg.Pattern),
				crib.WithStrict(cfg.Strict),
			)
		},
	}

	return cmd
}

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute(ctx context.Context) {
	program := filepath.Base(os.Args[0])
	if err := execute(ctx, newRootCmd(program), os.Args[1:]); err != nil {
		fatal("Error", err)
	}
}

// execute runs cmd with args passed through untouched as filters.
func execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{argsTerminator}, args...))
	return cmd.ExecuteContext(ctx)
}

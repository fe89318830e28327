package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repowarden/internal/hook"
)

// addHookCommands exposes every registered check as a subcommand with one
// flag per check option. It runs from Execute, after all hook package
// inits have populated the registry.
func addHookCommands() {
	for _, h := range hook.List() {
		rootCmd.AddCommand(newHookCommand(h))
	}
}

func newHookCommand(h hook.Hook) *cobra.Command {
	cmd := &cobra.Command{
		Use:   h.ID() + " [files...]",
		Short: h.Title(),
		Long: h.Description() + `

Positional arguments name the repo-relative files to check, the way
pre-commit passes changed files. File-scoped checks report SKIPPED
without arguments; repository-scoped checks inspect the whole tree.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runHookCommand(cmd, h, args))
		},
	}

	if ch, ok := h.(hook.ConfigurableHook); ok {
		for _, opt := range ch.Options() {
			cmd.Flags().String(opt.Name, opt.Default, opt.Description)
		}
	}

	return cmd
}

func runHookCommand(cmd *cobra.Command, h hook.Hook, args []string) int {
	if ch, ok := h.(hook.ConfigurableHook); ok {
		opts := make(map[string]string)
		for _, opt := range ch.Options() {
			v, err := cmd.Flags().GetString(opt.Name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return 3
			}
			opts[opt.Name] = v
		}
		if err := ch.Configure(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 3
		}
	}

	cfg.Target.Files = args
	return runHook(context.Background(), h, cfg)
}

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"repowarden/internal/hook"
)

var hooksListQuiet bool
var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Discover and inspect checks",
	Long: `Discover RepoWarden checks.

This command group helps you find out which checks exist and what each
check inspects. Every check is also a subcommand of its own (see
"repowarden --help").

Examples:
  # List all available checks
  repowarden hooks list
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var hooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available checks",
	Long: `List all checks registered in this build.

Checks are sorted by hook ID.

Examples:
  repowarden hooks list

Output:
  A vertical list of checks:
    ----------------------------------------
    HOOK: {ID}
    ----------------------------------------
    {TITLE}
    {DESCRIPTION}
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, h := range hook.List() {
			if hooksListQuiet {
				fmt.Fprintln(cmd.OutOrStdout(), h.ID())
			} else {
				printHook(cmd.OutOrStdout(), h)
			}
		}
		return nil
	},
}

var hooksShowCmd = &cobra.Command{
	Use:   "show [hook-id]",
	Short: "Show details of a specific check",
	Long: `Show details of a specific check by its hook ID.

Examples:
  repowarden hooks show check-ownership
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := hook.Get(args[0])
		if err != nil {
			return err
		}
		printHook(cmd.OutOrStdout(), h)
		return nil
	},
}

func printHook(w io.Writer, h hook.Hook) {
	bold := color.New(color.Bold)
	fmt.Fprintln(w, "----------------------------------------")
	bold.Fprintf(w, "HOOK: %s\n", h.ID())
	fmt.Fprintln(w, "----------------------------------------")
	fmt.Fprintln(w, h.Title())
	fmt.Fprintln(w, h.Description())

	if ch, ok := h.(hook.ConfigurableHook); ok {
		opts := ch.Options()
		if len(opts) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Options:")
			for _, opt := range opts {
				def := opt.Default
				if def == "" {
					def = "\"\""
				}
				fmt.Fprintf(w, "  %s\n", opt.Name)
				fmt.Fprintf(w, "    Description: %s\n", opt.Description)
				fmt.Fprintf(w, "    Default:     %s\n", def)
			}
		}
	}
	fmt.Fprintln(w)
}

func init() {
	rootCmd.AddCommand(hooksCmd)
	hooksCmd.AddCommand(hooksListCmd)
	hooksListCmd.Flags().BoolVarP(&hooksListQuiet, "quiet", "q", false, "Only print hook IDs")
	hooksCmd.AddCommand(hooksShowCmd)
}

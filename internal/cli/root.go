package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repowarden/internal/config"
	"repowarden/internal/flags"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

var cfg = config.New()

var rootCmd = &cobra.Command{
	Use:   "repowarden",
	Short: "Run repository hygiene checks on a local working tree",
	Long: `RepoWarden runs repository hygiene checks on a local working tree.

Every check is its own subcommand, so pre-commit can invoke it directly
with the list of changed files as positional arguments. File-scoped
checks report SKIPPED when no files are given; repository-scoped checks
(check-ownership, check-excludes) inspect the whole tree regardless.

Examples:
	# Show available commands and global flags
	repowarden --help

	# Validate the CODEOWNERS rule file
	repowarden check-ownership --codeowners-owner @org/release-eng

	# Run the TODO check on the files pre-commit passes
	repowarden check-todo-refs src/main.go src/util.go

	# List checks
	repowarden hooks list

	# Print build info
	repowarden version

Output:
	By default, commands write human-readable output to stdout.
	Structured output is available via --format and --out.

Exit codes:
	0 = check passed
	1 = violations found
	3 = fatal error (check did not run)`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.Target.RepoDir, flags.FlagRepoDir, ".", "Repository root to inspect")
	pf.StringVar(&cfg.Output.Format, flags.FlagFormat, "text", "Console output format: text|json|ndjson")
	pf.StringVar(&cfg.Output.Out, flags.FlagOut, "", "Write structured output to this path")
	pf.StringVar(&cfg.Output.OutFormat, flags.FlagOutFormat, "", "Structured output format for --out: json|ndjson (default: inferred from file extension)")
	pf.BoolVar(&cfg.Output.QuietPass, flags.FlagQuietPass, false, "Suppress PASS results on the console")
	pf.BoolVar(&cfg.Output.NoColor, flags.FlagNoColor, false, "Disable colored output")
	pf.BoolVar(&cfg.Runtime.Verbose, flags.FlagVerbose, false, "Enable verbose diagnostics")
}

func SetBuildInfo(version, commit, date string) {
	if version != "" {
		buildVersion = version
	}
	if commit != "" {
		buildCommit = commit
	}
	if date != "" {
		buildDate = date
	}

	rootCmd.Version = fmt.Sprintf("%s (%s) %s", buildVersion, buildCommit, buildDate)
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func BuildInfo() (version, commit, date string) {
	return buildVersion, buildCommit, buildDate
}

func Execute() {
	addHookCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
}

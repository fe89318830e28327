package flags

// Package flags defines canonical CLI flag names shared across the CLI.
// Keeping these as constants helps avoid drift between Cobra flag wiring
// and other code paths that need to reference flags (e.g. hook option
// plumbing).
// IMPORTANT: These are flag *names* without leading dashes.
// Example usage:
//
//	cmd.Flags().StringVar(&cfg.Target.RepoDir, flags.FlagRepoDir, ".", "...")
//	arg := "--" + flags.FlagRepoDir
const (
	// Target
	FlagRepoDir = "repo-dir"

	// Ownership check
	FlagCodeownersFile  = "codeowners-file"
	FlagCodeownersOwner = "codeowners-owner"
	FlagTrackedOnly     = "tracked-only"

	// Check tuning
	FlagMaxLines   = "max-lines"
	FlagConfigFile = "config-file"

	// find-owner
	FlagLevel = "level"

	// Output
	FlagFormat    = "format"
	FlagOut       = "out"
	FlagOutFormat = "out-format"
	FlagQuietPass = "quiet-pass"
	FlagNoColor   = "no-color"

	// Runtime
	FlagVerbose = "verbose"
)

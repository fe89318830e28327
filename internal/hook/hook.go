package hook

import "context"

// Request carries the inputs a check receives from the command line.
type Request struct {
	// RepoDir is the repository root the check inspects.
	RepoDir string
	// Files holds the repo-relative paths the hook runner passed on the
	// command line. Nil means no explicit file list was given.
	Files []string
	// Verbose enables extra diagnostic detail on checks that support it.
	Verbose bool
}

type Hook interface {
	ID() string
	Title() string
	Description() string

	// Run inspects the repository described by req. An error is returned
	// only for environmental failures (unreadable config, traversal
	// errors); check verdicts belong in the Result.
	Run(ctx context.Context, req Request) (Result, error)
}

type Option struct {
	Name        string
	Description string
	Default     string
}

// ConfigurableHook is a Hook with tunable options. The CLI surfaces
// each option as a flag on the hook's subcommand.
type ConfigurableHook interface {
	Hook
	Options() []Option
	Configure(opts map[string]string) error
}

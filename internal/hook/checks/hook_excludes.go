package checks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"repowarden/internal/flags"
	"repowarden/internal/hook"
	"repowarden/internal/precommit"
	"repowarden/internal/repo"
)

type ExcludesHook struct {
	configFile string
}

func (h *ExcludesHook) ID() string {
	return "check-excludes"
}

func (h *ExcludesHook) Title() string {
	return "Pre-Commit Exclude Hygiene"
}

func (h *ExcludesHook) Description() string {
	return "Keeps the exclude lists in the pre-commit configuration honest.\n" +
		"Literal exclude entries that name no existing file or directory,\n" +
		"and entries duplicated within one hook, are reported so the\n" +
		"configuration does not accumulate dead weight.\n\n" +
		"Options:\n" +
		"- config-file: pre-commit configuration path relative to the repository root\n\n" +
		"Examples:\n" +
		"  repowarden check-excludes\n" +
		"  repowarden check-excludes --config-file ci/.pre-commit-config.yaml"
}

func (h *ExcludesHook) Options() []hook.Option {
	return []hook.Option{
		{
			Name:        flags.FlagConfigFile,
			Description: "Pre-commit configuration path relative to the repository root.",
			Default:     precommit.ConfigFile,
		},
	}
}

func (h *ExcludesHook) Configure(opts map[string]string) error {
	h.configFile = precommit.ConfigFile
	if v := strings.TrimSpace(opts[flags.FlagConfigFile]); v != "" {
		h.configFile = repo.Normalize(v)
	}
	return nil
}

func (h *ExcludesHook) Run(ctx context.Context, req hook.Request) (hook.Result, error) {
	cfg, err := precommit.Load(filepath.Join(req.RepoDir, filepath.FromSlash(h.configFile)))
	if err != nil {
		return hook.Result{}, err
	}

	tree, err := repo.Walk(req.RepoDir)
	if err != nil {
		return hook.Result{}, err
	}

	hooks := cfg.HooksWithExcludes()

	var findings []hook.Finding
	for _, hk := range hooks {
		for _, entry := range hk.FindMissing(tree) {
			findings = append(findings, hook.Finding{
				Path:    h.configFile,
				Message: fmt.Sprintf("hook %s: non-existing exclusion %q; remove it", hk.ID, entry),
			})
		}
	}
	for _, hk := range hooks {
		for _, entry := range hk.FindDuplicates() {
			findings = append(findings, hook.Finding{
				Path:    h.configFile,
				Message: fmt.Sprintf("hook %s: duplicate exclusion %q; remove the repetition", hk.ID, entry),
			})
		}
	}

	if len(findings) == 0 {
		return hook.PassResult(req.RepoDir, h.ID()), nil
	}
	return hook.FailResultWithFindings(req.RepoDir, h.ID(),
		fmt.Sprintf("stale exclusions in %s", h.configFile), findings), nil
}

func init() {
	hook.Register(&ExcludesHook{})
}

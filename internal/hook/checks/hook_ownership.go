package checks

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"repowarden/internal/flags"
	"repowarden/internal/hook"
	"repowarden/internal/ownership"
	"repowarden/internal/repo"
)

type OwnershipHook struct {
	codeownersFile string
	owner          string
	trackedOnly    bool
}

func (h *OwnershipHook) ID() string {
	return "check-ownership"
}

func (h *OwnershipHook) Title() string {
	return "CODEOWNERS Consistency"
}

func (h *OwnershipHook) Description() string {
	return "Validates the CODEOWNERS rule file against the repository tree.\n\n" +
		"Checks performed:\n" +
		"- every rule matches at least one existing file or directory\n" +
		"- no pattern is declared twice\n" +
		"- no rule repeats the owners of a more generic enclosing rule\n" +
		"- the designated codeowners-owner owns the rule file and nothing else\n\n" +
		"Rule file locations tried when codeowners-file is not set:\n" +
		"- .github/CODEOWNERS\n" +
		"- CODEOWNERS\n\n" +
		"Options:\n" +
		"- codeowners-file: rule file path relative to the repository root\n" +
		"- codeowners-owner: team or person that should own only the rule file\n" +
		"- tracked-only: restrict the snapshot to git-tracked files\n\n" +
		"Examples:\n" +
		"  # Validate rule structure only\n" +
		"  repowarden check-ownership --repo-dir .\n\n" +
		"  # Also enforce the designated-owner policy\n" +
		"  repowarden check-ownership --codeowners-owner @org/release-eng\n\n" +
		"  # Ignore build artifacts and other untracked files\n" +
		"  repowarden check-ownership --tracked-only"
}

func (h *OwnershipHook) Options() []hook.Option {
	return []hook.Option{
		{
			Name:        flags.FlagCodeownersFile,
			Description: "Rule file path relative to the repository root. Empty tries .github/CODEOWNERS, then CODEOWNERS.",
			Default:     "",
		},
		{
			Name:        flags.FlagCodeownersOwner,
			Description: "Team or person that should own only the rule file itself. Empty skips the designated-owner policy.",
			Default:     "",
		},
		{
			Name:        flags.FlagTrackedOnly,
			Description: "Build the repository snapshot from git-tracked files instead of walking the filesystem.",
			Default:     "false",
		},
	}
}

func (h *OwnershipHook) Configure(opts map[string]string) error {
	h.codeownersFile = strings.TrimSpace(opts[flags.FlagCodeownersFile])
	h.owner = strings.TrimSpace(opts[flags.FlagCodeownersOwner])
	h.trackedOnly = false

	if v := strings.TrimSpace(opts[flags.FlagTrackedOnly]); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid value for tracked-only: %q (must be true|false)", v)
		}
		h.trackedOnly = b
	}
	return nil
}

func (h *OwnershipHook) Run(ctx context.Context, req hook.Request) (hook.Result, error) {
	rulesFile, err := ownership.LocateRulesFile(req.RepoDir, h.codeownersFile)
	if err != nil {
		return hook.Result{}, err
	}

	rs, err := ownership.ParseFile(filepath.Join(req.RepoDir, filepath.FromSlash(rulesFile)))
	if err != nil {
		return hook.Result{}, err
	}

	tree, err := h.snapshot(ctx, req.RepoDir)
	if err != nil {
		return hook.Result{}, err
	}

	report := ownership.Validate(rs, tree)

	notice := ""
	if h.owner == "" {
		notice = "no codeowners-owner configured; designated-owner policy skipped"
	} else {
		scope := policyScope(req.Files, rulesFile)
		report.OwnerViolations = ownership.CheckDesignatedOwner(rs, tree, rulesFile, h.owner, scope)
	}

	if report.Empty() {
		res := hook.PassResultWithMessage(req.RepoDir, h.ID(), notice)
		if req.Verbose {
			res.Metadata = map[string]any{
				"rules":         rs.Len(),
				"paths_scanned": tree.Len(),
			}
		}
		return res, nil
	}

	message := fmt.Sprintf("errors found in %s", rulesFile)
	return hook.FailResultWithFindings(req.RepoDir, h.ID(), message, ownershipFindings(rulesFile, report)), nil
}

func (h *OwnershipHook) snapshot(ctx context.Context, repoDir string) (*repo.Tree, error) {
	if h.trackedOnly {
		files, err := repo.TrackedFiles(ctx, repoDir)
		if err != nil {
			return nil, err
		}
		return repo.FromPaths(repoDir, files), nil
	}
	return repo.Walk(repoDir)
}

// policyScope narrows the designated-owner scan to the changed files,
// except when the rule file itself changed: an edit there can reassign
// any path, so the whole tree is rescanned.
func policyScope(changed []string, rulesFile string) []string {
	if len(changed) == 0 {
		return nil
	}
	for _, f := range changed {
		if repo.Normalize(f) == rulesFile {
			return nil
		}
	}
	return changed
}

func ownershipFindings(rulesFile string, report *ownership.Report) []hook.Finding {
	var findings []hook.Finding

	for _, r := range report.Dangling {
		findings = append(findings, hook.Finding{
			Path: rulesFile,
			Line: r.Line,
			Message: fmt.Sprintf("pattern %q matches no file or directory; remove the rule if no longer needed",
				r.Pattern),
		})
	}
	for _, d := range report.Duplicates {
		msg := fmt.Sprintf("pattern %q is declared %d times (lines %s); remove the repetitions",
			d.Pattern, len(d.Lines), joinLines(d.Lines))
		if !d.SameOwners {
			msg = fmt.Sprintf("pattern %q is declared %d times (lines %s) with different owners; remove the repetitions",
				d.Pattern, len(d.Lines), joinLines(d.Lines))
		}
		findings = append(findings, hook.Finding{Path: rulesFile, Line: d.Lines[0], Message: msg})
	}
	for _, r := range report.Redundant {
		findings = append(findings, hook.Finding{
			Path: rulesFile,
			Line: r.Rule.Line,
			Message: fmt.Sprintf("pattern %q is redundant; the more generic pattern %q on line %d has the same owners",
				r.Rule.Pattern, r.Ancestor.Pattern, r.Ancestor.Line),
		})
	}
	for _, v := range report.OwnerViolations {
		if v.NotOwned {
			findings = append(findings, hook.Finding{
				Path:    rulesFile,
				Message: fmt.Sprintf("%s must be owned by %s", v.Path, v.Owner),
			})
			continue
		}
		msg := fmt.Sprintf("should not be owned by %s; find a different owner", v.Owner)
		if v.Rule != nil {
			msg = fmt.Sprintf("should not be owned by %s (rule %q, %s:%d); find a different owner",
				v.Owner, v.Rule.Pattern, rulesFile, v.Rule.Line)
		}
		findings = append(findings, hook.Finding{Path: v.Path, Message: msg})
	}
	return findings
}

func joinLines(lines []int) string {
	parts := make([]string, len(lines))
	for i, n := range lines {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

func init() {
	hook.Register(&OwnershipHook{})
}

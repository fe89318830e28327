package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"repowarden/internal/hook"
	"repowarden/internal/repo"
)

const (
	bashOptions = "set -euxo pipefail"
	shOptions   = "set -eux"
	nolintLine  = "# nolint(set_options)"
)

var (
	bashShebang = regexp.MustCompile(`^#!.*bash`)
	shShebang   = regexp.MustCompile(`^#!.*sh`)
)

type ShellOptionsHook struct{}

func (h *ShellOptionsHook) ID() string {
	return "check-shell-options"
}

func (h *ShellOptionsHook) Title() string {
	return "Shell Strict Options"
}

func (h *ShellOptionsHook) Description() string {
	return "Requires shell scripts to enable strict option handling.\n" +
		"Bash scripts (bash shebang or .bash suffix) must contain a\n" +
		"'set -euxo pipefail' line, sh scripts a 'set -eux' line. A line\n" +
		"'# nolint(set_options)' waives the requirement for one file.\n" +
		"Non-executable files without a shell shebang are ignored;\n" +
		"executable files with an unrecognized shebang fail. Pair this\n" +
		"hook with check-executables-have-shebangs.\n\n" +
		"Examples:\n" +
		"  repowarden check-shell-options scripts/deploy.sh tools/run.bash"
}

func (h *ShellOptionsHook) Run(ctx context.Context, req hook.Request) (hook.Result, error) {
	if len(req.Files) == 0 {
		return hook.SkippedResult(req.RepoDir, h.ID(), "no files to check"), nil
	}

	var findings []hook.Finding
	for _, f := range req.Files {
		rel := repo.Normalize(f)
		abs := filepath.Join(req.RepoDir, filepath.FromSlash(rel))
		data, err := os.ReadFile(abs)
		if err != nil {
			return hook.Result{}, fmt.Errorf("reading %s: %w", f, err)
		}

		lines := splitLines(data)
		first := ""
		if len(lines) > 0 {
			first = lines[0]
		}

		switch {
		case bashShebang.MatchString(first) || strings.HasSuffix(rel, ".bash"):
			if !setsOptions(lines, bashOptions) {
				findings = append(findings, hook.Finding{
					Path:    rel,
					Message: fmt.Sprintf("does not contain '%s'", bashOptions),
				})
			}
		case shShebang.MatchString(first):
			if !setsOptions(lines, shOptions) {
				findings = append(findings, hook.Finding{
					Path:    rel,
					Message: fmt.Sprintf("does not contain '%s'", shOptions),
				})
			}
		case !isExecutable(abs):
			// No shebang is enforced for non-executable files.
		default:
			findings = append(findings, hook.Finding{
				Path: rel,
				Message: fmt.Sprintf("unknown shell %q; only use this hook together with check-executables-have-shebangs",
					strings.TrimSpace(first)),
			})
		}
	}

	if len(findings) == 0 {
		return hook.PassResult(req.RepoDir, h.ID()), nil
	}
	return hook.FailResultWithFindings(req.RepoDir, h.ID(),
		"shell scripts must enable strict option handling", findings), nil
}

func setsOptions(lines []string, expected string) bool {
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == expected || s == nolintLine {
			return true
		}
	}
	return false
}

func isExecutable(path string) bool {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0
}

func init() {
	hook.Register(&ShellOptionsHook{})
}

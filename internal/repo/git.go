package repo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// TopLevel returns the absolute path of the git working tree containing dir.
func TopLevel(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse --show-toplevel failed: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// TrackedFiles returns the repo-relative paths of all git-tracked files
// under root.
func TrackedFiles(ctx context.Context, root string) ([]string, error) {
	// -z avoids quoting issues with unusual path names.
	cmd := exec.CommandContext(ctx, "git", "ls-files", "-z")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-files failed: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	trimmed := strings.TrimSuffix(string(out), "\x00")
	return strings.Split(trimmed, "\x00"), nil
}

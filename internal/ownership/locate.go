package ownership

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"repowarden/internal/repo"
)

// DefaultLocations are the conventional rule-file paths, in lookup order.
var DefaultLocations = []string{
	".github/CODEOWNERS",
	"CODEOWNERS",
}

// LocateRulesFile returns the repo-relative path of the rule file to use.
// An explicit path must exist; otherwise the default locations are tried
// in order.
func LocateRulesFile(repoDir, explicit string) (string, error) {
	if explicit != "" {
		p := repo.Normalize(explicit)
		if _, err := os.Stat(filepath.Join(repoDir, filepath.FromSlash(p))); err != nil {
			return "", fmt.Errorf("codeowners file: %w", err)
		}
		return p, nil
	}
	for _, loc := range DefaultLocations {
		if _, err := os.Stat(filepath.Join(repoDir, filepath.FromSlash(loc))); err == nil {
			return loc, nil
		}
	}
	return "", fmt.Errorf("no CODEOWNERS file in %s (tried %s)", repoDir, strings.Join(DefaultLocations, ", "))
}

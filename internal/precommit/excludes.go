package precommit

import (
	"strings"

	"repowarden/internal/repo"
)

// Hook pairs a hook id with the literal paths its exclude field names.
type Hook struct {
	ID       string
	Excludes []string
}

// HooksWithExcludes flattens the config to the hooks that declare an
// exclude field, extracting the literal path entries from each.
func (c *Config) HooksWithExcludes() []Hook {
	var hooks []Hook
	for _, r := range c.Repos {
		for _, hc := range r.Hooks {
			if !hc.HasExcludes() {
				continue
			}
			hooks = append(hooks, Hook{ID: hc.ID, Excludes: ExtractExcludes(hc.Exclude)})
		}
	}
	return hooks
}

// ExtractExcludes pulls the literal path entries out of an exclude
// field. The verbose-regex layout "(?x)^(a|b)" is unwrapped first;
// entries that still look like regular expressions are dropped rather
// than misread as paths.
func ExtractExcludes(exclude string) []string {
	s := strings.NewReplacer("\n", "", " ", "").Replace(exclude)
	s = strings.NewReplacer("(?x)^(", "", "^", "", ")", "").Replace(s)

	var entries []string
	for _, entry := range strings.Split(s, "|") {
		if entry == "" || looksLikeRegex(entry) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func looksLikeRegex(entry string) bool {
	return strings.ContainsAny(entry, "*$^")
}

// FindDuplicates returns the exclude entries that appear more than
// once, in first-occurrence order.
func (h Hook) FindDuplicates() []string {
	seen := make(map[string]int, len(h.Excludes))
	var dups []string
	for _, e := range h.Excludes {
		seen[e]++
		if seen[e] == 2 {
			dups = append(dups, e)
		}
	}
	return dups
}

// FindMissing returns the exclude entries that name no file or
// directory in the tree.
func (h Hook) FindMissing(tree *repo.Tree) []string {
	var missing []string
	for _, e := range h.Excludes {
		if !tree.Exists(repo.Normalize(e)) {
			missing = append(missing, e)
		}
	}
	return missing
}

// CountExcludedFiles counts the files the hook's excludes cover: one
// per existing file entry plus every file under each directory entry.
// Missing entries contribute nothing.
func (h Hook) CountExcludedFiles(tree *repo.Tree) int {
	total := 0
	for _, e := range h.Excludes {
		p := repo.Normalize(e)
		switch {
		case p == "" || !tree.Exists(p):
		case tree.IsDir(p):
			prefix := p + "/"
			for _, f := range tree.Files() {
				if strings.HasPrefix(f, prefix) {
					total++
				}
			}
		default:
			total++
		}
	}
	return total
}

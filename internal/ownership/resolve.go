package ownership

import "repowarden/internal/repo"

// Resolution is the outcome of resolving one path against a rule set.
// Rule is nil when no rule covers the path.
type Resolution struct {
	Path string `json:"path"`
	Rule *Rule  `json:"rule,omitempty"`
}

func (r Resolution) Owned() bool { return r.Rule != nil }

// Owners returns the owners of the resolved rule, or nil when no rule
// matched.
func (r Resolution) Owners() []string {
	if r.Rule == nil {
		return nil
	}
	return r.Rule.Owners
}

func (r Resolution) OwnedBy(owner string) bool {
	return r.Rule != nil && r.Rule.HasOwner(owner)
}

// Resolve returns the rule owning path. Among matching rules the most
// specific wins: more path segments first, then more pattern characters;
// on a full tie the rule declared later in the file wins, matching the
// forge's last-match-wins convention. Resolve is pure: it never touches
// the filesystem.
func Resolve(rs *RuleSet, path string) Resolution {
	p := repo.Normalize(path)
	var best *Rule
	for i := range rs.rules {
		r := &rs.rules[i]
		if !r.m.match(p) {
			continue
		}
		if best == nil || moreSpecific(r, best) {
			best = r
		}
	}
	return Resolution{Path: p, Rule: best}
}

func moreSpecific(a, b *Rule) bool {
	if a.m.segCount != b.m.segCount {
		return a.m.segCount > b.m.segCount
	}
	if a.m.charCount != b.m.charCount {
		return a.m.charCount > b.m.charCount
	}
	return a.Line > b.Line
}

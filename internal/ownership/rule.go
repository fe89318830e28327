// Package ownership implements CODEOWNERS-style ownership rules: parsing
// the rule file, resolving paths against the rules with forge-compatible
// precedence, and validating the rule set against a repository snapshot.
package ownership

import "sort"

// Rule maps a path pattern to one or more owners. Line is the 1-based
// line number in the rule file, used in diagnostics and as the final
// precedence tie-break.
type Rule struct {
	Pattern string   `json:"pattern"`
	Owners  []string `json:"owners"`
	Line    int      `json:"line"`

	m *matcher
}

// HasOwner reports whether owner appears in the rule's owner list.
func (r *Rule) HasOwner(owner string) bool {
	for _, o := range r.Owners {
		if o == owner {
			return true
		}
	}
	return false
}

func ownersEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// RuleSet is an ordered collection of ownership rules, insertion order
// matching file order. It is immutable once parsed.
type RuleSet struct {
	// File is the rule file's path as given to the parser, used in
	// diagnostics.
	File string

	rules []Rule
}

// Rules returns the rules in file order.
func (rs *RuleSet) Rules() []Rule { return rs.rules }

func (rs *RuleSet) Len() int { return len(rs.rules) }

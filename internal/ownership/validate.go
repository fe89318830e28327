package ownership

import (
	"strings"

	"repowarden/internal/repo"
)

// Validate checks the rule set against a repository snapshot and reports
// dangling rules, duplicate patterns, and redundant rules. The traversal
// behind the snapshot is read-only; every problem is collected in one
// pass rather than stopping at the first.
func Validate(rs *RuleSet, tree *repo.Tree) *Report {
	return &Report{
		File:       rs.File,
		Dangling:   findDangling(rs, tree),
		Duplicates: findDuplicates(rs),
		Redundant:  findRedundant(rs),
	}
}

func findDangling(rs *RuleSet, tree *repo.Tree) []Rule {
	var dangling []Rule
	for i := range rs.rules {
		r := &rs.rules[i]
		if r.m.global || covered(r, tree) {
			continue
		}
		dangling = append(dangling, *r)
	}
	return dangling
}

func covered(r *Rule, tree *repo.Tree) bool {
	// An anchored pattern without wildcards names one path; an existing
	// directory satisfies it even when empty.
	if r.m.anchored && !hasWildcard(r.m) {
		return tree.Exists(strings.Join(r.m.segs, "/"))
	}
	for _, e := range tree.Entries() {
		if r.m.match(e.Path) {
			return true
		}
	}
	return false
}

func hasWildcard(m *matcher) bool {
	for _, seg := range m.segs {
		if seg == "**" || strings.ContainsAny(seg, "*?") {
			return true
		}
	}
	return false
}

// findDuplicates groups rules by pattern identity. Leading and trailing
// slashes do not distinguish patterns ("/a" and "/a/" collide); anchored
// and floating patterns stay distinct.
func findDuplicates(rs *RuleSet) []DuplicatePattern {
	type group struct {
		first *Rule
		lines []int
		same  bool
	}
	byKey := make(map[string]*group)
	var order []string
	for i := range rs.rules {
		r := &rs.rules[i]
		key := patternKey(r)
		g, ok := byKey[key]
		if !ok {
			byKey[key] = &group{first: r, lines: []int{r.Line}, same: true}
			order = append(order, key)
			continue
		}
		g.lines = append(g.lines, r.Line)
		if !ownersEqual(g.first.Owners, r.Owners) {
			g.same = false
		}
	}
	var dups []DuplicatePattern
	for _, key := range order {
		g := byKey[key]
		if len(g.lines) < 2 {
			continue
		}
		dups = append(dups, DuplicatePattern{Pattern: g.first.Pattern, Lines: g.lines, SameOwners: g.same})
	}
	return dups
}

func patternKey(r *Rule) string {
	prefix := ""
	if r.m.anchored {
		prefix = "/"
	}
	if r.m.global {
		return prefix + strings.Trim(r.Pattern, "/")
	}
	return prefix + strings.Join(r.m.segs, "/")
}

type treeNode struct {
	children map[string]*treeNode
	rule     *Rule // last rule whose pattern ends at this node
}

func (n *treeNode) child(name string) *treeNode {
	if n.children == nil {
		n.children = make(map[string]*treeNode)
	}
	c, ok := n.children[name]
	if !ok {
		c = &treeNode{}
		n.children[name] = c
	}
	return c
}

// findRedundant reports rules whose nearest enclosing rule carries the
// same owners; removing such a rule changes no path's resolution. Rules
// are bucketed into a tree of pattern segments, anchored and floating
// patterns kept apart. When a pattern repeats, the later declaration
// represents the node, matching resolution order.
func findRedundant(rs *RuleSet) []RedundantRule {
	roots := map[bool]*treeNode{true: {}, false: {}}
	nodes := make([]*treeNode, rs.Len())
	for i := range rs.rules {
		r := &rs.rules[i]
		if r.m.global {
			continue
		}
		n := roots[r.m.anchored]
		for _, seg := range r.m.segs {
			n = n.child(seg)
		}
		n.rule = r
		nodes[i] = n
	}

	var redundant []RedundantRule
	for i := range rs.rules {
		r := &rs.rules[i]
		n := nodes[i]
		if n == nil || n.rule != r {
			continue
		}
		anc := nearestAncestor(roots[r.m.anchored], r.m.segs)
		if anc != nil && ownersEqual(anc.Owners, r.Owners) {
			redundant = append(redundant, RedundantRule{Rule: *r, Ancestor: *anc})
		}
	}
	return redundant
}

// nearestAncestor returns the rule at the deepest proper prefix of segs.
func nearestAncestor(root *treeNode, segs []string) *Rule {
	var anc *Rule
	n := root
	for _, seg := range segs[:len(segs)-1] {
		n = n.children[seg]
		if n == nil {
			break
		}
		if n.rule != nil {
			anc = n.rule
		}
	}
	return anc
}

package ownership

import "repowarden/internal/repo"

// CheckDesignatedOwner verifies that owner owns the rules file and
// nothing else. Every file in the tree except rulesFile must not resolve
// to owner; rulesFile itself must. scope, when non-nil, restricts the
// disallowed-ownership scan to the given repo-relative files; the
// rules-file verification always runs.
func CheckDesignatedOwner(rs *RuleSet, tree *repo.Tree, rulesFile, owner string, scope []string) []OwnerViolation {
	rulesFile = repo.Normalize(rulesFile)

	files := scope
	if files == nil {
		files = tree.Files()
	}

	var violations []OwnerViolation
	for _, f := range files {
		f = repo.Normalize(f)
		if f == "" || f == rulesFile {
			continue
		}
		res := Resolve(rs, f)
		if res.OwnedBy(owner) {
			violations = append(violations, OwnerViolation{Path: f, Owner: owner, Rule: res.Rule})
		}
	}

	res := Resolve(rs, rulesFile)
	if !res.OwnedBy(owner) {
		violations = append(violations, OwnerViolation{Path: rulesFile, Owner: owner, Rule: res.Rule, NotOwned: true})
	}
	return violations
}

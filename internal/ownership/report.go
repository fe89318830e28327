package ownership

// Report collects every consistency problem found in one validation run.
// It is built fresh per invocation and never persisted; the process exit
// status derives solely from whether the report is empty.
type Report struct {
	File            string             `json:"file"`
	Dangling        []Rule             `json:"dangling_rules,omitempty"`
	Duplicates      []DuplicatePattern `json:"duplicate_patterns,omitempty"`
	Redundant       []RedundantRule    `json:"redundant_rules,omitempty"`
	OwnerViolations []OwnerViolation   `json:"owner_violations,omitempty"`
}

// DuplicatePattern records a pattern declared more than once. SameOwners
// distinguishes pure repetition from conflicting redeclaration.
type DuplicatePattern struct {
	Pattern    string `json:"pattern"`
	Lines      []int  `json:"lines"`
	SameOwners bool   `json:"same_owners"`
}

// RedundantRule records a rule fully contained in a more generic rule
// carrying the same owners. Removing the rule would not change how any
// path resolves.
type RedundantRule struct {
	Rule     Rule `json:"rule"`
	Ancestor Rule `json:"ancestor"`
}

// OwnerViolation records a designated-owner policy breach: a path other
// than the rules file resolved to the designated owner, or, with NotOwned
// set, the rules file itself did not.
type OwnerViolation struct {
	Path     string `json:"path"`
	Owner    string `json:"owner"`
	Rule     *Rule  `json:"rule,omitempty"`
	NotOwned bool   `json:"not_owned,omitempty"`
}

func (r *Report) Empty() bool { return r.Count() == 0 }

// Count returns the total number of findings in the report.
func (r *Report) Count() int {
	return len(r.Dangling) + len(r.Duplicates) + len(r.Redundant) + len(r.OwnerViolations)
}

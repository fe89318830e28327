package precommit

import "repowarden/internal/repo"

// HookMetric is the per-hook row of the exclusion report.
type HookMetric struct {
	HookID             string `json:"hook_id"`
	ExcludedFilesCount int    `json:"excluded_files_count"`
}

// Metrics aggregates how many existing files hook excludes cover.
type Metrics struct {
	TotalExcludedFiles int          `json:"total_excluded_files"`
	Hooks              []HookMetric `json:"hooks"`
}

// CollectMetrics tallies excluded-file counts for every hook, keeping
// only hooks whose excludes cover at least one existing file. Hooks is
// never nil so an empty report still serializes as a list.
func CollectMetrics(hooks []Hook, tree *repo.Tree) Metrics {
	m := Metrics{Hooks: []HookMetric{}}
	for _, h := range hooks {
		n := h.CountExcludedFiles(tree)
		if n == 0 {
			continue
		}
		m.Hooks = append(m.Hooks, HookMetric{HookID: h.ID, ExcludedFilesCount: n})
		m.TotalExcludedFiles += n
	}
	return m
}

package hook

type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusSkipped Status = "SKIPPED"
	StatusError   Status = "ERROR"
)

// Finding is one diagnostic row of a check result, pointing at the
// place that needs fixing.
type Finding struct {
	Path    string `json:"path,omitempty"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

type Result struct {
	HookID  string `json:"hook_id"`
	RepoDir string `json:"repo_dir"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
	// Findings lists the individual violations behind a FAIL.
	Findings []Finding `json:"findings,omitempty"`
	// Metadata contains structured data supporting the result (e.g. lists, counts).
	Metadata map[string]any `json:"metadata,omitempty"`
}

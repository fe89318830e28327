package output

import "repowarden/internal/hook"

// Event is a lifecycle record for NDJSON streaming output.
//
// In NDJSON mode, sinks emit Events (one JSON object per line), including:
// - check.started
// - check.result
// - check.finished
//
// JSON mode remains an aggregate of hook.Result values.
type Event struct {
	Type string `json:"type"`
	Hook string `json:"hook_id,omitempty"`
	*hook.Result
	Files    int `json:"files,omitempty"`
	ExitCode int `json:"exit_code,omitempty"`
}

func eventFromResult(r hook.Result) Event {
	return Event{Type: "check.result", Hook: r.HookID, Result: &r}
}

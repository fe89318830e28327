package checks

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"repowarden/internal/hook"
)

var (
	// todoMarker finds TODO spellings worth flagging. The TO DO form is
	// matched case-sensitively so prose like "to do" stays quiet.
	todoMarker = regexp.MustCompile(`(?i:to-?do)|TO DO`)
	todoTicket = regexp.MustCompile(`TODO\([A-Z]+-[0-9]+\):`)
)

// Lowercase identifier fragments the marker regex would otherwise trip
// over, e.g. setOdometry or toDouble.
var todoFalsePositives = []string{"todo", "toDouble", "tOdometry"}

type TodoRefsHook struct{}

func (h *TodoRefsHook) ID() string {
	return "check-todo-refs"
}

func (h *TodoRefsHook) Title() string {
	return "TODO Ticket References"
}

func (h *TodoRefsHook) Description() string {
	return "Requires every TODO comment to reference a tracker ticket in the\n" +
		"form 'TODO(ABC-1234):'. Variants like 'ToDo', 'TO DO' or a missing\n" +
		"ticket id are reported with file and line.\n\n" +
		"Examples:\n" +
		"  repowarden check-todo-refs src/main.go pkg/util.go"
}

func (h *TodoRefsHook) Run(ctx context.Context, req hook.Request) (hook.Result, error) {
	if len(req.Files) == 0 {
		return hook.SkippedResult(req.RepoDir, h.ID(), "no files to check"), nil
	}

	findings, err := scanFiles(ctx, req.RepoDir, req.Files, todoFindings)
	if err != nil {
		return hook.Result{}, err
	}
	if len(findings) == 0 {
		return hook.PassResult(req.RepoDir, h.ID()), nil
	}
	return hook.FailResultWithFindings(req.RepoDir, h.ID(),
		"TODOs must reference a ticket in the form 'TODO(ABC-1234):'", findings), nil
}

func todoFindings(path string, data []byte) []hook.Finding {
	var findings []hook.Finding
	for i, line := range splitLines(data) {
		if lineHasIncorrectTodo(line) {
			findings = append(findings, hook.Finding{
				Path:    path,
				Line:    i + 1,
				Message: fmt.Sprintf("TODO without ticket reference: '%s'", strings.TrimSpace(line)),
			})
		}
	}
	return findings
}

// lineHasIncorrectTodo reports whether line carries a TODO marker
// without a well-formed ticket reference.
func lineHasIncorrectTodo(line string) bool {
	if !hasTodoMarker(line) {
		return false
	}
	return !todoTicket.MatchString(line)
}

func hasTodoMarker(line string) bool {
	for _, loc := range todoMarker.FindAllStringIndex(line, -1) {
		if !excludedMarker(line[loc[0]:]) {
			return true
		}
	}
	return false
}

func excludedMarker(rest string) bool {
	for _, fp := range todoFalsePositives {
		if strings.HasPrefix(rest, fp) {
			return true
		}
	}
	return false
}

func init() {
	hook.Register(&TodoRefsHook{})
}

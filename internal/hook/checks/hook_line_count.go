package checks

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"repowarden/internal/flags"
	"repowarden/internal/hook"
)

const defaultMaxLines = 30

type LineCountHook struct {
	maxLines int
}

func (h *LineCountHook) ID() string {
	return "check-line-count"
}

func (h *LineCountHook) Title() string {
	return "File Line Count"
}

func (h *LineCountHook) Description() string {
	return "Fails when a file grows beyond the configured number of lines.\n" +
		"Meant for file types that should stay small, like shell scripts.\n\n" +
		"Options:\n" +
		"- max-lines: maximum allowable number of lines (default 30)\n\n" +
		"Examples:\n" +
		"  repowarden check-line-count --max-lines 100 scripts/*.sh"
}

func (h *LineCountHook) Options() []hook.Option {
	return []hook.Option{
		{
			Name:        flags.FlagMaxLines,
			Description: "Maximum allowable number of lines per file.",
			Default:     strconv.Itoa(defaultMaxLines),
		},
	}
}

func (h *LineCountHook) Configure(opts map[string]string) error {
	h.maxLines = defaultMaxLines

	if v := strings.TrimSpace(opts[flags.FlagMaxLines]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid value for max-lines: %q (must be a positive integer)", v)
		}
		h.maxLines = n
	}
	return nil
}

func (h *LineCountHook) Run(ctx context.Context, req hook.Request) (hook.Result, error) {
	if len(req.Files) == 0 {
		return hook.SkippedResult(req.RepoDir, h.ID(), "no files to check"), nil
	}

	findings, err := scanFiles(ctx, req.RepoDir, req.Files, func(path string, data []byte) []hook.Finding {
		n := countLines(data)
		if n <= h.maxLines {
			return nil
		}
		return []hook.Finding{{
			Path:    path,
			Message: fmt.Sprintf("%d lines exceeds the limit of %d", n, h.maxLines),
		}}
	})
	if err != nil {
		return hook.Result{}, err
	}
	if len(findings) == 0 {
		return hook.PassResult(req.RepoDir, h.ID()), nil
	}
	return hook.FailResultWithFindings(req.RepoDir, h.ID(),
		fmt.Sprintf("files exceed %d lines", h.maxLines), findings), nil
}

// countLines counts lines the way a text editor shows them: a trailing
// newline does not start another line.
func countLines(data []byte) int {
	n := bytes.Count(data, []byte("\n"))
	if len(data) > 0 && data[len(data)-1] != '\n' {
		n++
	}
	return n
}

func init() {
	hook.Register(&LineCountHook{})
}

package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"repowarden/internal/config"
	"repowarden/internal/hook"
)

// withTestConfig swaps the package config for a throwaway one and
// restores it when the test finishes.
func withTestConfig(t *testing.T) {
	t.Helper()
	old := *cfg
	t.Cleanup(func() { *cfg = old })

	*cfg = *config.New()
	cfg.Target.RepoDir = t.TempDir()
	cfg.Output.QuietPass = true
}

func TestExitCodeForResult(t *testing.T) {
	tests := []struct {
		status hook.Status
		want   int
	}{
		{hook.StatusPass, 0},
		{hook.StatusSkipped, 0},
		{hook.StatusFail, 1},
		{hook.StatusError, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			got := exitCodeForResult(hook.Result{Status: tt.status})
			if got != tt.want {
				t.Fatalf("exit code for %s: want %d, got %d", tt.status, tt.want, got)
			}
		})
	}
}

func TestRunHook_WritesResultToOutFile(t *testing.T) {
	withTestConfig(t)
	outPath := filepath.Join(t.TempDir(), "out.json")
	cfg.Output.Out = outPath

	h := &mockHook{
		id: "mock-check",
		result: hook.FailResultWithFindings(cfg.Target.RepoDir, "mock-check", "2 problems", []hook.Finding{
			{Path: "a.go", Line: 3, Message: "first"},
			{Path: "b.go", Line: 9, Message: "second"},
		}),
	}

	code := runHook(context.Background(), h, cfg)
	if code != 1 {
		t.Fatalf("want exit code 1, got %d", code)
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var results []hook.Result
	if err := json.Unmarshal(b, &results); err != nil {
		t.Fatalf("Unmarshal: %v\nbody=%s", err, string(b))
	}
	if len(results) != 1 {
		t.Fatalf("want 1 result, got %d", len(results))
	}
	if results[0].HookID != "mock-check" || len(results[0].Findings) != 2 {
		t.Fatalf("unexpected result: %#v", results[0])
	}
}

func TestRunHook_NDJSONLifecycleEvents(t *testing.T) {
	withTestConfig(t)
	outPath := filepath.Join(t.TempDir(), "out.ndjson")
	cfg.Output.Out = outPath
	cfg.Target.Files = []string{"a.go", "b.go"}

	h := &mockHook{
		id:     "mock-check",
		result: hook.FailResult(cfg.Target.RepoDir, "mock-check", "nope"),
	}

	if code := runHook(context.Background(), h, cfg); code != 1 {
		t.Fatalf("want exit code 1, got %d", code)
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 ndjson lines, got %d\nbody=%s", len(lines), string(b))
	}
	for i, wantType := range []string{"check.started", "check.result", "check.finished"} {
		if !strings.Contains(lines[i], `"type":"`+wantType+`"`) {
			t.Fatalf("line %d: want type %s, got %q", i+1, wantType, lines[i])
		}
	}
	if !strings.Contains(lines[0], `"files":2`) {
		t.Fatalf("check.started should carry the file count, got %q", lines[0])
	}
	if !strings.Contains(lines[2], `"exit_code":1`) {
		t.Fatalf("check.finished should carry the exit code, got %q", lines[2])
	}
}

func TestRunHook_InvalidConfigExits3(t *testing.T) {
	withTestConfig(t)
	cfg.Output.Format = "yaml"

	h := &mockHook{id: "mock-check", result: hook.PassResult(".", "mock-check")}
	if code := runHook(context.Background(), h, cfg); code != 3 {
		t.Fatalf("want exit code 3 for invalid config, got %d", code)
	}
	if h.ran {
		t.Fatal("hook must not run when configuration is invalid")
	}
}

func TestRunHook_HookErrorBecomesErrorResult(t *testing.T) {
	withTestConfig(t)
	outPath := filepath.Join(t.TempDir(), "out.json")
	cfg.Output.Out = outPath

	h := &mockHook{id: "mock-check", err: errors.New("config unreadable")}

	if code := runHook(context.Background(), h, cfg); code != 3 {
		t.Fatalf("want exit code 3, got %d", code)
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var results []hook.Result
	if err := json.Unmarshal(b, &results); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(results) != 1 || results[0].Status != hook.StatusError {
		t.Fatalf("want one ERROR result, got %#v", results)
	}
	if results[0].Message != "config unreadable" {
		t.Fatalf("unexpected message: %q", results[0].Message)
	}
}

func TestRunHookCommand_AppliesOptions(t *testing.T) {
	withTestConfig(t)

	h := &mockConfigurableHook{
		mockHook: mockHook{id: "mock-configurable"},
		options: []hook.Option{
			{Name: "threshold", Description: "How strict to be", Default: "10"},
		},
	}
	h.result = hook.PassResult(cfg.Target.RepoDir, h.id)

	cmd := newHookCommand(h)
	if err := cmd.Flags().Set("threshold", "25"); err != nil {
		t.Fatalf("Set flag: %v", err)
	}

	code := runHookCommand(cmd, h, []string{"x.go", "y.go"})
	if code != 0 {
		t.Fatalf("want exit code 0, got %d", code)
	}
	if h.configured["threshold"] != "25" {
		t.Fatalf("want threshold 25 configured, got %v", h.configured)
	}
	if len(cfg.Target.Files) != 2 || cfg.Target.Files[0] != "x.go" {
		t.Fatalf("positional files not wired: %v", cfg.Target.Files)
	}
	if !h.ran {
		t.Fatal("hook did not run")
	}
}

func TestRunHookCommand_OptionDefaultsReachConfigure(t *testing.T) {
	withTestConfig(t)

	h := &mockConfigurableHook{
		mockHook: mockHook{id: "mock-defaults"},
		options: []hook.Option{
			{Name: "threshold", Description: "How strict to be", Default: "10"},
		},
	}
	h.result = hook.PassResult(cfg.Target.RepoDir, h.id)

	cmd := newHookCommand(h)
	if code := runHookCommand(cmd, h, nil); code != 0 {
		t.Fatalf("want exit code 0, got %d", code)
	}
	if h.configured["threshold"] != "10" {
		t.Fatalf("want default threshold 10 configured, got %v", h.configured)
	}
}

func TestRunHookCommand_ConfigureErrorExits3(t *testing.T) {
	withTestConfig(t)

	h := &mockConfigurableHook{
		mockHook:  mockHook{id: "mock-bad-option"},
		options:   []hook.Option{{Name: "threshold", Default: "10"}},
		configErr: errors.New("invalid value for threshold"),
	}

	cmd := newHookCommand(h)
	if code := runHookCommand(cmd, h, nil); code != 3 {
		t.Fatalf("want exit code 3, got %d", code)
	}
	if h.ran {
		t.Fatal("hook must not run when Configure fails")
	}
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"repowarden/internal/config"
	"repowarden/internal/hook"
	"repowarden/internal/output"
)

func exitCodeForResult(r hook.Result) int {
	// Exit code contract:
	// 0 = check passed (SKIPPED counts as passed)
	// 1 = violations found
	// 3 = fatal error (check did not run)
	switch r.Status {
	case hook.StatusFail:
		return 1
	case hook.StatusError:
		return 3
	default:
		return 0
	}
}

func setupOutputManager(cfg *config.Config) (*output.Manager, error) {
	outMgr := output.NewManager()

	// Console Sink
	var filter []string
	if cfg.Output.QuietPass {
		filter = []string{"FAIL", "SKIPPED", "ERROR"}
	}
	if err := outMgr.AddSink(output.NewConsoleSink(nil, cfg.Output.Format, filter)); err != nil {
		outMgr.Close()
		return nil, err
	}

	// File Sink
	if cfg.Output.Out != "" {
		fs, err := output.NewFileSink(cfg.Output.Out, cfg.Output.OutFormat)
		if err != nil {
			outMgr.Close()
			return nil, err
		}
		if err := outMgr.AddSink(fs); err != nil {
			outMgr.Close()
			return nil, err
		}
	}

	return outMgr, nil
}

// runHook validates the configuration, executes one check, and renders
// its result through the configured sinks. The returned exit code
// follows the documented contract.
func runHook(ctx context.Context, h hook.Hook, cfg *config.Config) int {
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}
	if cfg.Output.NoColor {
		color.NoColor = true
	}

	outMgr, err := setupOutputManager(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output sinks: %v\n", err)
		return 3
	}
	defer outMgr.Close()

	_ = outMgr.Write(output.Event{Type: "check.started", Hook: h.ID(), Files: len(cfg.Target.Files)})

	req := hook.Request{
		RepoDir: cfg.Target.RepoDir,
		Files:   cfg.Target.Files,
		Verbose: cfg.Runtime.Verbose,
	}
	res, err := h.Run(ctx, req)
	if err != nil {
		res = hook.ErrorResult(req.RepoDir, h.ID(), err.Error())
	}
	// Backfill identifiers so sinks stay consistent even when a check
	// does not stamp them.
	if res.HookID == "" {
		res.HookID = h.ID()
	}
	if res.RepoDir == "" {
		res.RepoDir = cfg.Target.RepoDir
	}

	_ = outMgr.Write(res)

	code := exitCodeForResult(res)
	_ = outMgr.Write(output.Event{Type: "check.finished", ExitCode: code})
	return code
}

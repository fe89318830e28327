// Package checks holds the built-in hooks. Each hook registers itself
// in init and becomes a repowarden subcommand.
package checks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"repowarden/internal/hook"
	"repowarden/internal/repo"
)

// maxOpenFiles bounds concurrent reads so large file lists do not
// exhaust descriptors.
const maxOpenFiles = 16

// scanFiles runs fn over every listed file and returns the findings in
// input order. Files are read concurrently; the first read error aborts
// the scan.
func scanFiles(ctx context.Context, repoDir string, files []string, fn func(path string, data []byte) []hook.Finding) ([]hook.Finding, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxOpenFiles)

	perFile := make([][]hook.Finding, len(files))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rel := repo.Normalize(f)
			data, err := os.ReadFile(filepath.Join(repoDir, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("reading %s: %w", f, err)
			}
			perFile[i] = fn(rel, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var findings []hook.Finding
	for _, fs := range perFile {
		findings = append(findings, fs...)
	}
	return findings, nil
}

// splitLines splits file contents the way line-oriented checks expect:
// a trailing newline does not open a final empty line.
func splitLines(data []byte) []string {
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"repowarden/internal/hook"
)

// writeRepo lays out a throwaway repository from path -> content pairs.
func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for path, content := range files {
		abs := filepath.Join(root, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return root
}

func findingMessages(res hook.Result) []string {
	var msgs []string
	for _, f := range res.Findings {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

func hasFinding(res hook.Result, substr string) bool {
	for _, f := range res.Findings {
		if strings.Contains(f.Message, substr) {
			return true
		}
	}
	return false
}

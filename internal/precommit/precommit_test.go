package precommit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repowarden/internal/repo"
)

const sampleConfig = `repos:
  - repo: meta
    hooks:
      - id: check-hooks-apply
  - repo: local
    hooks:
      - id: check-snake-case
        name: check snake case
        entry: python3 foo.py
        language: python
        exclude: (?x)^(python/aws_auth|packages/thirdparty/)
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)
	require.Len(t, cfg.Repos, 2)

	assert.Equal(t, "meta", cfg.Repos[0].Repo)
	assert.Equal(t, "check-hooks-apply", cfg.Repos[0].Hooks[0].ID)
	assert.Equal(t, "check-snake-case", cfg.Repos[1].Hooks[0].ID)
	assert.Equal(t, "(?x)^(python/aws_auth|packages/thirdparty/)", cfg.Repos[1].Hooks[0].Exclude)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("repos: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding pre-commit config")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Repos, 2)

	_, err = Load(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
}

func TestHasExcludes(t *testing.T) {
	assert.True(t, HookConfig{ID: "a", Exclude: "packages/thirdparty"}.HasExcludes())
	assert.False(t, HookConfig{ID: "a"}.HasExcludes())
	assert.False(t, HookConfig{ID: "a", Exclude: "^$"}.HasExcludes())
}

func TestHooksWithExcludes(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	require.NoError(t, err)

	hooks := cfg.HooksWithExcludes()
	require.Len(t, hooks, 1)
	assert.Equal(t, "check-snake-case", hooks[0].ID)
	assert.Equal(t, []string{"python/aws_auth", "packages/thirdparty/"}, hooks[0].Excludes)
}

func TestExtractExcludes(t *testing.T) {
	tests := []struct {
		name    string
		exclude string
		want    []string
	}{
		{
			name:    "single path",
			exclude: "packages/thirdparty/",
			want:    []string{"packages/thirdparty/"},
		},
		{
			name:    "verbose regex layout",
			exclude: "(?x)^(\n  packages/thirdparty/|\n  python/aws_auth/\n)\n",
			want:    []string{"packages/thirdparty/", "python/aws_auth/"},
		},
		{
			name:    "regex entries dropped",
			exclude: "(?x)^(.*\\/conanfile.py|\\.lock$|docs/)",
			want:    []string{"docs/"},
		},
		{
			name:    "caret is decoration",
			exclude: "^samples/ros1/src/",
			want:    []string{"samples/ros1/src/"},
		},
		{
			name:    "empty entries dropped",
			exclude: "a/|",
			want:    []string{"a/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractExcludes(tt.exclude))
		})
	}
}

func TestLooksLikeRegex(t *testing.T) {
	for _, pattern := range []string{".*\\/conanfile.py", "\\.lock$", "^samples/ros1/src/"} {
		assert.True(t, looksLikeRegex(pattern), pattern)
	}
	assert.False(t, looksLikeRegex("packages/thirdparty/"))
}

func TestFindDuplicates(t *testing.T) {
	h := Hook{ID: "t", Excludes: []string{"a", "b", "a", "b"}}
	assert.Equal(t, []string{"a", "b"}, h.FindDuplicates())

	clean := Hook{ID: "t", Excludes: []string{"a", "b"}}
	assert.Empty(t, clean.FindDuplicates())
}

func TestFindMissing(t *testing.T) {
	tree := repo.FromPaths("/repo", []string{"existing_path"})

	h := Hook{ID: "t", Excludes: []string{"existing_path", "missing1", "missing2"}}
	assert.Equal(t, []string{"missing1", "missing2"}, h.FindMissing(tree))

	clean := Hook{ID: "t", Excludes: []string{"existing_path"}}
	assert.Empty(t, clean.FindMissing(tree))
}

func TestFindMissingAcceptsDirectories(t *testing.T) {
	tree := repo.FromPaths("/repo", []string{"packages/thirdparty/lib.c"})

	h := Hook{ID: "t", Excludes: []string{"packages/thirdparty/"}}
	assert.Empty(t, h.FindMissing(tree))
}

func TestCountExcludedFiles(t *testing.T) {
	tree := repo.FromPaths("/repo", []string{
		"single_file.txt",
		"test_dir/file1.txt",
		"test_dir/file2.txt",
		"test_dir/subdir/file3.txt",
	})

	tests := []struct {
		name     string
		excludes []string
		want     int
	}{
		{"single file", []string{"single_file.txt"}, 1},
		{"directory counts recursively", []string{"test_dir"}, 3},
		{"mixed file and directory", []string{"single_file.txt", "test_dir/subdir"}, 2},
		{"non-existing contributes nothing", []string{"ghost.txt", "ghost_dir"}, 0},
		{"mixed existing and non-existing", []string{"single_file.txt", "ghost.txt"}, 1},
		{"no excludes", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Hook{ID: "t", Excludes: tt.excludes}
			assert.Equal(t, tt.want, h.CountExcludedFiles(tree))
		})
	}
}

func TestCollectMetrics(t *testing.T) {
	tree := repo.FromPaths("/repo", []string{
		"covered/a.txt",
		"covered/b.txt",
		"loose.txt",
	})
	hooks := []Hook{
		{ID: "wide", Excludes: []string{"covered/"}},
		{ID: "narrow", Excludes: []string{"loose.txt"}},
		{ID: "pointless", Excludes: []string{"ghost/"}},
	}

	m := CollectMetrics(hooks, tree)

	assert.Equal(t, 3, m.TotalExcludedFiles)
	require.Len(t, m.Hooks, 2)
	assert.Equal(t, HookMetric{HookID: "wide", ExcludedFilesCount: 2}, m.Hooks[0])
	assert.Equal(t, HookMetric{HookID: "narrow", ExcludedFilesCount: 1}, m.Hooks[1])
}

func TestCollectMetricsEmptyIsNotNil(t *testing.T) {
	m := CollectMetrics(nil, repo.FromPaths("/repo", nil))
	assert.NotNil(t, m.Hooks)
	assert.Equal(t, 0, m.TotalExcludedFiles)
}

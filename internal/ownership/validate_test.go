package ownership

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"repowarden/internal/repo"
)

func snapshot(files ...string) *repo.Tree {
	return repo.FromPaths("/repo", files)
}

func TestValidateDangling(t *testing.T) {
	rs := mustParse(t, `/docs @a
/missing @b
orphan.txt @c
/src/*.xyz @d
* @e
`)
	tree := snapshot("docs/readme.md", "src/main.go")

	report := Validate(rs, tree)

	var patterns []string
	for _, r := range report.Dangling {
		patterns = append(patterns, r.Pattern)
	}
	want := []string{"/missing", "orphan.txt", "/src/*.xyz"}
	if !reflect.DeepEqual(patterns, want) {
		t.Fatalf("want dangling %v, got %v", want, patterns)
	}
	if report.Dangling[0].Line != 2 {
		t.Errorf("want line 2 for /missing, got %d", report.Dangling[0].Line)
	}
}

func TestValidateDanglingSingleEntryPerRule(t *testing.T) {
	rs := mustParse(t, "/nonexistent/path owner1\n")
	report := Validate(rs, snapshot("README.md"))

	if len(report.Dangling) != 1 || report.Dangling[0].Pattern != "/nonexistent/path" {
		t.Fatalf("want exactly one dangling entry, got %+v", report.Dangling)
	}
}

func TestValidateDanglingWildcardMatchesAnywhere(t *testing.T) {
	tree := snapshot("src/test_a.c")

	if report := Validate(mustParse(t, "test_*.c @t\n"), tree); len(report.Dangling) != 0 {
		t.Fatalf("floating wildcard should be satisfied by src/test_a.c: %+v", report.Dangling)
	}
	if report := Validate(mustParse(t, "/test_*.c @t\n"), tree); len(report.Dangling) != 1 {
		t.Fatalf("anchored wildcard must not be satisfied by nested file: %+v", report.Dangling)
	}
}

func TestValidateEmptyDirectorySatisfiesRule(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "assets"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	tree, err := repo.Walk(root)
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}

	report := Validate(mustParse(t, "/assets/ @design\n"), tree)
	if len(report.Dangling) != 0 {
		t.Fatalf("existing empty directory must satisfy its rule: %+v", report.Dangling)
	}
}

func TestValidateDuplicates(t *testing.T) {
	rs := mustParse(t, `/a/b owner1
/a/b owner2
/a/b owner1
/x @a
/x @a
`)
	report := Validate(rs, snapshot("a/b/file.txt", "x"))

	if len(report.Duplicates) != 2 {
		t.Fatalf("want 2 duplicate entries, got %+v", report.Duplicates)
	}
	ab := report.Duplicates[0]
	if ab.Pattern != "/a/b" || !reflect.DeepEqual(ab.Lines, []int{1, 2, 3}) {
		t.Fatalf("unexpected duplicate group: %+v", ab)
	}
	if ab.SameOwners {
		t.Errorf("owner lists differ, SameOwners must be false")
	}
	if x := report.Duplicates[1]; !x.SameOwners {
		t.Errorf("identical owner lists, SameOwners must be true: %+v", x)
	}
}

func TestValidateDuplicatesIgnoreSlashDecoration(t *testing.T) {
	rs := mustParse(t, "/a @team\n/a/ @team\n")
	report := Validate(rs, snapshot("a/file.txt"))

	if len(report.Duplicates) != 1 || len(report.Duplicates[0].Lines) != 2 {
		t.Fatalf("slash-decorated twins must collide: %+v", report.Duplicates)
	}
}

func TestValidateRedundant(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{
			name:    "child repeats parent owners",
			content: "/path/team @myorg/team\n/path/team/subfolder/package_* @myorg/team\n",
			want:    1,
		},
		{
			name:    "declaration order irrelevant",
			content: "/path/team/subfolder/package_* @myorg/team\n/path/team @myorg/team\n",
			want:    1,
		},
		{
			name:    "different owners not redundant",
			content: "/path/team @myorg/team\n/path/team/subfolder/package_* @myorg/bar\n",
			want:    0,
		},
		{
			name:    "redeclaration overrides earlier owners",
			content: "/path/team @myorg/team\n/path/team/subfolder/package_* @myorg/team\n/path/team/subfolder/package_* @myorg/bar\n",
			want:    0,
		},
		{
			name:    "nearest ancestor decides",
			content: "/a @x\n/a/b @y\n/a/b/c @x\n",
			want:    0,
		},
		{
			name:    "global rule never shadows",
			content: "* @x\n/a @x\n",
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs := mustParse(t, tt.content)
			tree := snapshot("path/team/subfolder/package_a/x.c", "a/b/c/f.txt")
			report := Validate(rs, tree)
			if len(report.Redundant) != tt.want {
				t.Fatalf("want %d redundant rules, got %+v", tt.want, report.Redundant)
			}
			if tt.want == 1 {
				if report.Redundant[0].Ancestor.Pattern != "/path/team" {
					t.Errorf("unexpected ancestor: %+v", report.Redundant[0].Ancestor)
				}
			}
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	rs := mustParse(t, "/docs @a\n/missing @b\n/docs @c\n")
	tree := snapshot("docs/readme.md")

	first := Validate(rs, tree)
	second := Validate(rs, tree)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestReportEmpty(t *testing.T) {
	rs := mustParse(t, "/docs @a\n* @everyone\n")
	report := Validate(rs, snapshot("docs/readme.md"))

	if !report.Empty() || report.Count() != 0 {
		t.Fatalf("want empty report, got %+v", report)
	}

	report.OwnerViolations = append(report.OwnerViolations, OwnerViolation{Path: "x", Owner: "@a"})
	if report.Empty() || report.Count() != 1 {
		t.Fatalf("report with a violation must not be empty")
	}
}

package repo

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a single path in a repository snapshot.
type Entry struct {
	Path string // repo-relative, slash-separated
	Dir  bool
}

// Tree is an immutable snapshot of the paths under a repository root.
// Lookups use repo-relative slash-separated paths without a leading slash.
type Tree struct {
	root    string
	entries []Entry
	kind    map[string]bool // path -> is directory
}

// Walk snapshots every file and directory under root except the .git
// directory. The walk is read-only; any traversal error aborts the whole
// snapshot rather than producing a partial one.
func Walk(root string) (*Tree, error) {
	t := &Tree{root: root, kind: make(map[string]bool)}

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", p, err)
		}
		if p == root {
			return nil
		}
		if d.Name() == ".git" {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return fmt.Errorf("walking %s: %w", p, err)
		}
		t.add(filepath.ToSlash(rel), d.IsDir())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// FromPaths builds a snapshot from an explicit list of repo-relative file
// paths, deriving the directories above each file. Git-tracked scans and
// tests use this instead of touching the filesystem.
func FromPaths(root string, files []string) *Tree {
	t := &Tree{root: root, kind: make(map[string]bool)}
	for _, f := range files {
		f = Normalize(f)
		if f == "" {
			continue
		}
		t.add(f, false)
		for dir := path.Dir(f); dir != "." && dir != "/"; dir = path.Dir(dir) {
			t.add(dir, true)
		}
	}
	sort.Slice(t.entries, func(i, j int) bool { return t.entries[i].Path < t.entries[j].Path })
	return t
}

func (t *Tree) add(p string, dir bool) {
	if _, ok := t.kind[p]; ok {
		return
	}
	t.kind[p] = dir
	t.entries = append(t.entries, Entry{Path: p, Dir: dir})
}

func (t *Tree) Root() string { return t.root }

// Entries returns all paths in the snapshot, files and directories, in
// lexical order.
func (t *Tree) Entries() []Entry { return t.entries }

// Files returns the file paths in the snapshot in lexical order.
func (t *Tree) Files() []string {
	var files []string
	for _, e := range t.entries {
		if !e.Dir {
			files = append(files, e.Path)
		}
	}
	return files
}

func (t *Tree) Exists(p string) bool {
	_, ok := t.kind[Normalize(p)]
	return ok
}

func (t *Tree) IsDir(p string) bool {
	return t.kind[Normalize(p)]
}

func (t *Tree) Len() int { return len(t.entries) }

// Normalize converts p to the snapshot's lookup form: slash-separated,
// cleaned, no leading slash or "./" prefix.
func Normalize(p string) string {
	p = strings.TrimPrefix(filepath.ToSlash(p), "/")
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}

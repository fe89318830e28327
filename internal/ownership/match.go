package ownership

import (
	"errors"
	"path"
	"strings"
)

// matcher is a Rule's compiled pattern.
//
// The dialect follows the forge's CODEOWNERS matching: a leading slash
// anchors the pattern at the repository root, otherwise it may begin at
// any directory depth; * and ? match within one path segment; ** spans
// segments; a pattern that matches a directory also covers everything
// beneath it, except that a trailing bare * owns direct children only;
// a trailing slash marks a directory pattern. The patterns "*", "**" and
// "/" cover every path and carry zero specificity.
type matcher struct {
	global   bool
	anchored bool
	dirOnly  bool
	segs     []string

	// Pattern specificity: path segments, then characters of the
	// slash-trimmed pattern. Higher wins during resolution.
	segCount  int
	charCount int
}

func compile(pattern string) (*matcher, error) {
	if strings.HasPrefix(pattern, "!") {
		return nil, errors.New("negation patterns are not supported")
	}
	if strings.ContainsAny(pattern, "[]") {
		return nil, errors.New("character classes are not supported")
	}

	m := &matcher{
		anchored: strings.HasPrefix(pattern, "/"),
		dirOnly:  strings.HasSuffix(pattern, "/") && len(pattern) > 1,
	}
	trimmed := strings.Trim(pattern, "/")
	if trimmed == "" || trimmed == "*" || trimmed == "**" {
		m.global = true
		return m, nil
	}
	m.segs = strings.Split(trimmed, "/")
	for _, seg := range m.segs {
		if seg == "" {
			return nil, errors.New("empty path segment")
		}
		if seg == "**" {
			continue
		}
		if _, err := path.Match(seg, ""); err != nil {
			return nil, errors.New("malformed wildcard segment")
		}
	}
	m.segCount = len(m.segs)
	m.charCount = len(trimmed)
	return m, nil
}

// match reports whether the pattern covers the repo-relative path p.
func (m *matcher) match(p string) bool {
	if p == "" {
		return false
	}
	if m.global {
		return true
	}
	segs := strings.Split(p, "/")
	if m.anchored {
		return m.matchSegs(m.segs, segs)
	}
	for i := range segs {
		if m.matchSegs(m.segs, segs[i:]) {
			return true
		}
	}
	return false
}

func (m *matcher) matchSegs(pat, rest []string) bool {
	for len(pat) > 0 {
		if pat[0] == "**" {
			if len(pat) == 1 {
				return len(rest) > 0
			}
			for i := 0; i <= len(rest); i++ {
				if m.matchSegs(pat[1:], rest[i:]) {
					return true
				}
			}
			return false
		}
		if len(rest) == 0 {
			return false
		}
		if !segMatch(pat[0], rest[0]) {
			return false
		}
		pat, rest = pat[1:], rest[1:]
	}
	if len(rest) == 0 {
		return true
	}
	// The pattern matched a leading directory, which covers everything
	// beneath it, except that a trailing bare * owns direct children only.
	if m.dirOnly {
		return true
	}
	return m.segs[len(m.segs)-1] != "*"
}

func segMatch(pat, name string) bool {
	if !strings.ContainsAny(pat, "*?\\") {
		return pat == name
	}
	ok, err := path.Match(pat, name)
	return err == nil && ok
}

package ownership

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseError describes a malformed rule file line. Parsing stops at the
// first malformed line; no resolution runs against a broken rule set.
type ParseError struct {
	File   string
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s: %q", e.File, e.Line, e.Reason, e.Text)
}

// Parse reads ownership rules from r. name identifies the rule file in
// diagnostics. Blank lines and lines starting with # are ignored. Every
// other line must be a whitespace-separated pattern followed by at least
// one owner.
func Parse(name string, r io.Reader) (*RuleSet, error) {
	rs := &RuleSet{File: name}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, &ParseError{File: name, Line: line, Text: text, Reason: "rule has no owners"}
		}
		m, err := compile(fields[0])
		if err != nil {
			return nil, &ParseError{File: name, Line: line, Text: text, Reason: err.Error()}
		}
		rs.rules = append(rs.rules, Rule{Pattern: fields[0], Owners: fields[1:], Line: line, m: m})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return rs, nil
}

// ParseFile reads ownership rules from the file at path.
func ParseFile(path string) (*RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

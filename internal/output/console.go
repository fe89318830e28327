package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"

	"repowarden/internal/hook"
)

// ConsoleSink renders check results for a terminal. Text mode prints a
// status line per result followed by its findings; json buffers results
// and writes a single array on Close; ndjson streams lifecycle events.
type ConsoleSink struct {
	writer          io.Writer
	format          string // "text", "json", "ndjson"
	mu              sync.Mutex
	results         []hook.Result // for JSON array output
	allowedStatuses map[string]bool
}

func NewConsoleSink(w io.Writer, format string, filterStatuses []string) *ConsoleSink {
	if w == nil {
		w = os.Stdout
	}
	if format == "" {
		format = "text"
	}

	s := &ConsoleSink{
		writer: w,
		format: format,
	}

	if len(filterStatuses) > 0 {
		s.allowedStatuses = make(map[string]bool)
		for _, st := range filterStatuses {
			// Statuses compare case-insensitively; the canonical forms
			// are "PASS", "FAIL", "SKIPPED", "ERROR".
			s.allowedStatuses[strings.ToUpper(st)] = true
		}
	}

	return s
}

func (s *ConsoleSink) Write(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(v)
}

func (s *ConsoleSink) writeLocked(v any) error {
	printf := func(format string, args ...any) error {
		_, err := fmt.Fprintf(s.writer, format, args...)
		return err
	}
	println := func(args ...any) error {
		_, err := fmt.Fprintln(s.writer, args...)
		return err
	}

	if len(s.allowedStatuses) > 0 {
		if r, ok := v.(hook.Result); ok {
			if !s.allowedStatuses[string(r.Status)] {
				return nil
			}
		}
	}

	switch s.format {
	case "json":
		r, ok := v.(hook.Result)
		if !ok {
			// Ignore lifecycle events in JSON aggregate mode.
			return nil
		}
		s.results = append(s.results, r)
		return nil
	case "ndjson":
		encoder := json.NewEncoder(s.writer)
		switch t := v.(type) {
		case Event:
			if err := encoder.Encode(t); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		case hook.Result:
			e := eventFromResult(t)
			if err := encoder.Encode(e); err != nil {
				return err
			}
			return flushIfPossible(s.writer)
		default:
			return nil
		}
	case "text":
		r, ok := v.(hook.Result)
		if !ok {
			// Ignore lifecycle events in text mode.
			return nil
		}
		if err := printf("%s %s", statusTag(r.Status), r.HookID); err != nil {
			return err
		}
		if r.Message != "" {
			if err := printf(": %s", r.Message); err != nil {
				return err
			}
		}
		if err := println(); err != nil {
			return err
		}
		for _, f := range r.Findings {
			if err := println("  " + formatFinding(f)); err != nil {
				return err
			}
		}
		return flushIfPossible(s.writer)
	default:
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
}

func (s *ConsoleSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.format == "json" {
		encoder := json.NewEncoder(s.writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.results); err != nil {
			return err
		}
		return flushIfPossible(s.writer)
	}
	if s.format != "text" && s.format != "ndjson" {
		return fmt.Errorf("unsupported console format: %s", s.format)
	}
	return nil
}

// statusTag colors the bracketed status label. fatih/color turns itself
// off on non-terminals and when NO_COLOR is set.
func statusTag(st hook.Status) string {
	label := fmt.Sprintf("[%s]", st)
	switch st {
	case hook.StatusPass:
		return color.New(color.FgGreen).Sprint(label)
	case hook.StatusFail:
		return color.New(color.FgRed).Sprint(label)
	case hook.StatusSkipped:
		return color.New(color.FgYellow).Sprint(label)
	case hook.StatusError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	default:
		return label
	}
}

// formatFinding renders one finding as path:line: message, dropping the
// pieces the finding does not carry.
func formatFinding(f hook.Finding) string {
	switch {
	case f.Path == "":
		return f.Message
	case f.Line > 0:
		return fmt.Sprintf("%s:%d: %s", f.Path, f.Line, f.Message)
	default:
		return fmt.Sprintf("%s: %s", f.Path, f.Message)
	}
}

type flusher interface {
	Flush() error
}

// flushIfPossible keeps ndjson consumers fed line by line when the
// writer buffers, as bufio.Writer does.
func flushIfPossible(w io.Writer) error {
	f, ok := w.(flusher)
	if !ok {
		return nil
	}
	return f.Flush()
}

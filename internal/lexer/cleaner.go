// Package lexer strips comments and blank lines from VM source text,
// yielding one logical line per VM instruction. It never fails: malformed
// input is the parser's concern (spec.md §4.1, §7).
package lexer

import "strings"

// Cleaner lazily yields cleaned, comment-free, non-empty lines from a VM
// source text, preserving original line order. A single boolean -- whether
// a block comment is still open -- is the entirety of its carried state.
type Cleaner struct {
	lines          []string
	pos            int
	inBlockComment bool
}

// New builds a Cleaner over the given VM source text.
func New(text string) *Cleaner {
	return &Cleaner{lines: strings.Split(text, "\n")}
}

// Next returns the next cleaned, non-empty line, or ok=false once the
// source is exhausted.
func (c *Cleaner) Next() (line string, ok bool) {
	for c.pos < len(c.lines) {
		raw := c.lines[c.pos]
		c.pos++
		cleaned := c.clean(strings.TrimSpace(raw))
		if cleaned != "" {
			return cleaned, true
		}
	}
	return "", false
}

// clean removes `//` and `/* ... */` comments from a single already-trimmed
// line, honoring c.inBlockComment across calls. Nested block comments are
// not supported: the first "*/" closes the comment regardless of how many
// "/*" preceded it on the same line. An unterminated block comment silently
// consumes the rest of the input (spec.md §9).
func (c *Cleaner) clean(line string) string {
	if c.inBlockComment {
		if end := strings.Index(line, "*/"); end >= 0 {
			c.inBlockComment = false
			return c.clean(strings.TrimSpace(line[end+2:]))
		}
		return ""
	}

	if start := strings.Index(line, "//"); start >= 0 {
		return c.clean(strings.TrimSpace(line[:start]))
	}

	if start := strings.Index(line, "/*"); start >= 0 {
		before := strings.TrimSpace(line[:start])
		after := line[start+2:]
		if end := strings.Index(after, "*/"); end >= 0 {
			return c.clean(strings.TrimSpace(before + " " + strings.TrimSpace(after[end+2:])))
		}
		c.inBlockComment = true
		return before
	}

	return line
}

// Lines drains text through a fresh Cleaner and returns every cleaned line
// in order. Convenience wrapper used by tests and by callers that do not
// need the lazy pull interface.
func Lines(text string) []string {
	c := New(text)
	var out []string
	for {
		line, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, line)
	}
	return out
}

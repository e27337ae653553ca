package core

import (
	"slices"
	"strings"
)

// Entry is the central entity of the domain.
// It is a short key (e.g. a word), a free-text value that may span several
// lines, and optional tags that only take part in filtering.
type Entry struct {
	Key   string
	Value string
	Tags  []string
}

// NewEntry creates an Entry, stripping the indentation of the value.
// See Dedent for the exact rule.
func NewEntry(key, value string, tags ...string) Entry {
	return Entry{
		Key:   key,
		Value: Dedent(value),
		Tags:  slices.Clone(tags),
	}
}

// Lines splits the value into its lines.
// A trailing newline does not yield an extra empty line and a value without
// any newline is exactly one line.
func (e Entry) Lines() []string {
	return SplitLines(e.Value)
}

// Dedent removes the leading whitespace of the first non-blank line from
// every line that starts with it. Relative indentation is kept: a line one
// space deeper than the first stays one space deeper.
//
// Lines that do not start with that prefix are left as they are.
func Dedent(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")

	prefix := ""
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.TrimRight(trimmed, "\r") == "" {
			continue
		}
		prefix = line[:len(line)-len(trimmed)]
		break
	}
	if prefix == "" {
		return s
	}

	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}
	return strings.Join(lines, "\n")
}

// SplitLines splits s on newlines, dropping a single trailing newline and
// any carriage return that precedes a newline.
func SplitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

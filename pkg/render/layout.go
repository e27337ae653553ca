package render

import (
	"strings"
	"unicode/utf8"

	"github.com/aretw0/crib/pkg/core"
)

// separator sits between the key column and the value column.
const separator = "  "

// ColumnWidth returns the length in characters of the longest key.
// It is zero for an empty slice.
func ColumnWidth(entries []core.Entry) int {
	width := 0
	for _, e := range entries {
		width = max(width, utf8.RuneCountInString(e.Key))
	}
	return width
}

// FormatEntry renders one entry as one or more lines, without a trailing
// newline. The key is padded to width, the first value line follows on the
// same line and continuation lines are indented so their text starts under
// the first one. Tags are never printed.
func FormatEntry(e core.Entry, index, width int) string {
	var b strings.Builder
	lines := e.Lines()

	b.WriteString(ColorFor(index))
	b.WriteString(e.Key)
	b.WriteString(strings.Repeat(" ", max(0, width-utf8.RuneCountInString(e.Key))))
	b.WriteString(separator)
	b.WriteString(lines[0])

	indent := strings.Repeat(" ", width) + separator
	for _, line := range lines[1:] {
		b.WriteByte('\n')
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

// FormatEntries renders the selected entries, one block per entry, joined by
// a single newline. Colors alternate by position in entries.
func FormatEntries(entries []core.Entry) string {
	width := ColumnWidth(entries)
	blocks := make([]string, len(entries))
	for i, e := range entries {
		blocks[i] = FormatEntry(e, i, width)
	}
	return strings.Join(blocks, "\n")
}

// Package render turns a note collection and a list of command-line filters
// into colorized, column-aligned text.
package render

import (
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/aretw0/crib/pkg/core"
)

// Help flags. Only a single argument equal to one of them requests help.
const (
	HelpShort = "-h"
	HelpLong  = "--help"
)

// Notes is what the renderer needs from a collection: ordered iteration and
// a description.
type Notes interface {
	All() iter.Seq2[int, core.Entry]
	Description() string
}

// Mode is the dispatch state of one invocation.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
)

func (m Mode) String() string {
	if m == ModeHelp {
		return "help"
	}
	return "normal"
}

// Renderer renders a borrowed note collection.
type Renderer struct {
	notes   Notes
	program string
	logger  *slog.Logger
}

// New creates a Renderer for notes.
func New(notes Notes, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Renderer{
		notes:   notes,
		program: o.program,
		logger:  o.logger,
	}
}

// ModeFor returns ModeHelp when args is exactly one help flag.
func ModeFor(args []string) Mode {
	if len(args) == 1 && (args[0] == HelpShort || args[0] == HelpLong) {
		return ModeHelp
	}
	return ModeNormal
}

// Usage returns the usage line followed by a blank line and the description.
func (r *Renderer) Usage() string {
	return fmt.Sprintf("Usage: %s [filters]\n\n%s", r.program, r.notes.Description())
}

// Render produces the whole output for one invocation.
//
// In help mode the output is the usage text. Otherwise every argument is a
// filter; the selected entries are formatted and a color reset is appended,
// even when nothing matched. An invalid filter fails before any output.
func (r *Renderer) Render(args []string) (string, error) {
	mode := ModeFor(args)
	if mode == ModeHelp {
		r.logger.Debug("help requested", "program", r.program)
		return r.Usage(), nil
	}

	filters, err := CompileFilters(args)
	if err != nil {
		return "", err
	}

	var entries []core.Entry
	for _, e := range r.notes.All() {
		entries = append(entries, e)
	}
	selected := Select(entries, filters)

	r.logger.Debug("entries selected",
		"filters", len(filters),
		"total", len(entries),
		"selected", len(selected),
		"width", ColumnWidth(selected),
	)

	return FormatEntries(selected) + Reset, nil
}

// RenderTo renders args and writes the output followed by a newline.
// Nothing is written when rendering fails.
func (r *Renderer) RenderTo(w io.Writer, args []string) error {
	out, err := r.Render(args)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, out+"\n"); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

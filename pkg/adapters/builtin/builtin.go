// Package builtin provides the note collection compiled into the binary.
package builtin

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/aretw0/crib/pkg/adapters/fs"
	"github.com/aretw0/crib/pkg/core"
	"github.com/aretw0/introspection"
)

//go:embed notes.yaml
var notesYAML []byte

// Name is the file name reported for the embedded notes.
const Name = "notes.yaml"

// Source implements core.Source over the embedded notes.
type Source struct {
	data []byte
}

// NewSource returns a Source over the embedded notes.
func NewSource() *Source {
	return &Source{data: notesYAML}
}

// Load decodes the embedded notes. The data is fixed at build time, so an
// error here means the binary was built from a broken notes file.
func (s *Source) Load(ctx context.Context) (*core.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nb, err := fs.NewYAMLSerializer(true).Parse(bytes.NewReader(s.data), Name)
	if err != nil {
		return nil, fmt.Errorf("builtin notes: %w", err)
	}

	return core.Build(nb.Description, func(b *core.Builder) {
		for _, e := range nb.Entries {
			b.AddEntry(e)
		}
	}), nil
}

// SourceState exposes the embedded data size.
type SourceState struct {
	Name  string `json:"name"`
	Bytes int    `json:"bytes"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	return SourceState{Name: Name, Bytes: len(s.data)}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "source"
}

var _ core.Source = (*Source)(nil)
var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)

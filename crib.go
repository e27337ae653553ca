package crib

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/crib/internal/platform"
	"github.com/aretw0/crib/pkg/core"
	"github.com/aretw0/crib/pkg/render"
)

// --- Types ---

// Entry is a public alias for a single note.
type Entry = core.Entry

// Collection is a public alias for the immutable note collection.
type Collection = core.Collection

// Builder is a public alias for the collection builder.
type Builder = core.Builder

// Source is a public alias for the notes source contract.
type Source = core.Source

// Renderer is a public alias for the text renderer.
type Renderer = render.Renderer

// --- Configuration ---

// Option defines a functional option for configuring crib.
type Option = platform.Option

// WithLogger sets the logger for the source and the renderer.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource allows injecting a custom notes source.
func WithSource(source core.Source) Option {
	return platform.WithSource(source)
}

// WithAdapter allows specifying the source adapter by name ("builtin", "fs").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithPattern sets the include pattern for notes directories.
func WithPattern(pattern string) Option {
	return platform.WithPattern(pattern)
}

// WithStrict rejects unknown fields in structured notes files.
func WithStrict(strict bool) Option {
	return platform.WithStrict(strict)
}

// WithSerializer registers a custom fs.Serializer for a file extension.
func WithSerializer(ext string, s any) Option {
	return platform.WithSerializer(ext, s)
}

// WithProgramName sets the name shown in the usage line.
func WithProgramName(name string) Option {
	return platform.WithProgramName(name)
}

// --- Factory ---

// Build creates a collection from a builder callback.
func Build(description string, fn func(b *Builder)) *Collection {
	return core.Build(description, fn)
}

// New creates a service over the notes at path (the built-in notes when
// path is empty).
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Load reads the notes at path (the built-in notes when path is empty).
func Load(ctx context.Context, path string, opts ...Option) (*Collection, error) {
	return platform.Load(ctx, path, opts...)
}

// NewRenderer creates a renderer over a collection.
func NewRenderer(notes render.Notes, opts ...render.Option) *Renderer {
	return render.New(notes, opts...)
}

// --- Operations ---

// Run loads the notes at path, renders them for args and writes the result
// to w. It is the whole program minus process setup.
func Run(ctx context.Context, w io.Writer, path string, args []string, opts ...Option) error {
	return platform.Run(ctx, w, path, args, opts...)
}

// ResolveNotesPath expands "~" and makes a notes path absolute.
func ResolveNotesPath(path string) (string, error) {
	return platform.ResolveNotesPath(path)
}

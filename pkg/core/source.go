package core

import "context"

// Source defines the contract for loading a note collection.
// Adhering to this interface keeps the renderer independent of where the
// notes come from (embedded data, a file, a directory of files).
type Source interface {
	// Load reads the notes and returns the immutable collection.
	Load(ctx context.Context) (*Collection, error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func(ctx context.Context) (*Collection, error)

// Load calls f(ctx).
func (f SourceFunc) Load(ctx context.Context) (*Collection, error) {
	return f(ctx)
}

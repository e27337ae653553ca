package core

import (
	"iter"
	"slices"
)

// Collection is an ordered, immutable list of entries plus a human readable
// description. Duplicate keys are allowed.
type Collection struct {
	description string
	entries     []Entry
}

// Builder appends entries to a Collection under construction.
// It is only valid inside the callback passed to Build.
type Builder struct {
	entries []Entry
	sealed  bool
}

// Add appends a new entry built with NewEntry.
func (b *Builder) Add(key, value string, tags ...string) {
	b.AddEntry(NewEntry(key, value, tags...))
}

// AddEntry appends an already constructed entry.
// The value is taken as is; use Add to get the indentation stripped.
func (b *Builder) AddEntry(e Entry) {
	if b.sealed {
		panic("core: Builder used after Build returned")
	}
	e.Tags = slices.Clone(e.Tags)
	b.entries = append(b.entries, e)
}

// Build creates a Collection by running fn against a fresh Builder.
// The builder is sealed once fn returns.
func Build(description string, fn func(b *Builder)) *Collection {
	b := &Builder{}
	if fn != nil {
		fn(b)
	}
	b.sealed = true

	return &Collection{
		description: description,
		entries:     b.entries,
	}
}

// Description returns the human readable description of the collection.
func (c *Collection) Description() string {
	if c == nil {
		return ""
	}
	return c.description
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// All iterates the entries in their original order.
func (c *Collection) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		if c == nil {
			return
		}
		for i, e := range c.entries {
			e.Tags = slices.Clone(e.Tags)
			if !yield(i, e) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in their original order.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, 0, c.Len())
	for _, e := range c.All() {
		out = append(out, e)
	}
	return out
}

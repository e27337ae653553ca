package core

import (
	"github.com/aretw0/introspection"
)

// CollectionState exposes collection shape for observability.
type CollectionState struct {
	Entries     int `json:"entries"`
	Tagged      int `json:"tagged"`
	Multiline   int `json:"multiline"`
	Description int `json:"description_bytes"`
}

// State implements introspection.Introspectable.
func (c *Collection) State() any {
	state := CollectionState{
		Entries:     c.Len(),
		Description: len(c.Description()),
	}
	for _, e := range c.All() {
		if len(e.Tags) > 0 {
			state.Tagged++
		}
		if len(e.Lines()) > 1 {
			state.Multiline++
		}
	}
	return state
}

// ComponentType implements introspection.Component.
func (c *Collection) ComponentType() string {
	return "collection"
}

var _ introspection.Introspectable = (*Collection)(nil)
var _ introspection.Component = (*Collection)(nil)

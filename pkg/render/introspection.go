package render

import (
	"github.com/aretw0/introspection"
)

// RendererState exposes renderer configuration for observability.
type RendererState struct {
	Program string `json:"program"`
	Colors  int    `json:"colors"`
}

// State implements introspection.Introspectable.
func (r *Renderer) State() any {
	return RendererState{
		Program: r.program,
		Colors:  2,
	}
}

// ComponentType implements introspection.Component.
func (r *Renderer) ComponentType() string {
	return "renderer"
}

var _ introspection.Introspectable = (*Renderer)(nil)
var _ introspection.Component = (*Renderer)(nil)

package fs

import (
	"slices"
	"time"

	"github.com/aretw0/introspection"
)

// SourceState exposes internal state for observability.
type SourceState struct {
	Path        string     `json:"path"`
	Pattern     string     `json:"pattern"`
	Strict      bool       `json:"strict"`
	Serializers []string   `json:"serializers"`
	Files       []string   `json:"files,omitempty"`
	LastLoad    *time.Time `json:"last_load,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	serializers := make([]string, 0, len(s.serializers))
	for ext := range s.serializers {
		serializers = append(serializers, ext)
	}
	slices.Sort(serializers)

	return SourceState{
		Path:        s.Path,
		Pattern:     s.config.Pattern,
		Strict:      s.config.Strict,
		Serializers: serializers,
		Files:       slices.Clone(s.files),
		LastLoad:    s.lastLoad,
	}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "source"
}

var _ introspection.Introspectable = (*Source)(nil)
var _ introspection.Component = (*Source)(nil)

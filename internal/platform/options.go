package platform

import (
	"log/slog"

	"github.com/aretw0/crib/pkg/core"
)

// options holds the internal configuration for crib.
type options struct {
	source      core.Source
	logger      *slog.Logger
	adapter     string
	program     string
	config      map[string]interface{}
	serializers map[string]any
}

// Option defines a functional option for configuring crib.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		source:      nil,
		logger:      nil,
		adapter:     "",
		program:     "crib",
		config:      make(map[string]interface{}),
		serializers: make(map[string]any),
	}
}

// WithSerializer registers a custom serializer for a specific extension.
// The serializer 's' must implement fs.Serializer; this is checked when the
// source is created.
func WithSerializer(ext string, s any) Option {
	return func(o *options) {
		o.serializers[ext] = s
	}
}

// WithLogger sets the logger for the source and the renderer.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource allows injecting a custom notes source.
// If provided, the adapter selection is skipped.
func WithSource(source core.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithAdapter selects the source adapter by name ("builtin" or "fs").
// By default the built-in notes are used when no path is given and the
// filesystem otherwise.
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithPattern sets the doublestar pattern used when the notes path is a
// directory.
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.config["pattern"] = pattern
	}
}

// WithStrict rejects unknown fields in YAML, JSON and frontmatter.
func WithStrict(strict bool) Option {
	return func(o *options) {
		o.config["strict"] = strict
	}
}

// WithProgramName sets the name shown in the usage line.
func WithProgramName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.program = name
		}
	}
}

package render

import (
	"io"
	"log/slog"
)

// options holds the configuration of a Renderer.
type options struct {
	program string
	logger  *slog.Logger
}

// Option defines a functional option for configuring a Renderer.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		program: "crib",
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithProgramName sets the name printed in the usage line.
func WithProgramName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.program = name
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

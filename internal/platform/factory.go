package platform

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/crib/pkg/core"
	"github.com/aretw0/crib/pkg/render"
	"github.com/aretw0/introspection"
)

// New creates a core.Service over the configured source.
//
//	svc, err := crib.New("~/notes", crib.WithStrict(true))
func New(uri string, opts ...Option) (*core.Service, error) {
	source, err := Init(uri, opts...)
	if err != nil {
		return nil, err
	}
	return core.NewService(source), nil
}

// Run loads the notes and renders them for one invocation, writing the
// result to w. args are the raw command-line arguments.
func Run(ctx context.Context, w io.Writer, uri string, args []string, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	source, err := initSource(uri, o)
	if err != nil {
		return err
	}
	logState(logger, source)

	collection, err := core.NewService(source).Collection(ctx)
	if err != nil {
		return err
	}
	logState(logger, collection)

	renderer := render.New(collection,
		render.WithProgramName(o.program),
		render.WithLogger(logger),
	)
	logState(logger, renderer)

	return renderer.RenderTo(w, args)
}

// logState reports the state of introspectable components at debug level.
func logState(logger *slog.Logger, v any) {
	comp, ok := v.(introspection.Component)
	if !ok {
		return
	}
	if in, ok := v.(introspection.Introspectable); ok {
		logger.Debug("component state", "component", comp.ComponentType(), "state", in.State())
	}
}

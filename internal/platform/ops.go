package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/crib/pkg/adapters/builtin"
	"github.com/aretw0/crib/pkg/adapters/fs"
	"github.com/aretw0/crib/pkg/core"
)

// Init selects and configures the notes source.
// The 'uri' argument is adapter-specific: a file or directory path for 'fs',
// ignored by 'builtin'. With no adapter configured, an empty uri selects the
// built-in notes.
func Init(uri string, opts ...Option) (core.Source, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return initSource(uri, o)
}

func initSource(uri string, o *options) (core.Source, error) {
	// 1. Check for injected source
	if o.source != nil {
		return o.source, nil
	}

	// 2. Initialize based on Adapter
	adapter := o.adapter
	if adapter == "" {
		adapter = "fs"
		if uri == "" {
			adapter = "builtin"
		}
	}

	switch adapter {
	case "builtin":
		return builtin.NewSource(), nil
	case "fs":
		return initFS(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", adapter)
	}
}

// initFS handles the initialization logic for the filesystem adapter.
func initFS(path string, o *options) (core.Source, error) {
	if path == "" {
		return nil, fmt.Errorf("fs adapter requires a notes path")
	}

	resolved, err := ResolveNotesPath(path)
	if err != nil {
		return nil, err
	}

	pattern, _ := o.config["pattern"].(string)
	strict, _ := o.config["strict"].(bool)

	source := fs.NewSource(fs.Config{
		Path:    resolved,
		Pattern: pattern,
		Strict:  strict,
		Logger:  o.logger,
	})

	// Register Custom Serializers
	for ext, s := range o.serializers {
		serializer, ok := s.(fs.Serializer)
		if !ok {
			if o.logger != nil {
				o.logger.Warn("invalid serializer type ignored", "ext", ext, "expected", "fs.Serializer")
			}
			return nil, fmt.Errorf("serializer for %s must implement fs.Serializer", ext)
		}
		source.RegisterSerializer(ext, serializer)
	}

	return source, nil
}

// Load initializes the source and loads the collection.
func Load(ctx context.Context, uri string, opts ...Option) (*core.Collection, error) {
	service, err := New(uri, opts...)
	if err != nil {
		return nil, err
	}
	return service.Collection(ctx)
}

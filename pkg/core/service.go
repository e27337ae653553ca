package core

import (
	"context"
	"errors"
	"sync"
)

// Service handles loading the note collection.
type Service struct {
	source Source

	mu         sync.RWMutex
	collection *Collection
}

// NewService creates a new Service.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// Collection loads the collection from the source on first use and returns
// the same immutable value afterwards.
func (s *Service) Collection(ctx context.Context) (*Collection, error) {
	s.mu.RLock()
	c := s.collection
	s.mu.RUnlock()
	if c != nil {
		return c, nil
	}

	if s.source == nil {
		return nil, errors.New("no notes source configured")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collection != nil {
		return s.collection, nil
	}

	c, err := s.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.New("notes source returned no collection")
	}

	s.collection = c
	return c, nil
}

// Source returns the underlying source.
func (s *Service) Source() Source {
	return s.source
}

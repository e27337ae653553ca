package core_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/crib/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSource counts how many times the collection is loaded.
type MockSource struct {
	calls      int
	collection *core.Collection
	err        error
}

func (m *MockSource) Load(ctx context.Context) (*core.Collection, error) {
	m.calls++
	return m.collection, m.err
}

func TestService_LoadsOnce(t *testing.T) {
	src := &MockSource{collection: core.Build("desc", func(b *core.Builder) {
		b.Add("k", "v")
	})}
	service := core.NewService(src)
	ctx := context.TODO()

	c1, err := service.Collection(ctx)
	require.NoError(t, err)
	c2, err := service.Collection(ctx)
	require.NoError(t, err)

	assert.Same(t, c1, c2)
	assert.Equal(t, 1, src.calls)
	assert.Equal(t, "desc", c1.Description())
}

func TestService_SourceError(t *testing.T) {
	boom := errors.New("boom")
	service := core.NewService(&MockSource{err: boom})

	_, err := service.Collection(context.TODO())
	assert.ErrorIs(t, err, boom)
}

func TestService_NilCollection(t *testing.T) {
	service := core.NewService(&MockSource{})

	_, err := service.Collection(context.TODO())
	assert.Error(t, err)
}

func TestService_NoSource(t *testing.T) {
	service := core.NewService(nil)

	_, err := service.Collection(context.TODO())
	assert.Error(t, err)
}

func TestService_KeepsEmptyKey(t *testing.T) {
	src := core.SourceFunc(func(ctx context.Context) (*core.Collection, error) {
		return core.Build("", func(b *core.Builder) {
			b.Add("ok", "v")
			b.Add("", "orphan")
		}), nil
	})
	service := core.NewService(src)

	c, err := service.Collection(context.TODO())
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "", c.Entries()[1].Key)
	assert.Equal(t, "orphan", c.Entries()[1].Value)
}

package core

import (
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	c := Build("words I keep forgetting", func(b *Builder) {
		b.Add("k", "value1")
		b.Add("key", "value2", "tag1")
		b.Add("k", "duplicate keys are fine")
	})

	require.Equal(t, 3, c.Len())
	assert.Equal(t, "words I keep forgetting", c.Description())

	entries := c.Entries()
	assert.Equal(t, "k", entries[0].Key)
	assert.Equal(t, "key", entries[1].Key)
	assert.Equal(t, []string{"tag1"}, entries[1].Tags)
	assert.Equal(t, "duplicate keys are fine", entries[2].Value)
}

func TestCollection_Immutable(t *testing.T) {
	c := Build("", func(b *Builder) {
		b.Add("key", "value", "tag")
	})

	entries := c.Entries()
	entries[0].Key = "changed"
	entries[0].Tags[0] = "changed"

	for _, e := range c.All() {
		assert.Equal(t, "key", e.Key)
		assert.Equal(t, []string{"tag"}, e.Tags)
	}
}

func TestCollection_AllStopsEarly(t *testing.T) {
	c := Build("", func(b *Builder) {
		for i := range 5 {
			b.Add(fmt.Sprint(i), "v")
		}
	})

	var seen []int
	for i := range c.All() {
		seen = append(seen, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, seen)
}

func TestBuilder_SealedAfterBuild(t *testing.T) {
	var leaked *Builder
	Build("", func(b *Builder) { leaked = b })

	assert.Panics(t, func() { leaked.Add("late", "entry") })
}

func TestCollection_Nil(t *testing.T) {
	var c *Collection
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "", c.Description())
	assert.Empty(t, c.Entries())
}

func TestCollection_State(t *testing.T) {
	c := Build("abc", func(b *Builder) {
		b.Add("one", "single")
		b.Add("two", "first\nsecond", "t")
	})

	state, ok := c.State().(CollectionState)
	require.True(t, ok)
	assert.Equal(t, CollectionState{Entries: 2, Tagged: 1, Multiline: 1, Description: 3}, state)
	assert.Equal(t, "collection", c.ComponentType())
}

func TestInvalidFilterPatternError(t *testing.T) {
	_, reErr := regexp.Compile("(")
	err := error(&InvalidFilterPatternError{Pattern: "(", Err: reErr})

	assert.True(t, errors.Is(err, ErrInvalidFilterPattern))
	assert.Contains(t, err.Error(), `"("`)

	var target *InvalidFilterPatternError
	require.True(t, errors.As(fmt.Errorf("wrapped: %w", err), &target))
	assert.Equal(t, "(", target.Pattern)
}

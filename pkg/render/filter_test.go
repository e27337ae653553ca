package render

import (
	"errors"
	"testing"

	"github.com/aretw0/crib/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileFilters(t *testing.T) {
	filters, err := CompileFilters([]string{"Foo", "^ba+r$", "x|y"})
	require.NoError(t, err)
	require.Len(t, filters, 3)

	assert.True(t, filters[0].MatchString("a FOO b"))
	assert.True(t, filters[1].MatchString("BAAR"))
	assert.True(t, filters[2].MatchString("Y"))
}

func TestCompileFilters_Empty(t *testing.T) {
	filters, err := CompileFilters(nil)
	require.NoError(t, err)
	assert.Empty(t, filters)
}

func TestCompileFilters_Invalid(t *testing.T) {
	filters, err := CompileFilters([]string{"ok", "(unclosed", "[also"})
	require.Error(t, err)
	assert.Nil(t, filters)
	assert.True(t, errors.Is(err, core.ErrInvalidFilterPattern))

	var perr *core.InvalidFilterPatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "(unclosed", perr.Pattern)
	assert.Contains(t, err.Error(), "(unclosed")
	assert.NotContains(t, err.Error(), "(?i)")
}

func TestSelect(t *testing.T) {
	entries := []core.Entry{
		core.NewEntry("apple", "a red fruit", "food"),
		core.NewEntry("anvil", "heavy\niron block", "tool"),
		core.NewEntry("banana", "yellow", "food", "tropical"),
		core.NewEntry("Cherry", "tiny"),
	}

	tests := []struct {
		name    string
		filters []string
		want    []string
	}{
		{"no filters", nil, []string{"apple", "anvil", "banana", "Cherry"}},
		{"key", []string{"^a"}, []string{"apple", "anvil"}},
		{"case insensitive", []string{"cherry"}, []string{"Cherry"}},
		{"value", []string{"RED"}, []string{"apple"}},
		{"multi-line value", []string{"iron"}, []string{"anvil"}},
		{"across lines", []string{"heavy.iron"}, nil},
		{"newline in pattern", []string{`heavy\niron`}, []string{"anvil"}},
		{"tag", []string{"food"}, []string{"apple", "banana"}},
		{"and across filters", []string{"food", "tropical"}, []string{"banana"}},
		{"fields may differ per filter", []string{"food", "red"}, []string{"apple"}},
		{"nothing", []string{"zzz"}, nil},
		{"redundant filters", []string{"an", "AN"}, []string{"anvil", "banana"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			filters, err := CompileFilters(tc.filters)
			require.NoError(t, err)

			var got []string
			for _, e := range Select(entries, filters) {
				got = append(got, e.Key)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelect_TagConjunction(t *testing.T) {
	entries := []core.Entry{
		core.NewEntry("one", "first", "tag1"),
		core.NewEntry("two", "second", "tag1", "tag2"),
	}
	filters, err := CompileFilters([]string{"tag1", "tag2"})
	require.NoError(t, err)

	selected := Select(entries, filters)
	require.Len(t, selected, 1)
	assert.Equal(t, "two", selected[0].Key)
}

// Every selected entry satisfies all filters and every rejected one fails at
// least one of them.
func TestSelect_Property(t *testing.T) {
	entries := []core.Entry{
		core.NewEntry("alpha", "first letter", "greek"),
		core.NewEntry("beta", "second letter", "greek"),
		core.NewEntry("aleph", "first letter", "hebrew"),
		core.NewEntry("a", "article"),
	}
	filterSets := [][]string{{}, {"first"}, {"greek"}, {"letter", "h"}, {"^a", "e"}, {"x"}}

	for _, set := range filterSets {
		filters, err := CompileFilters(set)
		require.NoError(t, err)

		selected := map[string]bool{}
		for _, e := range Select(entries, filters) {
			selected[e.Key] = true
		}
		for _, e := range entries {
			want := true
			for _, f := range filters {
				hit := f.MatchString(e.Key) || f.MatchString(e.Value)
				for _, tag := range e.Tags {
					hit = hit || f.MatchString(tag)
				}
				want = want && hit
			}
			assert.Equal(t, want, selected[e.Key], "filters %v entry %s", set, e.Key)
		}
	}
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/aretw0/crib/pkg/core"
	"github.com/aretw0/crib/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer

	cmd := newRootCmd("crib")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err = execute(context.Background(), cmd, args)
	return out.String(), errOut.String(), err
}

func writeNotes(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte(heredoc.Doc(`
		description: Test words.
		notes:
		  - key: one
		    value: first
		    tags: [tag1]
		  - key: two
		    value: |
		      second
		       deeper
		    tags: [tag1, tag2]
	`)), 0644))
	return path
}

func TestRoot_AllNotes(t *testing.T) {
	t.Setenv("CRIB_NOTES", writeNotes(t))

	stdout, _, err := runCmd(t)
	require.NoError(t, err)
	assert.Equal(t, render.ColorA+"one  first\n"+render.ColorB+"two  second\n      deeper"+render.Reset+"\n", stdout)
}

func TestRoot_Filters(t *testing.T) {
	t.Setenv("CRIB_NOTES", writeNotes(t))

	stdout, _, err := runCmd(t, "tag1", "tag2")
	require.NoError(t, err)
	assert.Equal(t, render.ColorA+"two  second\n      deeper"+render.Reset+"\n", stdout)
}

func TestRoot_Help(t *testing.T) {
	t.Setenv("CRIB_NOTES", writeNotes(t))

	for _, flag := range []string{"-h", "--help"} {
		stdout, _, err := runCmd(t, flag)
		require.NoError(t, err)
		assert.Equal(t, "Usage: crib [filters]\n\nTest words.\n", stdout)
	}
}

func TestRoot_HelpWithFiltersIsFiltering(t *testing.T) {
	t.Setenv("CRIB_NOTES", writeNotes(t))

	stdout, _, err := runCmd(t, "-h", "one")
	require.NoError(t, err)
	assert.Equal(t, render.Reset+"\n", stdout)
}

func TestRoot_InvalidFilter(t *testing.T) {
	t.Setenv("CRIB_NOTES", writeNotes(t))

	stdout, _, err := runCmd(t, "one", "(")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidFilterPattern)
	assert.Contains(t, err.Error(), `"("`)
	assert.Empty(t, stdout)
}

func writeCommandWords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte(heredoc.Doc(`
		description: Words cobra would like to own.
		notes:
		  - key: completion
		    value: the act of finishing
		  - key: help
		    value: getting help
		  - key: __complete
		    value: not quite done
		    tags: [bash]
	`)), 0644))
	return path
}

func TestRoot_CommandNamesAreFilters(t *testing.T) {
	t.Setenv("CRIB_NOTES", writeCommandWords(t))

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"completion", []string{"completion"},
			render.ColorA + "completion  the act of finishing" + render.Reset + "\n"},
		{"completion bash", []string{"completion", "bash"},
			render.Reset + "\n"},
		{"__complete", []string{"__complete"},
			render.ColorA + "__complete  not quite done" + render.Reset + "\n"},
		{"__complete bash", []string{"__complete", "bash"},
			render.ColorA + "__complete  not quite done" + render.Reset + "\n"},
		{"__completeNoDesc", []string{"__completeNoDesc"},
			render.Reset + "\n"},
		{"help", []string{"help"},
			render.ColorA + "help  getting help" + render.Reset + "\n"},
		{"terminator", []string{"--"},
			render.Reset + "\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stdout, _, err := runCmd(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestRoot_Builtin(t *testing.T) {
	t.Setenv("CRIB_NOTES", "")

	stdout, _, err := runCmd(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "vocabulary")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	t.Setenv("CRIB_NOTES", writeNotes(t))
	t.Setenv("CRIB_VERBOSE", "true")

	stdout, stderr, err := runCmd(t, "one")
	require.NoError(t, err)
	assert.Equal(t, render.ColorA+"one  first"+render.Reset+"\n", stdout)
	assert.Contains(t, stderr, "level=DEBUG")
	assert.Contains(t, stderr, "entries selected")
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("CRIB_NOTES", "~/notes")
	t.Setenv("CRIB_PATTERN", "*.md")
	t.Setenv("CRIB_STRICT", "1")

	cfg := loadConfig()
	assert.Equal(t, "~/notes", cfg.Notes)
	assert.Equal(t, "*.md", cfg.Pattern)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.Verbose)
}

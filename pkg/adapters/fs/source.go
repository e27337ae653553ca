package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/crib/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects every supported notes file below a directory.
const DefaultPattern = "**/*.{yaml,yml,json,csv,hcl,md}"

// Config holds the configuration for the filesystem source.
type Config struct {
	Path    string       // File or directory holding the notes.
	Pattern string       // doublestar pattern applied when Path is a directory.
	Strict  bool         // Reject unknown fields in structured formats.
	Logger  *slog.Logger // Defaults to a discarding logger.
}

// Source implements core.Source by reading notes files from disk.
type Source struct {
	Path        string
	config      Config
	serializers map[string]Serializer

	mu       sync.RWMutex
	files    []string
	lastLoad *time.Time
}

// NewSource creates a new filesystem-backed source.
func NewSource(config Config) *Source {
	if config.Pattern == "" {
		config.Pattern = DefaultPattern
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Source{
		Path:        config.Path,
		config:      config,
		serializers: DefaultSerializers(config.Strict),
	}
}

// RegisterSerializer adds or replaces the serializer for an extension
// (including the leading dot, e.g. ".toml").
func (s *Source) RegisterSerializer(ext string, serializer Serializer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serializers[strings.ToLower(ext)] = serializer
}

// Load reads the notes file, or every matching file when Path is a
// directory, and builds the collection.
//
// Directory files are read in lexical path order and their entries are
// concatenated in that order. The description is the first non-empty one.
func (s *Source) Load(ctx context.Context) (*core.Collection, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes: %w", err)
	}

	var files []string
	if info.IsDir() {
		files, err = s.match()
		if err != nil {
			return nil, err
		}
	} else {
		files = []string{s.Path}
	}

	var notebooks []*Notebook
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nb, err := s.parseFile(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		s.config.Logger.Debug("notes file loaded", "file", file, "entries", len(nb.Entries))
		notebooks = append(notebooks, nb)
	}

	description := ""
	for _, nb := range notebooks {
		if nb.Description != "" {
			description = nb.Description
			break
		}
	}

	collection := core.Build(description, func(b *core.Builder) {
		for _, nb := range notebooks {
			for _, e := range nb.Entries {
				b.AddEntry(e)
			}
		}
	})

	s.recordLoad(files)
	return collection, nil
}

// match lists the files below the directory that match the pattern,
// skipping hidden files and directories.
func (s *Source) match() ([]string, error) {
	if !doublestar.ValidatePattern(s.config.Pattern) {
		return nil, fmt.Errorf("invalid notes pattern: %q", s.config.Pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(s.Path), s.config.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if isHidden(m) {
			continue
		}
		files = append(files, filepath.Join(s.Path, filepath.FromSlash(m)))
	}
	slices.Sort(files)
	return files, nil
}

func (s *Source) parseFile(file string) (*Notebook, error) {
	ext := strings.ToLower(filepath.Ext(file))

	s.mu.RLock()
	serializer, ok := s.serializers[ext]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return serializer.Parse(f, filepath.Base(file))
}

func (s *Source) recordLoad(files []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.files = files
	s.lastLoad = &now
}

// isHidden reports whether any segment of a slash separated path starts
// with a dot (".git", ".obsidian", ...).
func isHidden(p string) bool {
	for _, segment := range strings.Split(path.Clean(p), "/") {
		if strings.HasPrefix(segment, ".") && segment != "." {
			return true
		}
	}
	return false
}

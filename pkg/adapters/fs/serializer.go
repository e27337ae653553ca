package fs

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aretw0/crib/pkg/core"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// Notebook is the decoded content of a single notes file.
type Notebook struct {
	Description string
	Entries     []core.Entry
}

// Serializer defines how to read a specific file format.
type Serializer interface {
	// Parse reads from r and returns the notes it holds.
	// name is the file name, used for defaults and error messages.
	Parse(r io.Reader, name string) (*Notebook, error)
}

// DefaultSerializers returns the standard set of serializers.
func DefaultSerializers(strict bool) map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(strict),
		".yaml": NewYAMLSerializer(strict),
		".yml":  NewYAMLSerializer(strict),
		".csv":  NewCSVSerializer(),
		".hcl":  NewHCLSerializer(),
		".md":   NewMarkdownSerializer(strict),
	}
}

// notebookFile is the shared YAML/JSON layout.
type notebookFile struct {
	Description string     `yaml:"description" json:"description"`
	Notes       []noteFile `yaml:"notes" json:"notes"`
}

type noteFile struct {
	Key   string   `yaml:"key" json:"key"`
	Value string   `yaml:"value" json:"value"`
	Tags  []string `yaml:"tags" json:"tags"`
}

func (f notebookFile) notebook() *Notebook {
	nb := &Notebook{Description: f.Description}
	for _, n := range f.Notes {
		nb.Entries = append(nb.Entries, core.NewEntry(n.Key, n.Value, n.Tags...))
	}
	return nb
}

// --- JSON Serializer ---

// JSONSerializer handles reading JSON files.
type JSONSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer(strict bool) *JSONSerializer {
	return &JSONSerializer{Strict: strict}
}

func (s *JSONSerializer) Parse(r io.Reader, name string) (*Notebook, error) {
	var payload notebookFile
	decoder := json.NewDecoder(r)
	if s.Strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return payload.notebook(), nil
}

// --- YAML Serializer ---

// YAMLSerializer handles reading YAML files.
type YAMLSerializer struct {
	// Strict rejects unknown fields.
	Strict bool
}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer(strict bool) *YAMLSerializer {
	return &YAMLSerializer{Strict: strict}
}

func (s *YAMLSerializer) Parse(r io.Reader, name string) (*Notebook, error) {
	var payload notebookFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(s.Strict)
	if err := decoder.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return &Notebook{}, nil
		}
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return payload.notebook(), nil
}

// --- HCL Serializer ---

type hclNotebook struct {
	Description string    `hcl:"description,optional"`
	Notes       []hclNote `hcl:"note,block"`
}

type hclNote struct {
	Key   string   `hcl:"key,label"`
	Value string   `hcl:"value"`
	Tags  []string `hcl:"tags,optional"`
}

// HCLSerializer handles reading HCL files made of `note "<key>" { ... }` blocks.
type HCLSerializer struct{}

// NewHCLSerializer creates a new HCL serializer.
func NewHCLSerializer() *HCLSerializer {
	return &HCLSerializer{}
}

func (s *HCLSerializer) Parse(r io.Reader, name string) (*Notebook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid hcl: %w", diags)
	}

	var payload hclNotebook
	if diags := gohcl.DecodeBody(file.Body, nil, &payload); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode hcl: %w", diags)
	}

	nb := &Notebook{Description: payload.Description}
	for _, n := range payload.Notes {
		nb.Entries = append(nb.Entries, core.NewEntry(n.Key, n.Value, n.Tags...))
	}
	return nb, nil
}

// --- Markdown Serializer ---

type frontmatter struct {
	Key         string   `yaml:"key"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
}

// MarkdownSerializer reads one entry per file: the optional YAML frontmatter
// holds the key and tags, the body is the value. The key defaults to the
// file name without extension.
type MarkdownSerializer struct {
	// Strict rejects unknown frontmatter fields.
	Strict bool
}

// NewMarkdownSerializer creates a new Markdown serializer.
func NewMarkdownSerializer(strict bool) *MarkdownSerializer {
	return &MarkdownSerializer{Strict: strict}
}

func (s *MarkdownSerializer) Parse(r io.Reader, name string) (*Notebook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var meta frontmatter
	body := string(data)

	if bytes.HasPrefix(data, []byte("---\n")) || bytes.HasPrefix(data, []byte("---\r\n")) {
		rest := data[3:]
		parts := bytes.SplitN(rest, []byte("\n---"), 2)
		if len(parts) == 1 {
			return nil, errors.New("frontmatter started but no closing delimiter found")
		}

		decoder := yaml.NewDecoder(bytes.NewReader(parts[0]))
		decoder.KnownFields(s.Strict)
		if err := decoder.Decode(&meta); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}

		body = strings.TrimPrefix(string(parts[1]), "\r")
		body = strings.TrimPrefix(body, "\n")
	}

	key := meta.Key
	if key == "" {
		base := filepath.Base(name)
		key = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return &Notebook{
		Description: meta.Description,
		Entries:     []core.Entry{core.NewEntry(key, strings.TrimRight(body, "\r\n"), meta.Tags...)},
	}, nil
}

// --- CSV Serializer ---

// CSVSerializer reads a header row naming the key, value and (optional) tags
// columns, then one entry per row.
type CSVSerializer struct{}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

func (s *CSVSerializer) Parse(r io.Reader, name string) (*Notebook, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return &Notebook{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	keyCol, valueCol, tagsCol := -1, -1, -1
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "key":
			keyCol = i
		case "value":
			valueCol = i
		case "tags":
			tagsCol = i
		}
	}
	if keyCol < 0 || valueCol < 0 {
		return nil, errors.New("csv header must name a key and a value column")
	}

	nb := &Notebook{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if len(row) != len(headers) {
			return nil, fmt.Errorf("csv row length mismatch")
		}

		var tags []string
		if tagsCol >= 0 {
			tags = UnmarshalCSVTags(row[tagsCol])
		}
		nb.Entries = append(nb.Entries, core.NewEntry(row[keyCol], row[valueCol], tags...))
	}
	return nb, nil
}

// --- Helpers ---

// UnmarshalCSVTags reads a tags cell. A cell that looks like a JSON array
// (`["a","b"]`) is decoded as one, anything else is split on semicolons.
// Empty items are dropped.
//
// CAVEAT: a tag list whose raw text happens to start with "[" and end with
// "]" but is not valid JSON falls back to the semicolon form.
func UnmarshalCSVTags(val string) []string {
	valTrimmed := strings.TrimSpace(val)
	if valTrimmed == "" {
		return nil
	}

	if strings.HasPrefix(valTrimmed, "[") && strings.HasSuffix(valTrimmed, "]") {
		var parsed []string
		if err := json.Unmarshal([]byte(valTrimmed), &parsed); err == nil {
			return parsed
		}
	}

	var tags []string
	for _, t := range strings.Split(valTrimmed, ";") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

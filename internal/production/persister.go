// Package production provides the adapters around the search engine:
// puzzle file persistence, event publishing, and solution rendering.
package production

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/comalice/watersort/internal/primitives"
)

// ErrUnsupportedFormat is returned for file extensions other than .json,
// .yaml and .yml.
var ErrUnsupportedFormat = errors.New("unsupported puzzle format")

// Format selects the puzzle file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// PuzzleFile is the on-disk puzzle representation. Tubes list color names
// bottom first; an empty list is an empty tube. The solution fields are
// written by Persister.Save and ignored when a file is loaded as a puzzle.
type PuzzleFile struct {
	Name     string     `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,max=128"`
	Capacity int        `json:"capacity,omitempty" yaml:"capacity,omitempty" validate:"omitempty,min=1,max=255"`
	Tubes    [][]string `json:"tubes" yaml:"tubes" validate:"required,min=1,dive,dive,required"`

	Status   string              `json:"status,omitempty" yaml:"status,omitempty"`
	RunID    string              `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Solution primitives.Solution `json:"solution,omitempty" yaml:"solution,omitempty"`
	SavedAt  *time.Time          `json:"saved_at,omitempty" yaml:"saved_at,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Puzzle converts f to a validated Puzzle. A zero capacity means
// primitives.DefaultCapacity.
func (f PuzzleFile) Puzzle() (primitives.Puzzle, error) {
	if err := validate.Struct(f); err != nil {
		return primitives.Puzzle{}, fmt.Errorf("%w: %v", primitives.ErrInvalidState, err)
	}
	capacity := f.Capacity
	if capacity == 0 {
		capacity = primitives.DefaultCapacity
	}
	palette := &primitives.Palette{}
	tubes := make([]primitives.Tube, len(f.Tubes))
	for i, names := range f.Tubes {
		t, err := palette.Tube(names...)
		if err != nil {
			return primitives.Puzzle{}, fmt.Errorf("tube %d: %w", i, err)
		}
		tubes[i] = t
	}
	state := primitives.State{Capacity: capacity, Tubes: tubes}
	if err := state.Validate(); err != nil {
		return primitives.Puzzle{}, err
	}
	return primitives.Puzzle{Name: f.Name, State: state, Palette: palette}, nil
}

// NewPuzzleFile converts p back to its file form.
func NewPuzzleFile(p primitives.Puzzle) PuzzleFile {
	tubes := p.ColorNames(p.State)
	for i := range tubes {
		if tubes[i] == nil {
			tubes[i] = []string{}
		}
	}
	return PuzzleFile{Name: p.Name, Capacity: p.State.Capacity, Tubes: tubes}
}

// DecodePuzzle parses and validates a puzzle document.
func DecodePuzzle(data []byte, format Format) (primitives.Puzzle, error) {
	var f PuzzleFile
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return primitives.Puzzle{}, fmt.Errorf("json unmarshal: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return primitives.Puzzle{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	default:
		return primitives.Puzzle{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return f.Puzzle()
}

// EncodePuzzleFile serializes f in the given format.
func EncodePuzzleFile(f PuzzleFile, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(f)
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// LoadPuzzleFile reads a puzzle, choosing the decoder by extension.
// A missing file keeps os.ErrNotExist in the error chain.
func LoadPuzzleFile(path string) (primitives.Puzzle, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return primitives.Puzzle{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return primitives.Puzzle{}, fmt.Errorf("read %s: %w", path, err)
	}
	p, err := DecodePuzzle(data, format)
	if err != nil {
		return primitives.Puzzle{}, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Record is a puzzle together with the outcome of solving it.
type Record struct {
	Puzzle   primitives.Puzzle
	Status   string
	RunID    string
	Solution primitives.Solution
	SavedAt  time.Time
}

// Persister stores solved puzzle records by puzzle name.
type Persister interface {
	Save(ctx context.Context, rec Record) error
	Load(ctx context.Context, name string) (Record, error)
}

// filePersister implements Persister for one Format in one directory.
type filePersister struct {
	dir    string
	format Format
	ext    string
}

func newFilePersister(dir string, format Format, ext string) (*filePersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &filePersister{dir: dir, format: format, ext: ext}, nil
}

func (p *filePersister) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid record name %q", name)
	}
	return filepath.Join(p.dir, name+p.ext), nil
}

func (p *filePersister) Save(ctx context.Context, rec Record) error {
	fn, err := p.path(rec.Puzzle.Name)
	if err != nil {
		return err
	}
	f := NewPuzzleFile(rec.Puzzle)
	f.Status = rec.Status
	f.RunID = rec.RunID
	f.Solution = rec.Solution
	if !rec.SavedAt.IsZero() {
		saved := rec.SavedAt.UTC()
		f.SavedAt = &saved
	}

	data, err := EncodePuzzleFile(f, p.format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return nil
}

func (p *filePersister) Load(ctx context.Context, name string) (Record, error) {
	fn, err := p.path(name)
	if err != nil {
		return Record{}, err
	}
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, fmt.Errorf("puzzle %q: %w", name, os.ErrNotExist)
		}
		return Record{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var f PuzzleFile
	switch p.format {
	case FormatJSON:
		err = json.Unmarshal(data, &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return Record{}, fmt.Errorf("%s unmarshal: %w", p.format, err)
	}
	puzzle, err := f.Puzzle()
	if err != nil {
		return Record{}, fmt.Errorf("puzzle validation after load: %w", err)
	}
	puzzle.Name = name

	rec := Record{Puzzle: puzzle, Status: f.Status, RunID: f.RunID, Solution: f.Solution}
	if f.SavedAt != nil {
		rec.SavedAt = *f.SavedAt
	}
	return rec, nil
}

// JSONPersister stores records as indented JSON files.
type JSONPersister struct{ *filePersister }

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	fp, err := newFilePersister(dir, FormatJSON, ".json")
	if err != nil {
		return nil, err
	}
	return &JSONPersister{fp}, nil
}

// YAMLPersister stores records as YAML files.
type YAMLPersister struct{ *filePersister }

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	fp, err := newFilePersister(dir, FormatYAML, ".yaml")
	if err != nil {
		return nil, err
	}
	return &YAMLPersister{fp}, nil
}

// Package presets holds the built-in puzzles selectable by name.
package presets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/comalice/watersort/internal/primitives"
	"github.com/comalice/watersort/internal/production"
)

// ErrUnknownPreset is returned by Load for names without a built-in puzzle.
var ErrUnknownPreset = errors.New("unknown preset")

//go:embed puzzles/*.yaml
var files embed.FS

// Default is the preset solved when no puzzle is given.
const Default = "example"

// Names lists the built-in puzzles in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(files, "puzzles")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// Load decodes the named preset. Each call returns a fresh Puzzle.
func Load(name string) (primitives.Puzzle, error) {
	data, err := files.ReadFile(path.Join("puzzles", name+".yaml"))
	if err != nil || strings.ContainsAny(name, `/\`) {
		return primitives.Puzzle{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(Names(), ", "))
	}
	p, err := production.DecodePuzzle(data, production.FormatYAML)
	if err != nil {
		return primitives.Puzzle{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return p, nil
}

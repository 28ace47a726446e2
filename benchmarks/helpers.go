// Package benchmarks provides shared fixtures for solver benchmarks.
package benchmarks

import (
	"fmt"
	"math/rand/v2"

	"gopkg.in/yaml.v3"

	"github.com/comalice/watersort/internal/presets"
	"github.com/comalice/watersort/internal/primitives"
	"github.com/comalice/watersort/internal/production"
)

// GenPuzzle deals capacity units of each of colors colors into colors
// tubes after a seeded shuffle, then adds empties empty tubes. The same
// arguments always produce the same State; solvability is not guaranteed.
func GenPuzzle(colors, capacity, empties int, seed uint64) primitives.State {
	if colors < 1 {
		colors = 1
	}
	units := make([]primitives.Color, 0, colors*capacity)
	for c := 1; c <= colors; c++ {
		for range capacity {
			units = append(units, primitives.Color(c))
		}
	}
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	r.Shuffle(len(units), func(i, j int) { units[i], units[j] = units[j], units[i] })

	tubes := make([]primitives.Tube, 0, colors+empties)
	for i := 0; i < colors; i++ {
		tubes = append(tubes, primitives.Tube(units[i*capacity:(i+1)*capacity]))
	}
	for range empties {
		tubes = append(tubes, primitives.Tube{})
	}
	return primitives.NewState(capacity, tubes...)
}

// MustPreset loads a built-in puzzle or panics.
func MustPreset(name string) primitives.State {
	p, err := presets.Load(name)
	if err != nil {
		panic(err)
	}
	return p.State
}

// GenPuzzleYAML encodes a generated puzzle as a puzzle file, naming colors
// c1, c2, and so on.
func GenPuzzleYAML(colors, capacity, empties int, seed uint64) []byte {
	s := GenPuzzle(colors, capacity, empties, seed)
	f := production.PuzzleFile{
		Name:     fmt.Sprintf("gen_%d_%d_%d", colors, capacity, empties),
		Capacity: capacity,
		Tubes:    make([][]string, len(s.Tubes)),
	}
	for i, t := range s.Tubes {
		f.Tubes[i] = make([]string, len(t))
		for j, c := range t {
			f.Tubes[i][j] = fmt.Sprintf("c%d", c)
		}
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		panic(err)
	}
	return data
}

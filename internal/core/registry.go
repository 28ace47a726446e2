// Package core defines the VisitedSet used by the search to avoid revisiting
// states.
package core

import "github.com/comalice/watersort/internal/primitives"

// VisitedSet records canonical keys of discovered states. One set belongs to
// exactly one search; it is not safe for concurrent use.
type VisitedSet interface {
	// Add inserts key and reports whether it was absent.
	Add(key primitives.Key) bool

	// Has reports whether key was added.
	Has(key primitives.Key) bool

	// Len returns the number of keys.
	Len() int
}

// MapVisited is the default VisitedSet backed by a Go map. Keys are exact
// encodings, so membership never merges distinct states.
type MapVisited struct {
	keys map[primitives.Key]struct{}
}

// NewMapVisited creates an empty MapVisited with room for sizeHint keys.
func NewMapVisited(sizeHint int) *MapVisited {
	return &MapVisited{keys: make(map[primitives.Key]struct{}, sizeHint)}
}

func (v *MapVisited) Add(key primitives.Key) bool {
	if _, ok := v.keys[key]; ok {
		return false
	}
	v.keys[key] = struct{}{}
	return true
}

func (v *MapVisited) Has(key primitives.Key) bool {
	_, ok := v.keys[key]
	return ok
}

func (v *MapVisited) Len() int {
	return len(v.keys)
}

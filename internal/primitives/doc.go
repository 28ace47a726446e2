// Package primitives provides the foundational, zero-dependency data structures
// for the water sort search engine.
//
// This package uses ONLY the Go standard library. It defines the puzzle data
// shapes (Color, Tube, State, Move), the canonical state key used for
// deduplication, boundary validation and the search event primitive.
//
// Core invariants:
//   - 0 <= len(tube) <= Capacity for every tube of a valid State
//   - NoColor never appears inside a tube
//   - States are values: once handed to the search engine they are never mutated
//   - Key is exact (length-prefixed), never a lossy hash
package primitives

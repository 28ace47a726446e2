// Boundary validation for puzzle states. The search engine assumes a valid
// State; Validate is called once before a search starts.

package primitives

import (
	"errors"
	"fmt"
)

// ErrInvalidState is wrapped by every validation failure.
var ErrInvalidState = errors.New("invalid puzzle state")

// Validate checks the structural invariants of a State:
//   - 1 <= Capacity <= MaxCapacity
//   - at least one tube
//   - no tube longer than Capacity
//   - no NoColor units
func (s State) Validate() error {
	if s.Capacity < 1 {
		return fmt.Errorf("%w: capacity %d must be at least 1", ErrInvalidState, s.Capacity)
	}
	if s.Capacity > MaxCapacity {
		return fmt.Errorf("%w: capacity %d exceeds maximum %d", ErrInvalidState, s.Capacity, MaxCapacity)
	}
	if len(s.Tubes) == 0 {
		return fmt.Errorf("%w: no tubes", ErrInvalidState)
	}
	for i, t := range s.Tubes {
		if len(t) > s.Capacity {
			return fmt.Errorf("%w: tube %d holds %d units, capacity is %d", ErrInvalidState, i, len(t), s.Capacity)
		}
		for j, c := range t {
			if c == NoColor {
				return fmt.Errorf("%w: tube %d position %d has no color", ErrInvalidState, i, j)
			}
		}
	}
	return nil
}

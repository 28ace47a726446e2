package primitives

import "strings"

// Key is the canonical, exact encoding of a State used for visited-set
// membership. It is compare-only; nothing decodes it.
type Key string

// Key encodes the tubes in order: one length byte, then one byte per unit.
// The length prefix keeps the encoding injective, so distinct tube contents
// can never collide. Capacity is not encoded; it is constant within a search.
func (s State) Key() Key {
	n := len(s.Tubes)
	for _, t := range s.Tubes {
		n += len(t)
	}
	var b strings.Builder
	b.Grow(n)
	for _, t := range s.Tubes {
		b.WriteByte(byte(len(t)))
		for _, c := range t {
			b.WriteByte(byte(c))
		}
	}
	return Key(b.String())
}

package core

import (
	"slices"

	"github.com/comalice/watersort/internal/primitives"
)

// node is one discovered state. The path to it is recovered through parent
// links instead of copying the move list into every frontier entry.
type node struct {
	state  primitives.State
	move   primitives.Move // move that produced state; unset on the root
	parent *node
	depth  int
}

// path rebuilds the moves from the root to n.
func (n *node) path() primitives.Solution {
	moves := make(primitives.Solution, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		moves = append(moves, cur.move)
	}
	slices.Reverse(moves)
	return moves
}

// frontier is a FIFO queue of nodes. Dequeued slots are released so expanded
// states can be collected while the search continues.
type frontier struct {
	items []*node
	head  int
}

func (f *frontier) push(n *node) {
	f.items = append(f.items, n)
}

func (f *frontier) pop() *node {
	n := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	// compact once the consumed prefix dominates the buffer
	if f.head > 1024 && f.head*2 >= len(f.items) {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}
	return n
}

func (f *frontier) len() int {
	return len(f.items) - f.head
}

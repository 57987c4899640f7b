package gametree

import (
	"errors"
	"fmt"
)

// ErrNoSuchChild is returned when a requested child move does not exist.
var ErrNoSuchChild = errors.New("gametree: no child at that index")

// Node is one ply of a search: the game state after a move, the move's
// score, every legal continuation as an ordered child list, and the index
// of the first child achieving the node's score. A terminal node has no
// children and a best index of -1. A node owns its children; nothing else
// holds references into the subtree.
type Node[S any] struct {
	state     S
	score     int
	children  []*Node[S]
	bestIndex int
	spotIndex int
	pruned    bool
}

// State returns the game state this node represents.
func (n *Node[S]) State() S {
	return n.state
}

// Score returns the node's utility.
func (n *Node[S]) Score() int {
	return n.score
}

// Children returns the ordered child moves, one per legal move at this
// node. The slice is owned by the node.
func (n *Node[S]) Children() []*Node[S] {
	return n.children
}

// BestIndex returns the index into Children of the first child achieving
// the node's score, or -1 for terminal and pruned nodes.
func (n *Node[S]) BestIndex() int {
	return n.bestIndex
}

// SpotIndex returns the board index where this node's move was played,
// or -1 at the root.
func (n *Node[S]) SpotIndex() int {
	return n.spotIndex
}

// Pruned reports whether this node is a placeholder for a subtree that
// alpha-beta pruning never expanded. Its score is then the pruning bound
// that was in effect, not a true evaluation.
func (n *Node[S]) Pruned() bool {
	return n.pruned
}

// Terminal reports whether this node has no children.
func (n *Node[S]) Terminal() bool {
	return len(n.children) == 0
}

// Child returns the i-th child move.
func (n *Node[S]) Child(i int) (*Node[S], error) {
	if i < 0 || i >= len(n.children) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoSuchChild, i, len(n.children))
	}
	return n.children[i], nil
}

// Best returns the best-scoring child move.
func (n *Node[S]) Best() (*Node[S], error) {
	return n.Child(n.bestIndex)
}

// Size returns the number of nodes in the subtree rooted at n, including
// pruned placeholders.
func (n *Node[S]) Size() int {
	total := 1
	for _, c := range n.children {
		total += c.Size()
	}
	return total
}

// String provides a string just for debugging purposes.
func (n *Node[S]) String() string {
	return fmt.Sprintf("<node spot: %v score: %v children: %v best: %v pruned: %v>",
		n.spotIndex, n.score, len(n.children), n.bestIndex, n.pruned)
}

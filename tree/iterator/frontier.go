package iterator

import (
	"go.lepak.sg/sortedset/tree"
	"golang.org/x/exp/constraints"
)

// Frontier is the explicit stack that replaces the call stack of a
// recursive traversal:
//
//	func visit(n *Node, f func(*Node)) {
//		if n == nil {
//			return
//		}
//		visit(n.Left, f)	--(1)
//		f(n)
//		visit(n.Right, f)	--(2)
//	}
//
// Pushing the left spine of a subtree runs everything up to (1), all the
// way down to the leftmost node. Popping a node is f(n). Continuing from
// (2) is pushing the left spine of the popped node's right child.
// So for ascending traversal, the frontier always holds the ancestors of
// the current position whose left subtree contains it, deepest on top.
//
// The zero Frontier is empty and ready to use.
type Frontier[T constraints.Ordered] struct {
	nodes []*tree.Node[T]
}

// NewFrontier returns an empty Frontier. If the tree's height is known,
// pass it as heightHint. Otherwise it's safe to leave it as 0.
func NewFrontier[T constraints.Ordered](heightHint int) Frontier[T] {
	return Frontier[T]{
		nodes: make([]*tree.Node[T], 0, heightHint+1),
	}
}

// Push pushes n. Pushing nil is a no-op.
func (f *Frontier[T]) Push(n *tree.Node[T]) {
	if n != nil {
		f.nodes = append(f.nodes, n)
	}
}

// PushLeft pushes n and every node on the path from n to its leftmost
// descendant.
func (f *Frontier[T]) PushLeft(n *tree.Node[T]) {
	for n != nil {
		f.nodes = append(f.nodes, n)
		n = n.Left
	}
}

// PushRight pushes n and every node on the path from n to its rightmost
// descendant.
func (f *Frontier[T]) PushRight(n *tree.Node[T]) {
	for n != nil {
		f.nodes = append(f.nodes, n)
		n = n.Right
	}
}

// PushCeiling descends from n towards k, pushing every node whose key is
// not less than k. Afterwards the top of the frontier holds the smallest
// key >= k, and ascending traversal may continue from there.
func (f *Frontier[T]) PushCeiling(n *tree.Node[T], k T) {
	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			f.nodes = append(f.nodes, n)
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			f.nodes = append(f.nodes, n)
			return
		default:
			panic("unreachable")
		}
	}
}

// Pop removes and returns the top node, or nil if the frontier is empty.
func (f *Frontier[T]) Pop() *tree.Node[T] {
	if len(f.nodes) == 0 {
		return nil
	}
	n := f.nodes[len(f.nodes)-1]
	f.nodes[len(f.nodes)-1] = nil
	f.nodes = f.nodes[:len(f.nodes)-1]
	return n
}

// Peek returns the top node without removing it, or nil if the frontier
// is empty.
func (f *Frontier[T]) Peek() *tree.Node[T] {
	if len(f.nodes) == 0 {
		return nil
	}
	return f.nodes[len(f.nodes)-1]
}

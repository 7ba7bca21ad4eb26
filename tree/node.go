// Package tree holds the node type and helpers shared by the
// binary tree implementations and their iterators.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Each node is owned by exactly one slot:
// its parent's Left or Right, or the tree's root.
// There is no parent pointer; ancestry is recovered by descending
// from the root again, or by keeping a stack of ancestors.
type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]
}

// NodeOf returns a childless node holding k.
func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// Leftmost returns the node holding the smallest key in the subtree
// rooted at n, or nil if n is nil.
func (n *Node[T]) Leftmost() *Node[T] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Rightmost returns the node holding the largest key in the subtree
// rooted at n, or nil if n is nil.
func (n *Node[T]) Rightmost() *Node[T] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Height is the number of nodes on the longest path from n down to a
// leaf. The nil subtree has height 0.
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Height(), n.Right.Height())
}

// Order is the result of Compare.
type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

// Compare orders l relative to r: Less if l < r, Greater if l > r,
// otherwise Equal.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

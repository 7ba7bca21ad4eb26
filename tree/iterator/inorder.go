package iterator

import (
	"go.lepak.sg/sortedset/chops"
	"go.lepak.sg/sortedset/tree"
	"golang.org/x/exp/constraints"
)

var _ chops.Iterator[int] = (*InOrder[int])(nil)

// InOrder is an iterator object over a binary tree.
// The usage should be pretty familiar:
//
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T constraints.Ordered] struct {
	root, at *tree.Node[T]
	started  bool
	frontier Frontier[T]
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// If the tree's height is known, pass it as heightHint.
// Otherwise it's safe to leave it as 0.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[T constraints.Ordered](root *tree.Node[T], heightHint int) *InOrder[T] {
	return &InOrder[T]{
		root:     root,
		frontier: NewFrontier[T](heightHint),
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if !i.started {
		i.started = true
		i.frontier.PushLeft(i.root)
	} else if i.at != nil {
		// resume from (2) of the recursive visit
		i.frontier.PushLeft(i.at.Right)
	}

	i.at = i.frontier.Pop()
	return i.at != nil
}

// Item returns the current key of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.Key
}

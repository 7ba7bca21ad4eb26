package binary

import (
	g "github.com/anacrolix/generics"
	"github.com/pkg/errors"
	"go.lepak.sg/sortedset/collection"
	"go.lepak.sg/sortedset/tree"
	"go.lepak.sg/sortedset/tree/iterator"
	"golang.org/x/exp/constraints"
)

var _ collection.MutableIterator[int] = (*Iterator[int])(nil)

// Iterator yields the keys of a Tree in ascending order and can remove
// the key it last yielded.
//
//	i := tr.Iterator()
//	for i.HasNext() {
//		k, _ := i.Next()
//		if k is unwanted {
//			_ = i.Remove()
//		}
//	}
//
// The tree must not be mutated other than through the iterator while
// the iterator is in use.
type Iterator[T constraints.Ordered] struct {
	t        *Tree[T]
	frontier iterator.Frontier[T]
	// at is the node last returned by Next. It is nil before the first
	// Next and right after Remove, in which case the top of the frontier
	// is the next node.
	at      *tree.Node[T]
	index   int
	removed bool

	// windowed iterators belong to a View and stop before hi.
	windowed bool
	hi       g.Option[T]
}

// Iterator returns an iterator over the keys of the tree.
func (t *Tree[T]) Iterator() *Iterator[T] {
	i := &Iterator[T]{
		t:        t,
		frontier: iterator.NewFrontier[T](t.IdealHeight()),
		index:    -1,
	}
	i.frontier.PushLeft(t.root)
	return i
}

// newWindowIterator returns an iterator over the keys in [lo, hi).
// Absent bounds are open.
func newWindowIterator[T constraints.Ordered](t *Tree[T], lo, hi g.Option[T]) *Iterator[T] {
	i := &Iterator[T]{
		t:        t,
		frontier: iterator.NewFrontier[T](t.IdealHeight()),
		index:    -1,
		windowed: true,
		hi:       hi,
	}
	if lo.Ok {
		i.frontier.PushCeiling(t.root, lo.Value)
	} else {
		i.frontier.PushLeft(t.root)
	}
	return i
}

// peek returns the node the next call to Next would yield,
// without touching the frontier.
func (i *Iterator[T]) peek() *tree.Node[T] {
	if i.at != nil && i.at.Right != nil {
		return i.at.Right.Leftmost()
	}
	return i.frontier.Peek()
}

// HasNext returns true if Next would yield a key.
func (i *Iterator[T]) HasNext() bool {
	if !i.windowed {
		return i.index < i.t.count-1
	}

	n := i.peek()
	return n != nil && (!i.hi.Ok || tree.Compare(n.Key, i.hi.Value) == tree.Less)
}

// Next returns the next key in ascending order,
// or collection.ErrExhausted if there is none.
func (i *Iterator[T]) Next() (T, error) {
	if !i.HasNext() {
		var zero T
		return zero, collection.ErrExhausted
	}

	if i.at != nil {
		// everything left of at is done, continue in its right subtree
		i.frontier.PushLeft(i.at.Right)
	}

	n := i.frontier.Pop()
	if n == nil {
		// the tree was changed behind the iterator's back
		panic("impossible")
	}

	i.at = n
	i.removed = false
	i.index++
	return n.Key, nil
}

// Remove removes the key last returned by Next from the tree.
// It returns collection.ErrInvalidState if Next has not been called yet,
// or if the key was already removed.
func (i *Iterator[T]) Remove() error {
	if i.removed {
		return errors.Wrap(collection.ErrInvalidState, "already removed")
	}
	if i.at == nil {
		return errors.Wrap(collection.ErrInvalidState, "next not called")
	}

	n := i.at
	// The successor in n's right subtree takes n's place in the tree.
	// The frontier only holds ancestors of n, which the splice leaves
	// where they are, so the successor goes on top of them.
	succ := n.Right.Leftmost()

	if !i.t.Remove(n.Key) {
		panic("impossible")
	}

	i.frontier.Push(succ)
	i.at = nil
	i.removed = true
	i.index--
	return nil
}

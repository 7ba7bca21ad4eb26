package binary

import (
	"fmt"

	g "github.com/anacrolix/generics"
	"github.com/pkg/errors"
	"go.lepak.sg/sortedset/collection"
	"go.lepak.sg/sortedset/tree"
	"golang.org/x/exp/constraints"
)

// View is a live window over the keys of a Tree in [lo, hi).
// An absent bound is open on that side.
// Reads through the view see the tree as it is now, and writes
// through the view change the tree.
type View[T constraints.Ordered] struct {
	t      *Tree[T]
	lo, hi g.Option[T]
}

// SubSet returns a view of the keys k with from <= k < to.
// If from >= to, the view is always empty.
func (t *Tree[T]) SubSet(from, to T) View[T] {
	return View[T]{t: t, lo: g.Some(from), hi: g.Some(to)}
}

// HeadSet returns a view of the keys strictly less than to.
func (t *Tree[T]) HeadSet(to T) View[T] {
	return View[T]{t: t, hi: g.Some(to)}
}

// TailSet returns a view of the keys greater than or equal to from.
func (t *Tree[T]) TailSet(from T) View[T] {
	return View[T]{t: t, lo: g.Some(from)}
}

func (v View[T]) inRange(k T) bool {
	return (!v.lo.Ok || k >= v.lo.Value) && (!v.hi.Ok || k < v.hi.Value)
}

// within is like inRange, but accepts hi itself.
// Narrower views may reuse the exclusive end of this one.
func (v View[T]) within(k T) bool {
	return (!v.lo.Ok || k >= v.lo.Value) && (!v.hi.Ok || k <= v.hi.Value)
}

// Contains returns true if k is inside the view and in the tree.
func (v View[T]) Contains(k T) bool {
	return v.inRange(k) && v.t.Contains(k)
}

// Insert inserts k into the backing tree.
// If k is outside the view, nothing changes and the error wraps
// collection.ErrOutOfRange.
// If k is already in the tree, Insert returns false.
func (v View[T]) Insert(k T) (bool, error) {
	if !v.inRange(k) {
		return false, errors.Wrapf(collection.ErrOutOfRange, "inserting %v into %v", k, v)
	}
	return v.t.Insert(k), nil
}

// Remove removes k from the backing tree.
// Keys outside the view are left alone and Remove returns false.
func (v View[T]) Remove(k T) bool {
	return v.inRange(k) && v.t.Remove(k)
}

// Len counts the keys inside the view. It takes time proportional
// to that count plus the height of the tree.
func (v View[T]) Len() int {
	n := 0
	for i := v.Iterator(); i.HasNext(); {
		if _, err := i.Next(); err != nil {
			panic(err)
		}
		n++
	}
	return n
}

// Iterator returns an iterator over the keys inside the view,
// in ascending order. Remove on the iterator removes from the tree.
func (v View[T]) Iterator() *Iterator[T] {
	return newWindowIterator(v.t, v.lo, v.hi)
}

// Slice returns the keys inside the view in ascending order.
func (v View[T]) Slice() []T {
	var out []T
	for i := v.Iterator(); i.HasNext(); {
		k, err := i.Next()
		if err != nil {
			panic(err)
		}
		out = append(out, k)
	}
	return out
}

// First returns the smallest key inside the view.
func (v View[T]) First() (T, error) {
	i := v.Iterator()
	if !i.HasNext() {
		var zero T
		return zero, collection.ErrEmpty
	}
	return i.Next()
}

// Last returns the largest key inside the view.
func (v View[T]) Last() (T, error) {
	// the largest key below hi, then check it against lo
	var last *tree.Node[T]
	for n := v.t.root; n != nil; {
		if v.hi.Ok && tree.Compare(n.Key, v.hi.Value) != tree.Less {
			n = n.Left
		} else {
			last, n = n, n.Right
		}
	}

	if last == nil || !v.inRange(last.Key) {
		var zero T
		return zero, collection.ErrEmpty
	}
	return last.Key, nil
}

// SubSet narrows the view to [from, to).
// Both bounds must lie inside this view (to may equal its upper bound).
func (v View[T]) SubSet(from, to T) (View[T], error) {
	if !v.within(from) || !v.within(to) {
		return View[T]{}, errors.Wrapf(collection.ErrOutOfRange,
			"narrowing %v to [%v, %v)", v, from, to)
	}
	return View[T]{t: v.t, lo: g.Some(from), hi: g.Some(to)}, nil
}

// HeadSet narrows the view to the keys below to.
func (v View[T]) HeadSet(to T) (View[T], error) {
	if !v.within(to) {
		return View[T]{}, errors.Wrapf(collection.ErrOutOfRange,
			"narrowing %v below %v", v, to)
	}
	return View[T]{t: v.t, lo: v.lo, hi: g.Some(to)}, nil
}

// TailSet narrows the view to the keys from from onwards.
func (v View[T]) TailSet(from T) (View[T], error) {
	if !v.within(from) {
		return View[T]{}, errors.Wrapf(collection.ErrOutOfRange,
			"narrowing %v from %v", v, from)
	}
	return View[T]{t: v.t, lo: g.Some(from), hi: v.hi}, nil
}

// String describes the bounds of the view, for example [1, 5) or (-∞, 5).
func (v View[T]) String() string {
	lo, hi := "(-∞", "+∞)"
	if v.lo.Ok {
		lo = fmt.Sprintf("[%v", v.lo.Value)
	}
	if v.hi.Ok {
		hi = fmt.Sprintf("%v)", v.hi.Value)
	}
	return lo + ", " + hi
}

package openaddr

import (
	"github.com/pkg/errors"
	"go.lepak.sg/sortedset/collection"
)

var _ collection.MutableIterator[int] = (*Iterator[int])(nil)

// Iterator yields the keys of a Set in slot order.
// Removing through the iterator only leaves a tombstone, so no key
// moves and iteration carries on where it was.
type Iterator[T comparable] struct {
	s *Set[T]
	// at is the slot of the key last returned by Next, -1 before that
	at        int
	canRemove bool
}

// Iterator returns an iterator over the keys in the set.
func (s *Set[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{s: s, at: -1}
}

func (i *Iterator[T]) following() int {
	for j := i.at + 1; j < len(i.s.slots); j++ {
		if i.s.slots[j].state == occupied {
			return j
		}
	}
	return -1
}

// HasNext returns true if Next would yield a key.
// It takes time proportional to the distance to the next key.
func (i *Iterator[T]) HasNext() bool {
	return i.following() >= 0
}

// Next returns the next key in slot order,
// or collection.ErrExhausted if there is none.
func (i *Iterator[T]) Next() (T, error) {
	j := i.following()
	if j < 0 {
		var zero T
		return zero, collection.ErrExhausted
	}
	i.at, i.canRemove = j, true
	return i.s.slots[j].key, nil
}

// Remove removes the key last returned by Next from the set.
func (i *Iterator[T]) Remove() error {
	if !i.canRemove {
		return errors.Wrap(collection.ErrInvalidState, "open addressing iterator")
	}
	i.s.removeAt(i.at)
	i.canRemove = false
	return nil
}

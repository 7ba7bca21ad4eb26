// Package collection holds what the set implementations in this module
// have in common: the error kinds they report and the contract of their
// mutable iterators.
package collection

import (
	"github.com/pkg/errors"
)

var (
	// ErrExhausted is returned by Next when the iterator has already
	// yielded every element.
	ErrExhausted = errors.New("iterator exhausted")

	// ErrInvalidState is returned by an iterator's Remove when it is
	// called before the first Next, or twice without a Next in between.
	ErrInvalidState = errors.New("remove without a preceding next")

	// ErrEmpty is returned by First and Last on an empty collection.
	ErrEmpty = errors.New("empty collection")

	// ErrOutOfRange is returned when inserting through a range view
	// a key that lies outside of the view's bounds.
	ErrOutOfRange = errors.New("key out of range")

	// ErrFull is returned when inserting into a fixed-capacity
	// collection that has no free slot left.
	ErrFull = errors.New("collection is full")
)

// MutableIterator is an iterator that can remove the element it last
// yielded from the underlying collection.
//
// The usual usage looks like this:
//
//	i := someSet.Iterator()
//	for i.HasNext() {
//		k, err := i.Next()
//		... handle err, do stuff with k ...
//		if k should go {
//			err = i.Remove()
//		}
//	}
//
// Mutating the collection other than through the iterator while it is
// in use leaves the iterator in an undefined state.
type MutableIterator[T any] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
}

// Collect drains i into a slice.
func Collect[T any](i MutableIterator[T]) ([]T, error) {
	var out []T
	for i.HasNext() {
		k, err := i.Next()
		if err != nil {
			return out, err
		}
		out = append(out, k)
	}
	return out, nil
}

// RemoveIf removes every element for which f returns true, using the
// iterator's Remove. It returns the number of elements removed.
func RemoveIf[T any](i MutableIterator[T], f func(k T) bool) (int, error) {
	removed := 0
	for i.HasNext() {
		k, err := i.Next()
		if err != nil {
			return removed, err
		}
		if !f(k) {
			continue
		}
		if err := i.Remove(); err != nil {
			return removed, errors.Wrapf(err, "removing %v", k)
		}
		removed++
	}
	return removed, nil
}

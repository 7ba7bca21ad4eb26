// Package chops turns iterators into channels, so that they can be
// ranged over and abandoned at any point.
package chops

import (
	"go.lepak.sg/sortedset/collection"
)

// Iterator describes some iterator over a data structure.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
// To stop from several goroutines, wrap it in a sync.Once.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](x.Iterator())
//	for i := range co.Items() {
//		... do stuff with i ...
//		if i meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
//
// The goroutine is the only one touching the iterator until it exits,
// so the data structure must not be mutated in the meantime.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, iterator)

	return co
}

// Adapt wraps a collection.MutableIterator so it can be passed to
// CoIterate. Iteration ends at the first error from Next.
func Adapt[T any](i collection.MutableIterator[T]) Iterator[T] {
	return &adapted[T]{i: i}
}

type adapted[T any] struct {
	i    collection.MutableIterator[T]
	item T
}

func (a *adapted[T]) Next() bool {
	if !a.i.HasNext() {
		return false
	}
	k, err := a.i.Next()
	if err != nil {
		return false
	}
	a.item = k
	return true
}

func (a *adapted[T]) Item() T {
	return a.item
}

package trie

import (
	"github.com/pkg/errors"
	"go.lepak.sg/sortedset/chops"
	"go.lepak.sg/sortedset/collection"
)

var _ collection.MutableIterator[string] = (*Iterator)(nil)

type frame struct {
	n    *node
	word string
	// last is the byte of the child being visited, valid once begun
	last    byte
	begun   bool
	visited bool
}

// Iterator yields the strings of a Set in lexicographic order and can
// remove the string it last yielded.
//
// The iterator looks one string ahead. The set must not be mutated other
// than through the iterator while it is in use.
type Iterator struct {
	s     *Set
	stack []frame

	next    string
	hasNext bool

	last      string
	canRemove bool
}

// Iterator returns an iterator over the strings in the set.
func (s *Set) Iterator() *Iterator {
	i := &Iterator{
		s:     s,
		stack: []frame{{n: &s.root}},
	}
	i.advance()
	return i
}

// advance runs the depth-first walk up to the next string.
// A node's own string comes before the strings below it.
func (i *Iterator) advance() {
	for len(i.stack) > 0 {
		top := &i.stack[len(i.stack)-1]
		if !top.visited {
			top.visited = true
			if top.n.end {
				i.next, i.hasNext = top.word, true
				return
			}
		}

		e, ok := top.n.after(top.last, top.begun)
		if !ok {
			i.stack = i.stack[:len(i.stack)-1]
			continue
		}

		top.last, top.begun = e.b, true
		i.stack = append(i.stack, frame{n: e.n, word: top.word + string([]byte{e.b})})
	}

	i.next, i.hasNext = "", false
}

// HasNext returns true if Next would yield a string.
func (i *Iterator) HasNext() bool {
	return i.hasNext
}

// Next returns the next string,
// or collection.ErrExhausted if there is none.
func (i *Iterator) Next() (string, error) {
	if !i.hasNext {
		return "", collection.ErrExhausted
	}

	i.last, i.canRemove = i.next, true
	i.advance()
	return i.last, nil
}

// Remove removes the string last returned by Next from the set.
//
// Every node on the path to the string looked ahead to still leads to
// that string, so none of them are dropped by the removal.
func (i *Iterator) Remove() error {
	if !i.canRemove {
		return errors.Wrap(collection.ErrInvalidState, "trie iterator")
	}

	if !i.s.Remove(i.last) {
		panic("impossible")
	}
	i.canRemove = false
	return nil
}

// Coroutine yields the strings in the set in order from a separate
// goroutine. The set must not be mutated until the coroutine finishes
// or is stopped.
func (s *Set) Coroutine() chops.CoIterator[string] {
	return chops.CoIterate(chops.Adapt[string](s.Iterator()))
}

// Package trie contains a prefix tree holding a set of strings.
//
// Strings are split into bytes, not runes, so any Go string is a valid
// key, including ones that are not valid UTF-8. The children of every
// node are kept sorted by byte in a small B-tree, so iteration is in the
// same order as comparing strings with <. Set is not safe for
// concurrent use.
package trie

import (
	"github.com/google/btree"
)

// childDegree is the B-tree degree of each node's children.
// Most nodes only have a handful of children, so keep it small.
const childDegree = 2

type edge struct {
	b byte
	n *node
}

func edgeLess(a, b edge) bool {
	return a.b < b.b
}

type node struct {
	// children is nil until the first child is added
	children *btree.BTreeG[edge]
	// end marks the node as the last byte of a string in the set
	end bool
}

func (n *node) child(b byte) *node {
	if n.children == nil {
		return nil
	}
	e, ok := n.children.Get(edge{b: b})
	if !ok {
		return nil
	}
	return e.n
}

func (n *node) addChild(b byte) *node {
	if n.children == nil {
		n.children = btree.NewG(childDegree, edgeLess)
	}
	c := &node{}
	n.children.ReplaceOrInsert(edge{b: b, n: c})
	return c
}

func (n *node) removeChild(b byte) {
	if n.children == nil {
		return
	}
	n.children.Delete(edge{b: b})
	if n.children.Len() == 0 {
		n.children = nil
	}
}

// after returns the child with the smallest byte greater than b.
// If begun is false, it returns the child with the smallest byte.
func (n *node) after(b byte, begun bool) (next edge, ok bool) {
	if n.children == nil {
		return
	}
	if !begun {
		return n.children.Min()
	}
	if b == 0xff {
		return
	}
	n.children.AscendGreaterOrEqual(edge{b: b + 1}, func(e edge) bool {
		next, ok = e, true
		return false
	})
	return
}

func (n *node) leaf() bool {
	return n.children == nil && !n.end
}

// Set is a set of strings stored in a prefix tree.
// The zero Set is empty and ready to use.
type Set struct {
	root  node
	count int
}

func (s *Set) find(str string) *node {
	n := &s.root
	for j := 0; j < len(str); j++ {
		n = n.child(str[j])
		if n == nil {
			return nil
		}
	}
	return n
}

// Contains returns true if str is in the set.
func (s *Set) Contains(str string) bool {
	n := s.find(str)
	return n != nil && n.end
}

// HasPrefix returns true if some string in the set starts with prefix.
func (s *Set) HasPrefix(prefix string) bool {
	n := s.find(prefix)
	return n != nil && (n.end || n.children != nil)
}

// Insert adds str to the set.
// If str is already in the set, Insert returns false.
func (s *Set) Insert(str string) bool {
	n := &s.root
	for j := 0; j < len(str); j++ {
		c := n.child(str[j])
		if c == nil {
			c = n.addChild(str[j])
		}
		n = c
	}

	if n.end {
		return false
	}
	n.end = true
	s.count++
	return true
}

// Remove removes str from the set.
// If str is not in the set, Remove returns false.
// Nodes that no longer lead to any string are dropped.
func (s *Set) Remove(str string) bool {
	type step struct {
		parent *node
		b      byte
	}
	var path []step

	n := &s.root
	for j := 0; j < len(str); j++ {
		c := n.child(str[j])
		if c == nil {
			return false
		}
		path = append(path, step{parent: n, b: str[j]})
		n = c
	}

	if !n.end {
		return false
	}
	n.end = false
	s.count--

	for j := len(path) - 1; j >= 0 && n.leaf(); j-- {
		path[j].parent.removeChild(path[j].b)
		n = path[j].parent
	}

	return true
}

// Len returns the number of strings in the set.
func (s *Set) Len() int {
	return s.count
}

// Clear removes every string from the set.
func (s *Set) Clear() {
	s.root = node{}
	s.count = 0
}

// Slice returns the strings in the set in lexicographic order.
func (s *Set) Slice() []string {
	out := make([]string, 0, s.count)
	for i := s.Iterator(); i.HasNext(); {
		str, err := i.Next()
		if err != nil {
			panic(err)
		}
		out = append(out, str)
	}
	return out
}

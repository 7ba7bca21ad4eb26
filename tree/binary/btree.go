package binary

import (
	"fmt"
	"math/bits"
	"strings"

	"go.lepak.sg/sortedset/chops"
	"go.lepak.sg/sortedset/collection"
	"go.lepak.sg/sortedset/tree"
	"go.lepak.sg/sortedset/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is a binary search tree holding a set of keys.
// It is not safe for concurrent use.
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} when creating one).
//
// This tree is not self-balancing. Removal never increases its height.
//
// Invariants:
//   - At any node N in the tree, all node keys in the subtree rooted at N.Left
//     will be less than N.Key
//   - At any node N in the tree, all node keys in the subtree rooted at N.Right
//     will be greater than N.Key
//   - For every possible key, there will be at most one node with that key
//     in the tree (No duplicates allowed)
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root  *tree.Node[T]
	count int
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	n := t.root

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Without parent pointers, remember the last node
	// where the descent turned right.
	var less *tree.Node[T]
	for n := t.root; n != nil; {
		if tree.Compare(n.Key, k) == tree.Less {
			less, n = n, n.Right
		} else {
			n = n.Left
		}
	}

	if less == nil {
		return
	}
	return less.Key, true
}

// Greater returns the smallest key in the tree
// that is greater than k.
// If there is no key in the tree greater than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Greater(k T) (p T, ok bool) {
	var greater *tree.Node[T]
	for n := t.root; n != nil; {
		if tree.Compare(n.Key, k) == tree.Greater {
			greater, n = n, n.Left
		} else {
			n = n.Right
		}
	}

	if greater == nil {
		return
	}
	return greater.Key, true
}

// Insert inserts k into the binary tree.
// If k is already in the tree, Insert returns false.
func (t *Tree[T]) Insert(k T) bool {
	if t.root == nil {
		t.root = tree.NodeOf(k)
		t.count = 1
		return true
	}

	n, p := t.root, (*tree.Node[T])(nil)
	var cmp tree.Order

	for n != nil {
		cmp = tree.Compare(k, n.Key)
		switch cmp {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			return false
		default:
			panic("unreachable")
		}
	}

	newnode := tree.NodeOf(k)

	switch cmp {
	case tree.Less:
		if p.Left != nil {
			panic("impossible")
		}
		p.Left = newnode
	case tree.Greater:
		if p.Right != nil {
			panic("impossible")
		}
		p.Right = newnode
	default:
		panic("unreachable")
	}

	t.count++
	return true
}

// Remove removes k from the binary tree.
// If k is not in the tree, Remove returns false and the tree is untouched.
//
// The removed node is replaced by its in-order successor if it has a
// right subtree, otherwise by its left child. Nodes are relinked rather
// than having their keys copied around, so a node that survives the
// removal keeps holding the same key.
func (t *Tree[T]) Remove(k T) bool {
	n, p := t.root, (*tree.Node[T])(nil)

	for n != nil {
		switch tree.Compare(k, n.Key) {
		case tree.Less:
			n, p = n.Left, n
		case tree.Greater:
			n, p = n.Right, n
		case tree.Equal:
			t.splice(p, n)
			t.count--
			return true
		default:
			panic("unreachable")
		}
	}

	return false
}

// splice unlinks n, whose parent is p (nil if n is the root),
// and puts its replacement in its slot.
//
//	    p                p
//	    |                |
//	 -> n                r
//	   / \              / \
//	  l   a     ->     l   a
//	     /                /
//	    r                s
//	     \
//	      s
func (t *Tree[T]) splice(p, n *tree.Node[T]) {
	var r *tree.Node[T]

	switch {
	case n.Right != nil:
		rp := n
		r = n.Right
		for r.Left != nil {
			r, rp = r.Left, r
		}

		if rp != n {
			// detach r from deep inside the right subtree, r.Left is nil
			rp.Left = r.Right
			r.Right = n.Right
		}
		// otherwise r is n.Right and carries its own right subtree
		r.Left = n.Left
	case n.Left != nil:
		r = n.Left
	default:
		// leaf, the slot becomes empty
	}

	switch {
	case p == nil:
		if t.root != n {
			panic("impossible")
		}
		t.root = r
	case p.Left == n:
		p.Left = r
	case p.Right == n:
		p.Right = r
	default:
		panic("impossible")
	}

	n.Left, n.Right = nil, nil
}

// Len returns the number of keys in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.count = 0
}

// First returns the smallest key in the tree.
func (t *Tree[T]) First() (T, error) {
	if t.root == nil {
		var zero T
		return zero, collection.ErrEmpty
	}
	return t.root.Leftmost().Key, nil
}

// Last returns the largest key in the tree.
func (t *Tree[T]) Last() (T, error) {
	if t.root == nil {
		var zero T
		return zero, collection.ErrEmpty
	}
	return t.root.Rightmost().Key, nil
}

// Height returns the number of nodes on the longest path from the root
// to a leaf. The empty tree has height 0.
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// IdealHeight returns the height of a perfectly balanced tree
// holding as many keys as this one.
func (t *Tree[T]) IdealHeight() int {
	return bits.Len(uint(t.count))
}

// Balanced returns true if the tree is as short as it can be.
func (t *Tree[T]) Balanced() bool {
	return t.Height() == t.IdealHeight()
}

// CheckInvariant returns true if every node's left child is smaller
// and every node's right child is larger than the node itself.
func (t *Tree[T]) CheckInvariant() bool {
	return checkInvariant(t.root)
}

func checkInvariant[T constraints.Ordered](n *tree.Node[T]) bool {
	if n == nil {
		return true
	}
	if n.Left != nil && (n.Left.Key >= n.Key || !checkInvariant(n.Left)) {
		return false
	}
	return n.Right == nil || (n.Right.Key > n.Key && checkInvariant(n.Right))
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	if t.root == nil {
		return
	}
	t.visitInOrder(t.root, f)
}

func (t *Tree[T]) visitInOrder(n *tree.Node[T], f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n.Left != nil {
		if !t.visitInOrder(n.Left, f) {
			return false
		}
	}

	if !f(n.Key) {
		return false
	}

	if n.Right != nil {
		if !t.visitInOrder(n.Right, f) {
			return false
		}
	}

	return true
}

// PreOrder applies f to each key in the tree pre-order:
// every node before its left subtree, which comes before its right subtree.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	if t.root == nil {
		return
	}
	t.visitPreOrder(t.root, f)
}

func (t *Tree[T]) visitPreOrder(n *tree.Node[T], f func(k T) bool) bool {
	if !f(n.Key) {
		return false
	}

	if n.Left != nil {
		if !t.visitPreOrder(n.Left, f) {
			return false
		}
	}

	if n.Right != nil {
		if !t.visitPreOrder(n.Right, f) {
			return false
		}
	}

	return true
}

// Slice returns the keys of the tree in ascending order.
func (t *Tree[T]) Slice() []T {
	out := make([]T, 0, t.count)
	t.InOrder(func(k T) bool {
		out = append(out, k)
		return true
	})
	return out
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterate ??
	return chops.CoIterate[T](t.InOrderIterator())
}

// InOrderIterator returns a read-only iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root, t.IdealHeight())
}

// InOrderReverseIterator returns a read-only iterator object that yields
// keys from the tree in reverse order, largest first.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, t.IdealHeight())
}

// String returns a string representation of the tree.
// A complete binary tree with height 3 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}

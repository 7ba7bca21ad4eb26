package binary

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"go.lepak.sg/sortedset/tree"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// BuildRandom builds a binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	tr := &Tree[int]{}
	for _, n := range rd.Perm(num) {
		tr.Insert(n)
	}

	return tr
}

// BuildRandomBalanced builds a balanced binary tree with num nodes.
// Node keys are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
// Along the created binary tree, the number of attempts required
// to create the tree is also returned.
// This gets hopeless quickly as num grows, so BuildRandomBalanced gives up
// after maxAttempts and returns an error.
func BuildRandomBalanced(num int, seed int64, maxAttempts int) (*Tree[int], int, error) {
	rd := rand.New(rand.NewSource(seed))

	nodes := make([]int, num)
	for i := 0; i < num; i++ {
		nodes[i] = i
	}

	for attempts := 1; attempts <= maxAttempts; attempts++ {
		rd.Shuffle(num, func(i, j int) {
			nodes[i], nodes[j] = nodes[j], nodes[i]
		})

		tr := &Tree[int]{}
		for _, n := range nodes {
			tr.Insert(n)
		}

		if tr.Balanced() {
			return tr, attempts, nil
		}
	}

	return nil, maxAttempts, errors.Errorf(
		"no balanced tree of %d nodes after %d attempts", num, maxAttempts)
}

// BuildFromPreAndInOrderIter iteratively builds a binary tree
// from its pre- and in-order traversal.
func BuildFromPreAndInOrderIter[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Iterative method. Time O(N^2) Space O(N) (1x nodes, 1x the inOrderMap)
	inOrderMap, err := checkTraversals(pre, in)
	if err != nil {
		return nil, err
	}

	tr := &Tree[T]{root: tree.NodeOf(pre[0]), count: 1}

	for _, toInsert := range pre[1:] {
		// The idea: walk down the tree to find where toInsert should go
		current, parent := tr.root, (*tree.Node[T])(nil)

		toInsertIdx, ok := inOrderMap[toInsert]
		if !ok {
			return nil, errors.Errorf("pre-order key %v not found in in-order traversal", toInsert)
		}

		var result tree.Order
		for current != nil {
			currentKeyIdx, ok := inOrderMap[current.Key]
			if !ok {
				// This is actually impossible as
				// previous keys in the pre-order traversal
				// would definitely exist in the tree at this point
				panic("current node key not found in in-order traversal")
			}
			// not actually tree-related, this Compare function is just handy
			result = tree.Compare(toInsertIdx, currentKeyIdx)
			switch result {
			case tree.Less:
				// toInsert is first - go left
				current, parent = current.Left, current
			case tree.Greater:
				// current node key is first - go right
				current, parent = current.Right, current
			default:
				// since we've already checked that the in-order traversal
				// doesn't contain any duplicate keys while building inOrderMap,
				// this can only be caused by:
				return nil, errors.Errorf("duplicated key %v in pre-order traversal", toInsert)
			}
		}

		newnode := tree.NodeOf(toInsert)

		switch result {
		case tree.Less:
			parent.Left = newnode
		case tree.Greater:
			parent.Right = newnode
		default:
			panic("unreachable")
		}
		tr.count++
	}

	if err := checkPreOrder(tr, pre); err != nil {
		return nil, err
	}
	return tr, nil
}

// BuildFromPreAndInOrderRec recursively builds a binary tree
// from its pre- and in-order traversal.
func BuildFromPreAndInOrderRec[S ~[]T, T constraints.Ordered](
	pre, in S) (*Tree[T], error) {
	// Recursive method. Time O(N^2) Space O(N) (stack frames)
	if _, err := checkTraversals(pre, in); err != nil {
		return nil, err
	}

	root, err := buildFromPreAndInOrderRecVisit(pre, in)
	if err != nil {
		return nil, err
	}

	tr := &Tree[T]{root: root, count: len(in)}
	if err := checkPreOrder(tr, pre); err != nil {
		return nil, err
	}
	return tr, nil
}

func buildFromPreAndInOrderRecVisit[S ~[]T, T constraints.Ordered](
	pre, in S) (*tree.Node[T], error) {
	// N = len(pre) = len(in)
	// At least N calls to this function

	if len(pre) != len(in) {
		panic(fmt.Sprintf("invariant broken: "+
			"(len(pre) == %d) != (len(in) == %d)", len(pre), len(in)))
	}

	if len(pre) == 0 {
		return nil, nil
	}

	if len(pre) == 1 {
		if in[0] != pre[0] {
			return nil, errors.Errorf(
				"pre-order key %v not found in in-order traversal %v", pre[0], in)
		}

		return tree.NodeOf(pre[0]), nil
	}

	x := pre[0]
	// O(N) but this gets smaller
	xi := slices.Index(in, x)
	if xi < 0 {
		return nil, errors.Errorf(
			"pre-order key %v not found in in-order traversal %v", x, in)
	}

	inleft, inright := in[0:xi], in[xi+1:]

	preleft, preright := pre[1:xi+1], pre[xi+1:]

	left, err := buildFromPreAndInOrderRecVisit(preleft, inleft)
	if err != nil {
		return nil, err
	}
	right, err := buildFromPreAndInOrderRecVisit(preright, inright)
	if err != nil {
		return nil, err
	}

	n := tree.NodeOf(x)
	n.Left, n.Right = left, right
	return n, nil
}

// checkPreOrder makes sure the built tree has the pre-order traversal
// it was built from. The in-order traversal alone does not pin down
// where every pre-order key goes.
func checkPreOrder[S ~[]T, T constraints.Ordered](tr *Tree[T], pre S) error {
	i := 0
	var err error
	tr.PreOrder(func(k T) bool {
		if i >= len(pre) {
			err = errors.Errorf("traversals disagree: tree has more than %d keys", len(pre))
			return false
		}
		if k != pre[i] {
			err = errors.Errorf(
				"traversals disagree: pre-order has %v at index %d, the tree has %v", pre[i], i, k)
			return false
		}
		i++
		return true
	})
	if err == nil && i != len(pre) {
		err = errors.Errorf("traversals disagree: tree has %d of %d pre-order keys", i, len(pre))
	}
	return err
}

// checkTraversals does the checks shared by both builders.
// The in-order traversal of a binary search tree is strictly ascending,
// which also rules out duplicates.
func checkTraversals[S ~[]T, T constraints.Ordered](pre, in S) (map[T]int, error) {
	if len(in) == 0 {
		return nil, errors.New("nothing to build")
	}

	if len(in) != len(pre) {
		return nil, errors.New("pre- and in-order traversals have different lengths")
	}

	inOrderMap := make(map[T]int, len(in))
	for i, v := range in {
		if _, ok := inOrderMap[v]; ok {
			return nil, errors.Errorf("duplicated key %v in in-order traversal", v)
		}
		if i > 0 && in[i-1] > v {
			return nil, errors.Errorf("in-order traversal is not ascending at index %d", i)
		}
		inOrderMap[v] = i
	}

	return inOrderMap, nil
}

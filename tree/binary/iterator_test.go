package binary

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/sortedset/collection"
	"go.lepak.sg/sortedset/testutils"
)

func TestIterator(t *testing.T) {
	tests := []struct {
		name string
		keys []int
		post func(t *testing.T, tr *Tree[int], i *Iterator[int])
	}{
		{
			name: "empty",
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				assert.False(t, i.HasNext())
				_, err := i.Next()
				assert.ErrorIs(t, err, collection.ErrExhausted)
				assert.ErrorIs(t, i.Remove(), collection.ErrInvalidState)
			},
		},
		{
			name: "ascending",
			keys: []int{5, 3, 8, 1, 4, 7, 9},
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				got, err := collection.Collect[int](i)
				assert.NoError(t, err)
				assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, got)
				_, err = i.Next()
				assert.ErrorIs(t, err, collection.ErrExhausted)
			},
		},
		{
			name: "remove first then next",
			keys: []int{1, 2, 3},
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				k, err := i.Next()
				require.NoError(t, err)
				assert.Equal(t, 1, k)

				assert.NoError(t, i.Remove())
				assert.False(t, tr.Contains(1))

				k, err = i.Next()
				require.NoError(t, err)
				assert.Equal(t, 2, k)

				k, err = i.Next()
				require.NoError(t, err)
				assert.Equal(t, 3, k)
				assert.False(t, i.HasNext())
				assert.Equal(t, []int{2, 3}, tr.Slice())
			},
		},
		{
			name: "remove before next",
			keys: []int{1, 2, 3},
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				assert.ErrorIs(t, i.Remove(), collection.ErrInvalidState)
				assert.Equal(t, 3, tr.Len())
			},
		},
		{
			name: "remove twice",
			keys: []int{2, 1, 3},
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				_, err := i.Next()
				require.NoError(t, err)
				assert.NoError(t, i.Remove())
				assert.ErrorIs(t, i.Remove(), collection.ErrInvalidState)
				assert.Equal(t, 2, tr.Len())

				k, err := i.Next()
				require.NoError(t, err)
				assert.Equal(t, 2, k)
				assert.NoError(t, i.Remove(), "next resets the removal")
			},
		},
		{
			name: "remove node with deep successor",
			keys: []int{5, 3, 9, 7, 6, 8, 10},
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				for {
					k, err := i.Next()
					require.NoError(t, err)
					if k == 5 {
						break
					}
				}
				assert.NoError(t, i.Remove())

				got, err := collection.Collect[int](i)
				assert.NoError(t, err)
				assert.Equal(t, []int{6, 7, 8, 9, 10}, got)
				assert.Equal(t, []int{3, 6, 7, 8, 9, 10}, tr.Slice())
			},
		},
		{
			name: "remove the root",
			keys: []int{4, 2, 6, 1, 3, 5, 7},
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				n, err := collection.RemoveIf[int](i, func(k int) bool {
					return k == 4
				})
				assert.NoError(t, err)
				assert.Equal(t, 1, n)
				assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, tr.Slice())
				assert.True(t, tr.CheckInvariant())
			},
		},
		{
			name: "remove every other key",
			keys: []int{8, 4, 12, 2, 6, 10, 14, 1, 3, 5, 7, 9, 11, 13, 15},
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				var seen []int
				n, err := collection.RemoveIf[int](i, func(k int) bool {
					seen = append(seen, k)
					return k%2 == 0
				})
				assert.NoError(t, err)
				assert.Equal(t, 7, n)
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, seen)
				assert.Equal(t, []int{1, 3, 5, 7, 9, 11, 13, 15}, tr.Slice())
			},
		},
		{
			name: "remove last",
			keys: []int{2, 1, 3},
			post: func(t *testing.T, tr *Tree[int], i *Iterator[int]) {
				for i.HasNext() {
					_, err := i.Next()
					require.NoError(t, err)
				}
				assert.NoError(t, i.Remove())
				assert.False(t, i.HasNext())
				assert.Equal(t, []int{1, 2}, tr.Slice())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := treeOf(tt.keys...)
			tt.post(t, tr, tr.Iterator())
			assert.True(t, tr.CheckInvariant())
		})
	}
}

func TestIterator_RemoveAll(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x123456789abcdef0))
	const rounds = 50

	for round := 0; round < rounds; round++ {
		size := seedrd.Intn(200)
		tr := BuildRandom(size, int64(seedrd.Uint64()))
		want := tr.Slice()

		var got []int
		i := tr.Iterator()
		for i.HasNext() {
			k, err := i.Next()
			require.NoError(t, err)
			got = append(got, k)

			height := tr.Height()
			require.NoError(t, i.Remove())
			require.LessOrEqual(t, tr.Height(), height)
			require.True(t, tr.CheckInvariant())
		}

		require.Empty(t, cmp.Diff(want, got), "round=%d", round)
		assert.Equal(t, 0, tr.Len())
		assert.Equal(t, "", tr.String())
	}
}

// TestAgainstBTree runs random operations against the tree and a
// google/btree holding the same keys.
func TestAgainstBTree(t *testing.T) {
	seedrd := rand.New(rand.NewSource(0x0fedcba987654321))
	const rounds = 20
	const ops = 500
	const keyspace = 100

	for round := 0; round < rounds; round++ {
		seed := int64(seedrd.Uint64())
		t.Run(fmt.Sprintf("round=%d", round), func(t *testing.T) {
			rd := rand.New(rand.NewSource(seed))
			tr := &Tree[int]{}
			oracle := btree.NewOrderedG[int](4)

			for op := 0; op < ops; op++ {
				k := rd.Intn(keyspace)
				switch rd.Intn(4) {
				case 0, 1:
					_, replaced := oracle.ReplaceOrInsert(k)
					require.Equal(t, !replaced, tr.Insert(k), "Insert(%d)", k)
				case 2:
					_, removed := oracle.Delete(k)
					before := tr.String()
					height := tr.Height()
					require.Equal(t, removed, tr.Remove(k), "Remove(%d)", k)
					require.LessOrEqual(t, tr.Height(), height)
					if !removed {
						require.Equal(t, before, tr.String(), "absent Remove(%d) changed the tree", k)
					}
				case 3:
					// drop the keys in a random window through the iterator
					lo := rd.Intn(keyspace)
					hi := lo + rd.Intn(10)
					i := tr.Iterator()
					_, err := collection.RemoveIf[int](i, func(k int) bool {
						return k >= lo && k < hi
					})
					require.NoError(t, err)

					var drop []int
					oracle.AscendRange(lo, hi, func(k int) bool {
						drop = append(drop, k)
						return true
					})
					for _, k := range drop {
						oracle.Delete(k)
					}
				}

				require.True(t, tr.CheckInvariant())
				require.Equal(t, oracle.Len(), tr.Len())
				require.Equal(t, oracle.Has(k), tr.Contains(k))
			}

			var want []int
			oracle.Ascend(func(k int) bool {
				want = append(want, k)
				return true
			})
			got, err := collection.Collect[int](tr.Iterator())
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(want, got))
			testutils.Drain[int](t, want, tr.Iterator())

			if smallest, ok := oracle.Min(); ok {
				first, err := tr.First()
				assert.NoError(t, err)
				assert.Equal(t, smallest, first)
			}
			if largest, ok := oracle.Max(); ok {
				last, err := tr.Last()
				assert.NoError(t, err)
				assert.Equal(t, largest, last)
			}
		})
	}
}

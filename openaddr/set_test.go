package openaddr

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/sortedset/collection"
	"go.lepak.sg/sortedset/testutils"
	"golang.org/x/exp/slices"
)

// identity makes probe sequences easy to predict.
func identity(k int) uint64 {
	return uint64(k)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		bits int
		ok   bool
	}{
		{name: "too small", bits: 1},
		{name: "min", bits: MinBits, ok: true},
		{name: "ten", bits: 10, ok: true},
		{name: "too big", bits: MaxBits + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New[int](tt.bits, identity)
			if !tt.ok {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1<<tt.bits, s.Cap())
			assert.Equal(t, 0, s.Len())
		})
	}

	_, err := New[int](4, nil)
	assert.Error(t, err)
}

func TestSet(t *testing.T) {
	tests := []struct {
		name string
		do   func(t *testing.T, s *Set[int])
	}{
		{
			name: "insert and contains",
			do: func(t *testing.T, s *Set[int]) {
				ok, err := s.Insert(3)
				assert.NoError(t, err)
				assert.True(t, ok)
				ok, err = s.Insert(3)
				assert.NoError(t, err)
				assert.False(t, ok)
				assert.True(t, s.Contains(3))
				assert.False(t, s.Contains(4))
				assert.Equal(t, 1, s.Len())
			},
		},
		{
			name: "collisions probe linearly",
			do: func(t *testing.T, s *Set[int]) {
				// 1, 9 and 17 all start at slot 1 of 8
				for _, k := range []int{1, 9, 17} {
					ok, err := s.Insert(k)
					require.NoError(t, err)
					require.True(t, ok)
				}
				assert.Equal(t, 9, s.slots[2].key)
				assert.Equal(t, 17, s.slots[3].key)
				assert.True(t, s.Contains(17))
			},
		},
		{
			name: "tombstone keeps probe sequence",
			do: func(t *testing.T, s *Set[int]) {
				for _, k := range []int{1, 9, 17} {
					_, err := s.Insert(k)
					require.NoError(t, err)
				}
				assert.True(t, s.Remove(9))
				assert.False(t, s.Remove(9))
				assert.Equal(t, tombstone, s.slots[2].state)
				assert.True(t, s.Contains(17), "found past the tombstone")
				assert.False(t, s.Contains(9))
			},
		},
		{
			name: "no duplicate through tombstone",
			do: func(t *testing.T, s *Set[int]) {
				for _, k := range []int{1, 9, 17} {
					_, err := s.Insert(k)
					require.NoError(t, err)
				}
				s.Remove(9)
				ok, err := s.Insert(17)
				assert.NoError(t, err)
				assert.False(t, ok, "17 is further along")
				assert.Equal(t, 2, s.Len())

				ok, err = s.Insert(25)
				assert.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, 25, s.slots[2].key, "tombstone reused")
			},
		},
		{
			name: "full",
			do: func(t *testing.T, s *Set[int]) {
				for k := 0; k < s.Cap(); k++ {
					ok, err := s.Insert(k * 3)
					require.NoError(t, err)
					require.True(t, ok)
				}
				ok, err := s.Insert(100)
				assert.ErrorIs(t, err, collection.ErrFull)
				assert.False(t, ok)

				ok, err = s.Insert(3)
				assert.NoError(t, err, "duplicate in a full table is not an error")
				assert.False(t, ok)
				assert.False(t, s.Contains(100), "full table without empty slots")

				assert.True(t, s.Remove(6))
				ok, err = s.Insert(100)
				assert.NoError(t, err)
				assert.True(t, ok)
			},
		},
		{
			name: "clear",
			do: func(t *testing.T, s *Set[int]) {
				_, _ = s.Insert(1)
				s.Remove(1)
				s.Clear()
				assert.Equal(t, 0, s.Len())
				for _, sl := range s.slots {
					assert.Equal(t, empty, sl.state)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New[int](3, identity)
			require.NoError(t, err)
			tt.do(t, s)
		})
	}
}

func TestIterator(t *testing.T) {
	s, err := New[string](4, StringHasher)
	require.NoError(t, err)

	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}
	for _, w := range words {
		_, err := s.Insert(w)
		require.NoError(t, err)
	}

	i := s.Iterator()
	assert.ErrorIs(t, i.Remove(), collection.ErrInvalidState)

	got, err := collection.Collect[string](i)
	assert.NoError(t, err)
	assert.ElementsMatch(t, words, got)
	assert.Equal(t, s.Slice(), got, "slot order")
	testutils.Drain[string](t, got, s.Iterator())

	_, err = i.Next()
	assert.ErrorIs(t, err, collection.ErrExhausted)

	n, err := collection.RemoveIf[string](s.Iterator(), func(w string) bool {
		return w[0] < 'd'
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, []string{"gamma", "delta", "epsilon"}, s.Slice())

	i = s.Iterator()
	_, err = i.Next()
	require.NoError(t, err)
	assert.NoError(t, i.Remove())
	assert.ErrorIs(t, i.Remove(), collection.ErrInvalidState)
	assert.Equal(t, 2, s.Len())
}

func TestAgainstMap(t *testing.T) {
	rd := rand.New(rand.NewSource(99))
	s, err := New[int](6, IntHasher[int])
	require.NoError(t, err)
	want := map[int]bool{}

	for op := 0; op < 5000; op++ {
		k := rd.Intn(80) - 20
		if rd.Intn(2) == 0 {
			ok, err := s.Insert(k)
			if err != nil {
				require.ErrorIs(t, err, collection.ErrFull)
				require.Equal(t, s.Cap(), s.Len())
				continue
			}
			require.Equal(t, !want[k], ok)
			want[k] = true
		} else {
			require.Equal(t, want[k], s.Remove(k))
			delete(want, k)
		}
		require.Equal(t, len(want), s.Len())
		require.Equal(t, want[k], s.Contains(k))
	}

	keys := s.Slice()
	slices.Sort(keys)
	var wantKeys []int
	for k := range want {
		wantKeys = append(wantKeys, k)
	}
	slices.Sort(wantKeys)
	assert.Equal(t, wantKeys, keys)
}

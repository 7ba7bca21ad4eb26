// Package openaddr contains a fixed-capacity hash set using open
// addressing with linear probing.
//
// The table never grows: it holds 2^bits slots and Insert fails with
// collection.ErrFull once every slot is taken. Removed elements leave a
// tombstone behind so that probe sequences running through their slot
// stay intact. Set is not safe for concurrent use.
package openaddr

import (
	"github.com/pkg/errors"
	"go.lepak.sg/sortedset/collection"
)

const (
	MinBits = 2
	MaxBits = 31
)

type slotState uint8

const (
	empty slotState = iota
	occupied
	tombstone
)

type slot[T comparable] struct {
	state slotState
	key   T
}

// Set is an open addressing hash set of comparable keys.
type Set[T comparable] struct {
	slots []slot[T]
	mask  uint64
	hash  Hasher[T]
	count int
}

// New creates a Set with 2^bits slots, hashing keys with hash.
// bits must be in [MinBits, MaxBits].
func New[T comparable](bits int, hash Hasher[T]) (*Set[T], error) {
	if bits < MinBits || bits > MaxBits {
		return nil, errors.Errorf("bits must be in [%d, %d], got %d", MinBits, MaxBits, bits)
	}
	if hash == nil {
		return nil, errors.New("nil hasher")
	}

	capacity := 1 << bits
	return &Set[T]{
		slots: make([]slot[T], capacity),
		mask:  uint64(capacity - 1),
		hash:  hash,
	}, nil
}

func (s *Set[T]) start(k T) int {
	return int(s.hash(k) & s.mask)
}

// lookup probes for k. It returns the slot holding k, or -1.
// It gives up at the first empty slot, or after visiting every slot.
func (s *Set[T]) lookup(k T) int {
	i := s.start(k)
	for range s.slots {
		switch s.slots[i].state {
		case empty:
			return -1
		case occupied:
			if s.slots[i].key == k {
				return i
			}
		case tombstone:
		default:
			panic("unreachable")
		}
		i = (i + 1) & int(s.mask)
	}
	return -1
}

// Contains returns true if k is in the set.
func (s *Set[T]) Contains(k T) bool {
	return s.lookup(k) >= 0
}

// Insert adds k to the set.
// If k is already in the set, Insert returns false.
// If there is no room for k, the error is collection.ErrFull.
func (s *Set[T]) Insert(k T) (bool, error) {
	free := -1

	i := s.start(k)
probe:
	for range s.slots {
		switch s.slots[i].state {
		case empty:
			if free < 0 {
				free = i
			}
			// k can't be further along the probe sequence
			break probe
		case occupied:
			if s.slots[i].key == k {
				return false, nil
			}
		case tombstone:
			// reuse it, but keep probing in case k is further along
			if free < 0 {
				free = i
			}
		default:
			panic("unreachable")
		}
		i = (i + 1) & int(s.mask)
	}

	if free < 0 {
		return false, errors.Wrapf(collection.ErrFull, "inserting %v into %d slots", k, len(s.slots))
	}

	s.slots[free] = slot[T]{state: occupied, key: k}
	s.count++
	return true, nil
}

// Remove removes k from the set.
// If k is not in the set, Remove returns false.
func (s *Set[T]) Remove(k T) bool {
	i := s.lookup(k)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

func (s *Set[T]) removeAt(i int) {
	var zero T
	s.slots[i] = slot[T]{state: tombstone, key: zero}
	s.count--
}

// Len returns the number of keys in the set.
func (s *Set[T]) Len() int {
	return s.count
}

// Cap returns the number of slots in the set.
func (s *Set[T]) Cap() int {
	return len(s.slots)
}

// Clear removes every key and every tombstone.
func (s *Set[T]) Clear() {
	clear(s.slots)
	s.count = 0
}

// Slice returns the keys in slot order.
func (s *Set[T]) Slice() []T {
	out := make([]T, 0, s.count)
	for _, sl := range s.slots {
		if sl.state == occupied {
			out = append(out, sl.key)
		}
	}
	return out
}

// Package testutils holds assertions shared by the collection tests.
package testutils

import (
	"github.com/stretchr/testify/assert"
	"go.lepak.sg/sortedset/collection"
)

type TestT interface {
	Logf(string, ...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Drain expects it to yield data in order, with HasNext agreeing
// with Next at every step, and then to be exhausted.
func Drain[T any](t TestT, data []T, it collection.MutableIterator[T]) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		if !assert.True(t, it.HasNext(), "i=%d: HasNext false, expecting %v", i, datum) {
			return
		}
		el, err := it.Next()
		if !assert.NoError(t, err, "i=%d", i) {
			return
		}
		assert.Equal(t, datum, el, "i=%d", i)
	}

	assert.False(t, it.HasNext(), "HasNext true after draining")
	if el, err := it.Next(); !assert.ErrorIs(t, err, collection.ErrExhausted) {
		t.Errorf("iterator should be exhausted, but yielded: %v", el)
	}
}

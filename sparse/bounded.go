package sparse

import (
	"fmt"
	"iter"
	"math"

	"github.com/hupe1980/arenago/internal/conv"
	"github.com/hupe1980/arenago/internal/slotpool"
	"github.com/hupe1980/arenago/view"
)

const noSlot = int32(-1)

// Bounded is the zero-allocation index mode for a known key space.
//
// The forward mapping is a flat array of maxKey+1 slot entries and the
// reverse mapping an array of one key per slot, both using -1 sentinels, so
// no operation after construction allocates. The price is memory
// proportional to the key space rather than to the number of live keys.
type Bounded[T view.Element] struct {
	dense     *view.Typed[T]
	keyToSlot []int32
	slotToKey []int64
	pool      *slotpool.Stack
	size      int
}

// NewBounded creates a bounded index over dense for keys in [0, maxKey].
func NewBounded[T view.Element](dense *view.Typed[T], maxKey int64) (*Bounded[T], error) {
	if dense == nil || dense.Len() == 0 {
		return nil, ErrNoView
	}
	if dense.Len() > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrTooManySlots, dense.Len())
	}
	if maxKey < 0 || maxKey == math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxKey, maxKey)
	}
	keys, err := conv.Int64ToInt(maxKey + 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxKey, maxKey)
	}

	pool, err := slotpool.NewStack(dense.Len())
	if err != nil {
		return nil, err
	}

	b := &Bounded[T]{
		dense:     dense,
		keyToSlot: make([]int32, keys),
		slotToKey: make([]int64, dense.Len()),
		pool:      pool,
	}
	for i := range b.keyToSlot {
		b.keyToSlot[i] = noSlot
	}
	for i := range b.slotToKey {
		b.slotToKey[i] = -1
	}
	return b, nil
}

// Get implements Index.
func (b *Bounded[T]) Get(key int64) (T, bool) {
	var zero T
	if key < 0 || key >= int64(len(b.keyToSlot)) {
		return zero, false
	}
	slot := b.keyToSlot[key]
	if slot == noSlot {
		return zero, false
	}
	return b.dense.Get(int(slot)), true
}

// Set implements Index.
func (b *Bounded[T]) Set(key int64, value T) bool {
	if key < 0 || key >= int64(len(b.keyToSlot)) {
		return false
	}
	if slot := b.keyToSlot[key]; slot != noSlot {
		b.dense.Set(int(slot), value)
		return true
	}

	slot, ok := b.pool.Acquire()
	if !ok {
		return false
	}
	b.dense.Set(int(slot), value)
	b.keyToSlot[key] = slot
	b.slotToKey[slot] = key
	b.size++
	return true
}

// Delete implements Index.
func (b *Bounded[T]) Delete(key int64) bool {
	if key < 0 || key >= int64(len(b.keyToSlot)) {
		return false
	}
	slot := b.keyToSlot[key]
	if slot == noSlot {
		return false
	}

	var zero T
	b.dense.Set(int(slot), zero)
	b.keyToSlot[key] = noSlot
	b.slotToKey[slot] = -1
	b.pool.Release(slot)
	b.size--
	return true
}

// Clear implements Index.
func (b *Bounded[T]) Clear() {
	b.dense.Clear()
	for i := range b.keyToSlot {
		b.keyToSlot[i] = noSlot
	}
	for i := range b.slotToKey {
		b.slotToKey[i] = -1
	}
	b.pool.Reset()
	b.size = 0
}

// Len implements Index.
func (b *Bounded[T]) Len() int { return b.size }

// Cap implements Index.
func (b *Bounded[T]) Cap() int { return b.dense.Len() }

// Kind implements Index.
func (b *Bounded[T]) Kind() view.Kind { return b.dense.Kind() }

// MaxKey returns the largest addressable key.
func (b *Bounded[T]) MaxKey() int64 { return int64(len(b.keyToSlot)) - 1 }

// Keys implements Index. Keys are yielded in slot order.
func (b *Bounded[T]) Keys() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, key := range b.slotToKey {
			if key < 0 {
				continue
			}
			if !yield(key) {
				return
			}
		}
	}
}

// All implements Index.
func (b *Bounded[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		for slot, key := range b.slotToKey {
			if key < 0 {
				continue
			}
			if !yield(key, b.dense.Get(slot)) {
				return
			}
		}
	}
}

var _ Index[float32] = (*Bounded[float32])(nil)

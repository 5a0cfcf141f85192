package sparse

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/arenago/internal/slotpool"
	"github.com/hupe1980/arenago/view"
)

// Hashed is the unbounded index mode: keys may be any non-negative int64.
//
// The forward mapping is a Go map and the live key set a roaring bitmap,
// which makes Keys and All iterate in ascending key order. Slots are
// recycled first-freed-first-reused, so a stale reference to a deleted key
// keeps reading zeroes for as long as possible before its slot is
// repopulated. Mutations may allocate.
type Hashed[T view.Element] struct {
	dense *view.Typed[T]
	slots map[int64]int32
	keys  *roaring64.Bitmap
	pool  *slotpool.FIFO
}

// NewHashed creates a hashed index over dense.
func NewHashed[T view.Element](dense *view.Typed[T]) (*Hashed[T], error) {
	if dense == nil || dense.Len() == 0 {
		return nil, ErrNoView
	}
	if dense.Len() > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d", ErrTooManySlots, dense.Len())
	}

	pool, err := slotpool.NewFIFO(dense.Len())
	if err != nil {
		return nil, err
	}

	return &Hashed[T]{
		dense: dense,
		slots: make(map[int64]int32, dense.Len()),
		keys:  roaring64.New(),
		pool:  pool,
	}, nil
}

// Get implements Index.
func (h *Hashed[T]) Get(key int64) (T, bool) {
	var zero T
	if key < 0 {
		return zero, false
	}
	slot, ok := h.slots[key]
	if !ok {
		return zero, false
	}
	return h.dense.Get(int(slot)), true
}

// Set implements Index.
func (h *Hashed[T]) Set(key int64, value T) bool {
	if key < 0 {
		return false
	}
	if slot, ok := h.slots[key]; ok {
		h.dense.Set(int(slot), value)
		return true
	}

	slot, ok := h.pool.Acquire()
	if !ok {
		return false
	}
	h.dense.Set(int(slot), value)
	h.slots[key] = slot
	h.keys.Add(uint64(key))
	return true
}

// Delete implements Index.
func (h *Hashed[T]) Delete(key int64) bool {
	if key < 0 {
		return false
	}
	slot, ok := h.slots[key]
	if !ok {
		return false
	}

	var zero T
	h.dense.Set(int(slot), zero)
	delete(h.slots, key)
	h.keys.Remove(uint64(key))
	h.pool.Release(slot)
	return true
}

// Clear implements Index.
func (h *Hashed[T]) Clear() {
	h.dense.Clear()
	clear(h.slots)
	h.keys.Clear()
	h.pool.Reset()
}

// Len implements Index.
func (h *Hashed[T]) Len() int { return len(h.slots) }

// Cap implements Index.
func (h *Hashed[T]) Cap() int { return h.dense.Len() }

// Kind implements Index.
func (h *Hashed[T]) Kind() view.Kind { return h.dense.Kind() }

// Keys implements Index. Keys are yielded in ascending order.
func (h *Hashed[T]) Keys() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		it := h.keys.Iterator()
		for it.HasNext() {
			if !yield(int64(it.Next())) {
				return
			}
		}
	}
}

// All implements Index.
func (h *Hashed[T]) All() iter.Seq2[int64, T] {
	return func(yield func(int64, T) bool) {
		it := h.keys.Iterator()
		for it.HasNext() {
			key := int64(it.Next())
			if !yield(key, h.dense.Get(int(h.slots[key]))) {
				return
			}
		}
	}
}

var _ Index[float32] = (*Hashed[float32])(nil)

// Package slotpool provides fixed-size slot allocators for dense arrays.
//
// A pool hands out slot indexes in [0, Cap()) and recycles released ones.
// Pools never grow: once Free() reaches zero, Acquire fails until a slot is
// released. Releasing a slot the caller does not own is a caller bug and is
// not detected.
package slotpool

import (
	"fmt"
	"math"
)

// Pool hands out recyclable slot indexes for a fixed-size dense array.
type Pool interface {
	// Acquire returns a free slot, or false if the pool is exhausted.
	Acquire() (int32, bool)

	// Release returns a previously acquired slot to the pool.
	Release(slot int32)

	// Reset returns every slot to the pool.
	Reset()

	// Cap returns the total number of slots.
	Cap() int

	// Free returns the number of currently available slots.
	Free() int
}

func checkCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("pool capacity must be positive: %d", capacity)
	}
	if capacity > math.MaxInt32 {
		return fmt.Errorf("pool capacity exceeds %d: %d", math.MaxInt32, capacity)
	}
	return nil
}

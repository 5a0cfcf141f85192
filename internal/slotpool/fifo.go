package slotpool

import (
	"github.com/eapache/queue"
)

// FIFO is a slot pool backed by a ring-buffer queue.
//
// Slots are reused in release order: the slot freed longest ago is handed
// out first. Compared to Stack this delays reuse, so a stale reference to a
// released slot keeps reading zeroes for longer before the slot is
// repopulated. Acquire and Release box slot indexes and may allocate.
type FIFO struct {
	q        *queue.Queue
	capacity int32
}

// NewFIFO creates a FIFO pool with the given number of slots.
func NewFIFO(capacity int) (*FIFO, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}

	f := &FIFO{
		q:        queue.New(),
		capacity: int32(capacity),
	}
	f.refill()
	return f, nil
}

// Acquire implements Pool.
func (f *FIFO) Acquire() (int32, bool) {
	if f.q.Length() == 0 {
		return 0, false
	}
	return f.q.Remove().(int32), true
}

// Release implements Pool.
func (f *FIFO) Release(slot int32) {
	f.q.Add(slot)
}

// Reset implements Pool.
func (f *FIFO) Reset() {
	for f.q.Length() > 0 {
		f.q.Remove()
	}
	f.refill()
}

// Cap implements Pool.
func (f *FIFO) Cap() int { return int(f.capacity) }

// Free implements Pool.
func (f *FIFO) Free() int { return f.q.Length() }

func (f *FIFO) refill() {
	for i := int32(0); i < f.capacity; i++ {
		f.q.Add(i)
	}
}

var _ Pool = (*FIFO)(nil)

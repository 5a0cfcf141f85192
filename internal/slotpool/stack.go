package slotpool

// Stack is a LIFO slot pool backed by a pre-filled free list.
//
// A fresh (or Reset) stack hands out slots in ascending order starting at 0.
// After releases, the most recently freed slot is reused first, which keeps
// the hot end of the dense array in cache. No operation allocates.
type Stack struct {
	free     []int32
	capacity int32
}

// NewStack creates a stack pool with the given number of slots.
func NewStack(capacity int) (*Stack, error) {
	if err := checkCapacity(capacity); err != nil {
		return nil, err
	}

	s := &Stack{
		free:     make([]int32, capacity),
		capacity: int32(capacity),
	}
	s.refill()
	return s, nil
}

// Acquire implements Pool.
func (s *Stack) Acquire() (int32, bool) {
	n := len(s.free)
	if n == 0 {
		return 0, false
	}
	slot := s.free[n-1]
	s.free = s.free[:n-1]
	return slot, true
}

// Release implements Pool.
func (s *Stack) Release(slot int32) {
	s.free = append(s.free, slot)
}

// Reset implements Pool.
func (s *Stack) Reset() {
	s.free = s.free[:s.capacity]
	s.refill()
}

// Cap implements Pool.
func (s *Stack) Cap() int { return int(s.capacity) }

// Free implements Pool.
func (s *Stack) Free() int { return len(s.free) }

// refill orders the free list so the lowest slot is on top.
func (s *Stack) refill() {
	for i := range s.free {
		s.free[i] = s.capacity - 1 - int32(i)
	}
}

var _ Pool = (*Stack)(nil)

package view

import (
	"errors"
	"fmt"
	"iter"
	"unsafe"
)

var (
	// ErrSizeMismatch is returned when the buffer length does not equal
	// count times the element width.
	ErrSizeMismatch = errors.New("buffer size does not match element count")
	// ErrMisaligned is returned when the buffer base address is not a
	// multiple of the element width.
	ErrMisaligned = errors.New("buffer is not aligned for element width")
	// ErrInvalidKind is returned for kinds with no concrete element type.
	ErrInvalidKind = errors.New("invalid element kind")
	// ErrKindMismatch is returned when a column holds a different element
	// type than requested.
	ErrKindMismatch = errors.New("column kind mismatch")
)

// Typed is a fixed-length view of count elements of type T over a byte
// region. The view aliases the region: element writes are byte writes.
//
// Reads and writes use ordinary slice indexing, so out-of-range rows panic.
type Typed[T Element] struct {
	data []T
	kind Kind
}

// New wraps buf in a typed view of count elements.
//
// len(buf) must equal count times the element width, and the base address
// of buf must be aligned to the element width. Both hold by construction
// for regions carved from an arena.
func New[T Element](buf []byte, count int) (*Typed[T], error) {
	kind := KindOf[T]()
	width := kind.Width()

	if count < 0 || len(buf) != count*width {
		return nil, fmt.Errorf("%w: %d bytes for %d x %s", ErrSizeMismatch, len(buf), count, kind)
	}
	if count == 0 {
		return &Typed[T]{kind: kind}, nil
	}

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required to reinterpret the buffer
	if uintptr(ptr)%uintptr(width) != 0 {
		return nil, fmt.Errorf("%w: %s at %#x", ErrMisaligned, kind, uintptr(ptr))
	}

	return &Typed[T]{
		data: unsafe.Slice((*T)(ptr), count), //nolint:gosec // alignment checked above
		kind: kind,
	}, nil
}

// Kind returns the element kind.
func (v *Typed[T]) Kind() Kind { return v.kind }

// Len returns the number of elements.
func (v *Typed[T]) Len() int { return len(v.data) }

// Width returns the element size in bytes.
func (v *Typed[T]) Width() int { return v.kind.Width() }

// Get returns the element at row i.
func (v *Typed[T]) Get(i int) T { return v.data[i] }

// Set stores val at row i.
func (v *Typed[T]) Set(i int, val T) { v.data[i] = val }

// Fill sets every element to val.
func (v *Typed[T]) Fill(val T) {
	for i := range v.data {
		v.data[i] = val
	}
}

// Clear zeroes every element.
func (v *Typed[T]) Clear() {
	clear(v.data)
}

// Slice returns the elements as a []T aliasing the underlying bytes.
// Mutations through the slice are visible through the view and vice versa.
func (v *Typed[T]) Slice() []T { return v.data }

// Bytes returns the underlying byte region.
func (v *Typed[T]) Bytes() []byte {
	if len(v.data) == 0 {
		return nil
	}
	ptr := unsafe.Pointer(&v.data[0])                              //nolint:gosec // inverse of the New conversion
	return unsafe.Slice((*byte)(ptr), len(v.data)*v.kind.Width()) //nolint:gosec // inverse of the New conversion
}

// All iterates over (row, element) pairs in row order.
func (v *Typed[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, val := range v.data {
			if !yield(i, val) {
				return
			}
		}
	}
}

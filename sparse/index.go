package sparse

import (
	"errors"
	"iter"

	"github.com/hupe1980/arenago/view"
)

var (
	// ErrNoView is returned when the dense view is nil or empty.
	ErrNoView = errors.New("dense view is required")
	// ErrTooManySlots is returned when the dense view has more slots than
	// an int32 slot index can address.
	ErrTooManySlots = errors.New("dense view exceeds maximum slot count")
	// ErrInvalidMaxKey is returned when the bounded key space is negative
	// or too large for the platform.
	ErrInvalidMaxKey = errors.New("maximum key is out of range")
)

// Index maps a sparse set of non-negative int64 keys onto a small dense
// view, recycling dense slots as keys come and go.
//
// Steady-state misuse is reported through return values, never errors:
// Get and Delete return false for absent or out-of-range keys, and Set
// returns false, with no side effects, when the key is out of range or
// every dense slot is taken.
//
// An Index is not safe for concurrent mutation.
type Index[T view.Element] interface {
	// Get returns the value stored for key.
	Get(key int64) (T, bool)

	// Set stores value under key, reusing the key's slot when present and
	// acquiring a fresh one otherwise. It reports whether the value was
	// stored.
	Set(key int64, value T) bool

	// Delete removes key, zeroes its dense slot and recycles it.
	// It reports whether the key was present.
	Delete(key int64) bool

	// Clear removes every key at once and zeroes the dense view.
	// The index is afterwards indistinguishable from a fresh one.
	Clear()

	// Len returns the number of live keys.
	Len() int

	// Cap returns the number of dense slots.
	Cap() int

	// Kind returns the element kind of the dense view.
	Kind() view.Kind

	// Keys iterates over the live keys. Bounded indexes yield keys in
	// slot order; hashed indexes yield them in ascending key order.
	Keys() iter.Seq[int64]

	// All iterates over (key, value) pairs in the same order as Keys.
	All() iter.Seq2[int64, T]
}

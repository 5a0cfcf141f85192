// Package align provides power-of-two alignment math for buffer layout.
package align

// IsPowerOfTwo reports whether v is a power of two.
// Zero is not a power of two.
func IsPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// Up rounds v up to the next multiple of a.
// a must be a power of two.
func Up(v, a uint64) uint64 {
	return (v + a - 1) &^ (a - 1)
}

package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, v := range []uint64{1, 2, 4, 8, 16, 64, 1024, 1 << 32, 1 << 62} {
		assert.True(t, IsPowerOfTwo(v), "%d should be a power of two", v)
	}
	for _, v := range []uint64{0, 3, 5, 6, 7, 9, 12, 100, 1<<32 + 1} {
		assert.False(t, IsPowerOfTwo(v), "%d should not be a power of two", v)
	}
}

func TestUp(t *testing.T) {
	tests := []struct {
		v, a, want uint64
	}{
		{0, 8, 0},
		{1, 8, 8},
		{7, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{64, 8, 64},
		{65, 8, 72},
		{3, 4, 4},
		{5, 1, 5},
		{1000, 64, 1024},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Up(tt.v, tt.a), "Up(%d, %d)", tt.v, tt.a)
	}
}

func TestUpIsIdempotent(t *testing.T) {
	for v := uint64(0); v < 100; v++ {
		for _, a := range []uint64{1, 2, 4, 8, 16} {
			up := Up(v, a)
			assert.Equal(t, up, Up(up, a), "v=%d a=%d", v, a)
			assert.Zero(t, up%a, "v=%d a=%d", v, a)
			assert.LessOrEqual(t, v, up, "v=%d a=%d", v, a)
		}
	}
}

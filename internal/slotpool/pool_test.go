package slotpool

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPools(t *testing.T, capacity int) map[string]Pool {
	t.Helper()

	stack, err := NewStack(capacity)
	require.NoError(t, err)
	fifo, err := NewFIFO(capacity)
	require.NoError(t, err)

	return map[string]Pool{
		"stack": stack,
		"fifo":  fifo,
	}
}

func TestPoolAcquireAscendingWhenFresh(t *testing.T) {
	for name, p := range newPools(t, 4) {
		t.Run(name, func(t *testing.T) {
			for want := int32(0); want < 4; want++ {
				slot, ok := p.Acquire()
				require.True(t, ok)
				assert.Equal(t, want, slot)
			}
			_, ok := p.Acquire()
			assert.False(t, ok, "pool should be exhausted")
		})
	}
}

func TestPoolExhaustionAndRelease(t *testing.T) {
	for name, p := range newPools(t, 2) {
		t.Run(name, func(t *testing.T) {
			a, ok := p.Acquire()
			require.True(t, ok)
			_, ok = p.Acquire()
			require.True(t, ok)

			_, ok = p.Acquire()
			assert.False(t, ok)
			assert.Equal(t, 0, p.Free())

			p.Release(a)
			assert.Equal(t, 1, p.Free())

			got, ok := p.Acquire()
			require.True(t, ok)
			assert.Equal(t, a, got, "released slot should be reusable")
		})
	}
}

func TestPoolReset(t *testing.T) {
	for name, p := range newPools(t, 3) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				_, ok := p.Acquire()
				require.True(t, ok)
			}
			require.Equal(t, 0, p.Free())

			p.Reset()
			assert.Equal(t, 3, p.Free())
			assert.Equal(t, 3, p.Cap())

			slot, ok := p.Acquire()
			require.True(t, ok)
			assert.Equal(t, int32(0), slot, "reset pool should start over at slot 0")
		})
	}
}

func TestStackReusesMostRecentFirst(t *testing.T) {
	p, err := NewStack(4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, ok := p.Acquire()
		require.True(t, ok)
	}

	p.Release(1)
	p.Release(3)

	slot, ok := p.Acquire()
	require.True(t, ok)
	assert.Equal(t, int32(3), slot)
}

func TestFIFOReusesOldestFirst(t *testing.T) {
	p, err := NewFIFO(4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, ok := p.Acquire()
		require.True(t, ok)
	}

	p.Release(1)
	p.Release(3)

	slot, ok := p.Acquire()
	require.True(t, ok)
	assert.Equal(t, int32(1), slot)
}

func TestPoolInvalidCapacity(t *testing.T) {
	_, err := NewStack(0)
	assert.Error(t, err)
	_, err = NewStack(-1)
	assert.Error(t, err)
	_, err = NewFIFO(0)
	assert.Error(t, err)
	tooBig := math.MaxInt32
	_, err = NewFIFO(tooBig + 1)
	assert.Error(t, err)
}

func TestStackSteadyStateAllocs(t *testing.T) {
	p, err := NewStack(64)
	require.NoError(t, err)

	allocs := testing.AllocsPerRun(1000, func() {
		slot, _ := p.Acquire()
		p.Release(slot)
	})
	assert.Zero(t, allocs)

	resets := testing.AllocsPerRun(100, func() {
		p.Reset()
	})
	assert.Zero(t, resets)
}

func BenchmarkPoolAcquireRelease(b *testing.B) {
	for _, capacity := range []int{64, 1024} {
		stack, _ := NewStack(capacity)
		fifo, _ := NewFIFO(capacity)
		for name, p := range map[string]Pool{"stack": stack, "fifo": fifo} {
			b.Run(fmt.Sprintf("%s/cap=%d", name, capacity), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					slot, _ := p.Acquire()
					p.Release(slot)
				}
			})
		}
	}
}

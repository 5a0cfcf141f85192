package arenago_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/arenago"
	"github.com/hupe1980/arenago/resource"
	"github.com/hupe1980/arenago/schema"
)

func TestClose(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		a, err := arenago.New(1024, 16)
		require.NoError(t, err)

		require.NoError(t, a.Close())
		require.NoError(t, a.Close())
	})

	t.Run("RejectsFurtherUse", func(t *testing.T) {
		a, err := arenago.New(1024, 16)
		require.NoError(t, err)

		_, err = a.AddPartition(arenago.DensePartition("pos", schema.Schema{schema.F32("x")}))
		require.NoError(t, err)

		require.NoError(t, a.Close())

		_, err = a.AddPartition(arenago.DensePartition("late", schema.Schema{schema.U8("v")}))
		require.ErrorIs(t, err, arenago.ErrClosed)
		assert.False(t, a.Has("pos"))
	})
}

func TestMemoryBudget(t *testing.T) {
	ctrl := resource.NewController(resource.Config{MemoryLimitBytes: 2048})

	a1, err := arenago.New(1024, 16, arenago.WithController(ctrl))
	require.NoError(t, err)
	assert.Equal(t, int64(1024), ctrl.MemoryUsage())

	a2, err := arenago.New(1024, 16, arenago.WithController(ctrl))
	require.NoError(t, err)
	assert.Equal(t, int64(2048), ctrl.MemoryUsage())

	// Budget is exhausted: construction gives up after its bounded wait.
	_, err = arenago.New(512, 8, arenago.WithController(ctrl))
	require.Error(t, err)
	assert.Equal(t, int64(2048), ctrl.MemoryUsage())

	require.NoError(t, a1.Close())
	assert.Equal(t, int64(1024), ctrl.MemoryUsage())

	// Closing again must not release the budget twice.
	require.NoError(t, a1.Close())
	assert.Equal(t, int64(1024), ctrl.MemoryUsage())

	a3, err := arenago.New(512, 8, arenago.WithController(ctrl))
	require.NoError(t, err)
	assert.Equal(t, int64(1536), ctrl.MemoryUsage())

	require.NoError(t, a2.Close())
	require.NoError(t, a3.Close())
	assert.Equal(t, int64(0), ctrl.MemoryUsage())
}

func TestMappedBacking(t *testing.T) {
	a, err := arenago.New(64*1024, 1024, arenago.WithMappedBacking())
	require.NoError(t, err)

	p, err := a.AddPartition(arenago.DensePartition("pos", schema.Schema{
		schema.F32("x"),
		schema.F32("y"),
	}))
	require.NoError(t, err)

	xs, err := arenago.ColumnOf[float32](p, "x")
	require.NoError(t, err)

	for i := range xs.Len() {
		xs.Set(i, float32(i))
	}
	assert.Equal(t, float32(512), xs.Get(512))

	require.NoError(t, a.Close())
	require.NoError(t, a.Close())
}

func TestSharedFileBacking(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "arena.bin")

		// Pre-populate the file so the zeroing at construction is observable.
		dirty := make([]byte, 4096)
		for i := range dirty {
			dirty[i] = 0xFF
		}
		require.NoError(t, os.WriteFile(path, dirty, 0o644))

		a, err := arenago.New(4096, 64, arenago.WithSharedFileBacking(path))
		require.NoError(t, err)

		p, err := a.AddPartition(arenago.DensePartition("seq", schema.Schema{schema.U64("n")}))
		require.NoError(t, err)

		ns, err := arenago.ColumnOf[uint64](p, "n")
		require.NoError(t, err)

		// Stale file content was wiped before the partition was carved.
		assert.Equal(t, uint64(0), ns.Get(0))

		ns.Set(0, 0x1122334455667788)
		ns.Set(63, 7)

		// Writes through the view land in the shared file.
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Len(t, raw, 4096)
		assert.NotEqual(t, make([]byte, 8), raw[:8])
		assert.Equal(t, make([]byte, 4096-512), raw[512:])

		require.NoError(t, a.Close())

		// The file outlives the arena.
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, int64(4096), info.Size())
	})

	t.Run("EmptyPath", func(t *testing.T) {
		_, err := arenago.New(1024, 16, arenago.WithSharedFileBacking(""))
		require.ErrorIs(t, err, arenago.ErrConfig)
	})
}

func TestCallerBacking(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		buf := make([]byte, 2048)
		for i := range buf {
			buf[i] = 0xFF
		}
		buf[1500] = 0xAB

		a, err := arenago.New(1024, 16, arenago.WithBacking(buf))
		require.NoError(t, err)

		p, err := a.AddPartition(arenago.DensePartition("flags", schema.Schema{schema.U8("v")}))
		require.NoError(t, err)

		vs, err := arenago.ColumnOf[uint8](p, "v")
		require.NoError(t, err)

		// The arena zeroed its slice of the dirty buffer.
		for i := range 16 {
			assert.Equal(t, uint8(0), vs.Get(i))
		}

		vs.Set(0, 42)
		assert.Equal(t, uint8(42), buf[0])

		// Bytes beyond the arena's capacity belong to the caller.
		assert.Equal(t, byte(0xAB), buf[1500])

		require.NoError(t, a.Close())
		assert.Equal(t, byte(0xAB), buf[1500])
	})

	t.Run("TooSmall", func(t *testing.T) {
		_, err := arenago.New(1024, 16, arenago.WithBacking(make([]byte, 512)))
		require.ErrorIs(t, err, arenago.ErrConfig)
	})
}

func TestAdvise(t *testing.T) {
	t.Run("MappedBacking", func(t *testing.T) {
		a, err := arenago.New(64*1024, 1024, arenago.WithMappedBacking())
		require.NoError(t, err)
		defer a.Close()

		require.NoError(t, a.Advise(arenago.AccessSequential))
		require.NoError(t, a.Advise(arenago.AccessRandom))
		require.NoError(t, a.Advise(arenago.AccessDefault))
	})

	t.Run("HeapBackingIsNoop", func(t *testing.T) {
		a, err := arenago.New(1024, 16)
		require.NoError(t, err)
		defer a.Close()

		require.NoError(t, a.Advise(arenago.AccessWillNeed))
	})

	t.Run("Closed", func(t *testing.T) {
		a, err := arenago.New(1024, 16, arenago.WithMappedBacking())
		require.NoError(t, err)
		require.NoError(t, a.Close())

		require.ErrorIs(t, a.Advise(arenago.AccessRandom), arenago.ErrClosed)
	})
}

func TestConcurrentPartitionAccess(t *testing.T) {
	a, err := arenago.New(64*1024, 256)
	require.NoError(t, err)
	defer a.Close()

	specs := make([]*arenago.PartitionSpec, 8)
	for i := range specs {
		specs[i] = arenago.DensePartition("worker_"+string(rune('a'+i)), schema.Schema{
			schema.I64("value"),
		})
		_, err := a.AddPartition(specs[i])
		require.NoError(t, err)
	}

	var g errgroup.Group
	for i := range specs {
		g.Go(func() error {
			p, ok := a.PartitionOf(specs[i])
			if !ok {
				return assert.AnError
			}
			col, err := arenago.ColumnOf[int64](p, "value")
			if err != nil {
				return err
			}
			for row := range col.Len() {
				col.Set(row, int64(i*1000+row))
			}
			for row := range col.Len() {
				if col.Get(row) != int64(i*1000+row) {
					return assert.AnError
				}
			}
			return nil
		})
	}

	// Lookups run concurrently with the writers above.
	g.Go(func() error {
		for range 1000 {
			if !a.Has("worker_a") {
				return assert.AnError
			}
		}
		return nil
	})

	require.NoError(t, g.Wait())
	assert.Equal(t, 8, a.Partitions())
}

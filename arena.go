package arenago

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/time/rate"

	"github.com/hupe1980/arenago/internal/align"
	"github.com/hupe1980/arenago/internal/conv"
	"github.com/hupe1980/arenago/internal/mem"
	"github.com/hupe1980/arenago/internal/mmap"
	"github.com/hupe1980/arenago/internal/naming"
	"github.com/hupe1980/arenago/resource"
	"github.com/hupe1980/arenago/schema"
)

const (
	// MinRows is the smallest row count an arena accepts. Below this the
	// per-property alignment padding dominates the buffer.
	MinRows = 8

	// acquireTimeout bounds the wait on a memory budget during New, so a
	// full budget fails construction instead of hanging it.
	acquireTimeout = 100 * time.Millisecond
)

// Stats is a point-in-time snapshot of arena bookkeeping.
//
// BytesUsed counts every byte between the buffer start and the bump
// cursor, alignment padding included; BytesPadded is the padding share
// of that.
type Stats struct {
	Capacity    int
	Rows        int
	Partitions  int
	BytesUsed   uint64
	BytesFree   uint64
	BytesPadded uint64
	Resets      uint64
}

// Arena is a fixed-capacity buffer carved at run time into named, typed
// partitions. Placement is bump-pointer: the cursor only moves forward,
// partitions never relocate, and the only way to reclaim space is Reset.
//
// Thread safety: AddPartition, Reset and Close serialize behind an
// internal mutex and lookups may run concurrently with them. Data access
// through the returned views is not synchronized; Reset and Close must
// not race with view access.
type Arena struct {
	mu       sync.RWMutex
	capacity int
	rows     int
	cursor   int
	buf      []byte
	mapping  *mmap.Mapping

	// callerOwned marks a backing buffer supplied via WithBacking, which
	// Close must not free.
	callerOwned bool

	byName map[string]*Partition
	bySpec map[*PartitionSpec]*Partition
	order  []*Partition
	nextID uint32
	resets uint64
	padded uint64

	logger       *Logger
	metrics      MetricsCollector
	controller   *resource.Controller
	capacityWarn rate.Sometimes

	closed atomic.Bool
}

// New creates an arena of capacity bytes holding rows slots per dense
// property. Capacity must be a positive multiple of rows, rows at least
// MinRows, and both must fit in 32 bits.
//
// The backing store defaults to 64-byte-aligned heap memory; see
// WithMappedBacking, WithSharedFileBacking and WithBacking for the
// alternatives.
func New(capacity, rows int, optFns ...Option) (*Arena, error) {
	o := applyOptions(optFns)

	if capacity <= 0 {
		return nil, newConfigError("capacity must be positive")
	}
	if rows < MinRows {
		return nil, newConfigError(fmt.Sprintf("rows must be at least %d", MinRows))
	}
	if _, err := conv.IntToUint32(capacity); err != nil {
		return nil, newConfigError("capacity does not fit in 32 bits")
	}
	if _, err := conv.IntToUint32(rows); err != nil {
		return nil, newConfigError("rows do not fit in 32 bits")
	}
	if capacity%rows != 0 {
		return nil, newConfigError("capacity must be a multiple of rows")
	}
	if o.backing == backingShared && o.sharedPath == "" {
		return nil, newConfigError("shared backing path is empty")
	}

	var (
		buf         []byte
		callerOwned bool
	)
	if o.backing == backingCaller {
		b := o.callerBuf
		if len(b) < capacity {
			return nil, newConfigError(fmt.Sprintf("backing buffer holds %d bytes, need %d", len(b), capacity))
		}
		if uintptr(unsafe.Pointer(&b[0]))%schema.MinAlign != 0 { //nolint:gosec // alignment probe on the caller's buffer
			return nil, newConfigError("backing buffer base is not 8-byte aligned")
		}
		buf = b[:capacity:capacity]
		callerOwned = true
	}

	if o.controller != nil {
		ctx, cancel := context.WithTimeout(context.Background(), acquireTimeout)
		defer cancel()
		if err := o.controller.AcquireMemory(ctx, int64(capacity)); err != nil {
			return nil, fmt.Errorf("acquire memory budget: %w", err)
		}
	}

	var mapping *mmap.Mapping
	switch {
	case callerOwned:
		clear(buf)
	case o.backing == backingMapped:
		m, err := mmap.MapAnon(capacity)
		if err != nil {
			if o.controller != nil {
				o.controller.ReleaseMemory(int64(capacity))
			}
			return nil, fmt.Errorf("map anonymous backing: %w", err)
		}
		mapping = m
		buf = m.Bytes()
	case o.backing == backingShared:
		m, err := mmap.OpenShared(o.sharedPath, capacity)
		if err != nil {
			if o.controller != nil {
				o.controller.ReleaseMemory(int64(capacity))
			}
			return nil, fmt.Errorf("map shared file backing: %w", err)
		}
		mapping = m
		buf = m.Bytes()
		// The file may carry bytes from a previous run; partitions expect
		// an all-zero region.
		clear(buf)
	default:
		buf = mem.AllocAligned(capacity)
	}

	a := &Arena{
		capacity:     capacity,
		rows:         rows,
		buf:          buf,
		mapping:      mapping,
		callerOwned:  callerOwned,
		byName:       make(map[string]*Partition),
		bySpec:       make(map[*PartitionSpec]*Partition),
		logger:       o.logger,
		metrics:      o.metricsCollector,
		controller:   o.controller,
		capacityWarn: rate.Sometimes{First: 3, Interval: time.Minute},
	}

	a.logger.Debug("arena created",
		slog.Int("capacity", capacity),
		slog.Int("rows", rows),
	)

	return a, nil
}

// AddPartition registers a partition described by spec and returns its
// storage. Registration is all-or-nothing: a failed call leaves the
// cursor and both lookup maps exactly as they were.
//
// Tag specs carry no schema and occupy no storage; they return (nil, nil)
// without touching arena state. Re-adding an already registered spec
// returns the existing partition unchanged. A nil spec panics.
func (a *Arena) AddPartition(spec *PartitionSpec) (*Partition, error) {
	if spec == nil {
		panic("arenago: nil partition spec")
	}
	if spec.Tag() {
		return nil, nil
	}

	start := time.Now()
	p, reserved, err := a.add(spec)
	a.metrics.RecordAddPartition(reserved, time.Since(start), err)

	var id uint32
	if p != nil {
		id = p.id
	}
	a.logger.LogAddPartition(spec.name, id, reserved, err)

	var capErr *CapacityError
	if errors.As(err, &capErr) {
		a.capacityWarn.Do(func() {
			a.logger.Warn("arena capacity exhausted",
				slog.String("partition", capErr.Partition),
				slog.Uint64("required", capErr.Required),
				slog.Uint64("available", capErr.Available),
			)
		})
	}

	return p, err
}

func (a *Arena) add(spec *PartitionSpec) (*Partition, uint64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed.Load() {
		return nil, 0, ErrClosed
	}
	if p, ok := a.bySpec[spec]; ok {
		return p, 0, nil
	}
	if err := a.validateSpec(spec); err != nil {
		return nil, 0, err
	}

	count := a.rows
	if spec.sparse && spec.maxOwners < count {
		count = spec.maxOwners
	}

	size, payload, err := partitionSize(spec, count)
	if err != nil {
		return nil, 0, err
	}
	length, err := conv.Uint64ToInt(size)
	if err != nil {
		return nil, 0, newValidationError(spec.name, "partition size overflows the address space", err)
	}

	free := uint64(a.capacity - a.cursor)
	if size > free {
		return nil, 0, newCapacityError(spec.name, size, free)
	}

	p, err := a.buildPartition(spec, count, length)
	if err != nil {
		// Property fills may have touched the candidate region; restore
		// the all-zero state beyond the cursor.
		clear(a.buf[a.cursor : a.cursor+length])
		return nil, 0, err
	}

	a.byName[spec.name] = p
	a.bySpec[spec] = p
	a.order = append(a.order, p)
	a.cursor += length
	a.padded += size - payload

	return p, size, nil
}

func (a *Arena) validateSpec(spec *PartitionSpec) error {
	if err := naming.Validate(spec.name); err != nil {
		return newValidationError(spec.name, "invalid partition name", err)
	}
	if _, ok := a.byName[spec.name]; ok {
		return newDuplicateNameError(spec.name)
	}
	if err := spec.schema.Validate(); err != nil {
		return newValidationError(spec.name, "invalid schema", err)
	}

	if spec.sparse {
		if spec.maxOwners <= 0 {
			return newValidationError(spec.name, "max owners must be positive", nil)
		}
		if spec.maxOwners > math.MaxInt32 {
			return newValidationError(spec.name, "max owners exceeds the slot pool range", nil)
		}
		if spec.bounded {
			if spec.maxKey < 0 {
				return newValidationError(spec.name, "max key must be non-negative", nil)
			}
			if spec.maxKey == math.MaxInt64 {
				return newValidationError(spec.name, "max key is too large", nil)
			}
			if _, err := conv.Int64ToInt(spec.maxKey + 1); err != nil {
				return newValidationError(spec.name, "max key range does not fit memory", err)
			}
		}
	}

	return nil
}

// partitionSize computes the total aligned byte length of a partition and
// its payload share, walking the schema in declaration order. All math is
// in uint64 so oversized schemas surface as capacity failures instead of
// wrapping.
func partitionSize(spec *PartitionSpec, count int) (total, payload uint64, err error) {
	maxAlign := uint64(schema.MinAlign)
	n := uint64(count)

	for _, f := range spec.schema {
		w := uint64(f.Kind.Width())
		al := w
		if al < schema.MinAlign {
			al = schema.MinAlign
		}
		if !align.IsPowerOfTwo(al) {
			return 0, 0, newValidationError(spec.name, fmt.Sprintf("alignment %d of property %q is not a power of two", al, f.Name), nil)
		}
		if al > maxAlign {
			maxAlign = al
		}
		total = align.Up(total, al)
		total += n * w
		payload += n * w
	}

	// Pad to the widest alignment seen so the next partition starts
	// correctly aligned regardless of its own first property.
	total = align.Up(total, maxAlign)

	return total, payload, nil
}

func (a *Arena) buildPartition(spec *PartitionSpec, count, length int) (*Partition, error) {
	views := make(map[string]View, len(spec.schema))
	order := make([]string, 0, len(spec.schema))

	rel := 0
	for _, f := range spec.schema {
		w := f.Kind.Width()
		al := w
		if al < schema.MinAlign {
			al = schema.MinAlign
		}
		rel = int(align.Up(uint64(rel), uint64(al))) //nolint:gosec // rel is bounded by the capacity check

		lo := a.cursor + rel
		hi := lo + count*w
		seg := a.buf[lo:hi:hi]

		var (
			v   View
			err error
		)
		if spec.sparse {
			v, err = newSparseView(f, seg, count, spec.bounded, spec.maxKey)
		} else {
			v, err = newDenseView(f, seg, count)
		}
		if err != nil {
			return nil, newValidationError(spec.name, fmt.Sprintf("property %q cannot be viewed", f.Name), err)
		}

		views[f.Name] = v
		order = append(order, f.Name)
		rel += count * w
	}

	p := &Partition{
		id:         a.nextID,
		spec:       spec,
		byteOffset: a.cursor,
		byteLength: length,
		count:      count,
		views:      views,
		order:      order,
	}
	a.nextID++

	return p, nil
}

// Partition returns the partition registered under name.
func (a *Arena) Partition(name string) (*Partition, bool) {
	a.mu.RLock()
	p, ok := a.byName[name]
	a.mu.RUnlock()

	a.metrics.RecordLookup(ok)
	return p, ok
}

// PartitionOf returns the partition registered under spec's identity.
// A nil spec panics.
func (a *Arena) PartitionOf(spec *PartitionSpec) (*Partition, bool) {
	if spec == nil {
		panic("arenago: nil partition spec")
	}

	a.mu.RLock()
	p, ok := a.bySpec[spec]
	a.mu.RUnlock()

	a.metrics.RecordLookup(ok)
	return p, ok
}

// Has reports whether a partition is registered under name.
func (a *Arena) Has(name string) bool {
	_, ok := a.Partition(name)
	return ok
}

// HasSpec reports whether spec's identity is registered. A nil spec
// panics.
func (a *Arena) HasSpec(spec *PartitionSpec) bool {
	_, ok := a.PartitionOf(spec)
	return ok
}

// Capacity returns the total buffer size in bytes.
func (a *Arena) Capacity() int { return a.capacity }

// Rows returns the dense slot count per property.
func (a *Arena) Rows() int { return a.rows }

// Offset returns the current bump cursor position.
func (a *Arena) Offset() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cursor
}

// FreeSpace returns the bytes still available for partitions.
func (a *Arena) FreeSpace() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.capacity - a.cursor
}

// Partitions returns the number of registered partitions.
func (a *Arena) Partitions() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.order)
}

// All iterates the registered partitions in registration order. The
// sequence is a snapshot; mutating the arena mid-iteration is safe.
func (a *Arena) All() iter.Seq[*Partition] {
	return func(yield func(*Partition) bool) {
		a.mu.RLock()
		snapshot := make([]*Partition, len(a.order))
		copy(snapshot, a.order)
		a.mu.RUnlock()

		for _, p := range snapshot {
			if !yield(p) {
				return
			}
		}
	}
}

// Reset returns the arena to its freshly constructed state: every view is
// cleared (sparse indexes dispose their keys, dense views zero-fill),
// both lookup maps empty, cursor back to zero. Previously returned
// partitions and views are stale afterwards.
func (a *Arena) Reset() {
	start := time.Now()

	a.mu.Lock()
	if a.closed.Load() {
		a.mu.Unlock()
		return
	}
	n := len(a.order)
	a.resetLocked()
	a.mu.Unlock()

	a.metrics.RecordReset(n, time.Since(start))
	a.logger.LogReset(n)
}

func (a *Arena) resetLocked() {
	for _, p := range a.order {
		p.reset()
	}

	clear(a.byName)
	clear(a.bySpec)
	a.order = a.order[:0]
	a.cursor = 0
	a.padded = 0
	a.resets++
}

// Close resets the arena, releases any memory budget and unmaps mapped
// backing. Caller-provided backing is never freed. Close is idempotent; it
// must not race with view access.
func (a *Arena) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return nil
	}

	a.mu.Lock()
	a.resetLocked()

	var err error
	if a.mapping != nil {
		err = a.mapping.Close()
		a.mapping = nil
	}
	a.buf = nil
	a.mu.Unlock()

	if a.controller != nil {
		a.controller.ReleaseMemory(int64(a.capacity))
	}

	a.logger.LogClose(err)
	return err
}

// AccessPattern hints how the backing region is about to be accessed.
type AccessPattern int

const (
	// AccessDefault restores the operating system's default behavior.
	AccessDefault AccessPattern = iota
	// AccessSequential announces a linear sweep, such as a full-column scan.
	AccessSequential
	// AccessRandom announces scattered row access.
	AccessRandom
	// AccessWillNeed asks for pages to be faulted in ahead of use.
	AccessWillNeed
	// AccessDontNeed marks the region cold so pages may be reclaimed.
	AccessDontNeed
)

// Advise forwards an access hint for the backing region to the operating
// system. Only mapped and shared file backing reach the kernel; for heap
// and caller-provided buffers Advise is a no-op. Returns ErrClosed after
// Close.
func (a *Arena) Advise(pattern AccessPattern) error {
	if a.closed.Load() {
		return ErrClosed
	}

	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.mapping == nil {
		return nil
	}
	return a.mapping.Advise(mmapPattern(pattern))
}

func mmapPattern(p AccessPattern) mmap.AccessPattern {
	switch p {
	case AccessSequential:
		return mmap.AccessSequential
	case AccessRandom:
		return mmap.AccessRandom
	case AccessWillNeed:
		return mmap.AccessWillNeed
	case AccessDontNeed:
		return mmap.AccessDontNeed
	default:
		return mmap.AccessDefault
	}
}

// Stats returns a snapshot of the arena bookkeeping.
func (a *Arena) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Stats{
		Capacity:    a.capacity,
		Rows:        a.rows,
		Partitions:  len(a.order),
		BytesUsed:   uint64(a.cursor),
		BytesFree:   uint64(a.capacity - a.cursor),
		BytesPadded: a.padded,
		Resets:      a.resets,
	}
}

// Usage returns the used share of the buffer as a percentage.
func (a *Arena) Usage() float64 {
	s := a.Stats()
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.BytesUsed) / float64(s.Capacity) * 100
}

func (a *Arena) String() string {
	s := a.Stats()
	return fmt.Sprintf("Arena{capacity: %d, rows: %d, partitions: %d, used: %d, padded: %d, resets: %d}",
		s.Capacity, s.Rows, s.Partitions, s.BytesUsed, s.BytesPadded, s.Resets)
}

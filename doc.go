// Package arenago provides a fixed-capacity partitioned arena buffer for Go.
//
// An Arena owns one contiguous byte region and carves it, at run time, into
// named, strongly typed partitions using bump-pointer placement:
//
//   - Per-property alignment: every property starts at a multiple of
//     max(element width, 8), so mixed-width schemas never misalign
//   - All-or-nothing registration: a failed AddPartition leaves the arena
//     byte-for-byte unchanged
//   - Typed zero-copy views (view.Typed[T]) over the backing store
//   - Sparse partitions: large key spaces over a small dense backing via
//     sparse.Index, with a bounded zero-allocation mode
//   - Pluggable backing: aligned heap memory, anonymous mappings, shared
//     file mappings or a caller-provided region
//   - Structured logging (log/slog), metrics hooks and an optional shared
//     memory budget (resource.Controller)
//
// # Quick Start
//
// Carve a position partition out of a 64 KiB arena with 4096 rows:
//
//	arena, err := arenago.New(64*1024, 4096)
//	if err != nil {
//	    panic(err)
//	}
//	defer arena.Close()
//
//	pos, err := arena.AddPartition(arenago.DensePartition("position", schema.Schema{
//	    schema.F32("x"),
//	    schema.F32("y"),
//	}))
//	if err != nil {
//	    panic(err)
//	}
//
//	xs, _ := arenago.ColumnOf[float32](pos, "x")
//	xs.Set(0, 1.5)
//
// # Sparse Partitions
//
// A sparse partition stores values for at most maxOwners keys while
// accepting keys from a much larger space:
//
//	hp, _ := arena.AddPartition(arenago.SparsePartition("health", schema.Schema{
//	    schema.U16("current"),
//	}, 256))
//
//	cur, _ := arenago.SparseOf[uint16](hp, "current")
//	cur.Set(81234, 100)       // key 81234 lands in one of 256 dense slots
//	v, ok := cur.Get(81234)   // 100, true
//
// SparseBoundedPartition additionally fixes the maximum key, trading two
// pre-sized index arrays for zero allocation during steady-state Set and
// Delete.
//
// # Memory Model
//
// The cursor only moves forward. Partitions never relocate and are never
// freed individually; Reset reclaims the whole buffer at once and Close
// releases the backing store. Within one partition, properties appear in
// declaration order and the total partition length is a multiple of the
// widest alignment used inside it, so external readers can rely on the
// layout.
//
// With WithSharedFileBacking the region is a shared, read-write file
// mapping: other processes mapping the same file observe view writes, and
// synchronizing that access is entirely the caller's concern. Advise
// forwards access-pattern hints to the operating system for mapped and
// shared backing.
//
// Concurrent lookups are safe; AddPartition, Reset and Close serialize
// internally. Access through views is unsynchronized, like a plain slice.
package arenago

// Package mmap provides memory-mapped backing stores.
//
// # Overview
//
// Memory mapping lets the arena place its backing buffer outside the Go heap
// (anonymous mappings) or in a file shared with other processes (shared
// mappings) without copying data through kernel buffers.
//
// # Usage
//
//	m, err := mmap.MapAnon(1 << 20)
//	if err != nil { ... }
//	defer m.Close()
//
//	// Zero-copy access to the mapped region
//	data := m.Bytes()
//
//	// Provide kernel hints for access patterns
//	m.Advise(mmap.AccessRandom)
//
// # Platform Support
//
// The package provides a unified API across platforms:
//
//   - Unix (Linux, macOS, BSD): Uses mmap(2) with madvise(2) for access hints
//   - Windows: Uses VirtualAlloc/CreateFileMapping (madvise is a no-op)
//
// # Thread Safety
//
// Mapping is safe for concurrent read access. The Close() method is
// idempotent and protected by atomic operations. However, callers must
// ensure no goroutines access Bytes() after Close() returns.
package mmap

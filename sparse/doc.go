// Package sparse maps sparse integer keys onto small dense views.
//
// An Index sits in front of a typed view and lets a handful of widely
// scattered keys share its slots: Set acquires a slot for a new key, Delete
// zeroes and recycles it, Get follows the mapping. Two modes trade memory
// for allocation behavior:
//
//   - Bounded: the key space is fixed up front ([0, maxKey]) and the
//     mappings are flat sentinel arrays. No steady-state operation
//     allocates.
//   - Hashed: keys are any non-negative int64. The mapping is a Go map
//     plus a roaring bitmap of live keys, so iteration is cheap and
//     ordered, at the cost of per-mutation allocations.
//
// Both modes share the same failure contract: out-of-range keys and pool
// exhaustion are reported by returning false, never by error or panic.
package sparse

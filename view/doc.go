// Package view provides fixed-length typed views over byte regions.
//
// A view reinterprets a byte slice as count elements of a single numeric
// type without copying. Views are the unit of storage for arena partitions:
// each property of a partition is one view over the partition's byte range.
//
// # Usage
//
//	buf := make([]byte, 4*32)
//	v, err := view.New[float32](buf, 32)
//	if err != nil { ... }
//	v.Set(0, 1.5)
//	x := v.Get(0)
//
// The generic Typed[T] carries full element typing; the Column interface is
// the type-erased form used where views of mixed kinds live side by side.
package view

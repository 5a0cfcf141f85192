// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Provides 64-byte aligned allocation so typed views of any element width
// can be carved from the buffer without alignment faults.
package mem

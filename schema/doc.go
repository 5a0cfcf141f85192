// Package schema declares the typed layout of arena partitions.
//
// A Schema is an ordered list of fields; each field names one property and
// fixes its element kind and initial value. The arena turns every field
// into a typed view over the partition's byte range, laid out in
// declaration order.
//
//	s := schema.Schema{
//	    schema.F32("x"),
//	    schema.F32("y"),
//	    schema.U8("health").WithInitial(100),
//	}
package schema

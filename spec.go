package arenago

import (
	"github.com/hupe1980/arenago/schema"
)

// PartitionSpec describes a partition before it exists: its name, its
// schema and, for sparse partitions, how its key space is indexed.
//
// Spec identity is pointer identity. Adding the same *PartitionSpec twice
// returns the already-registered partition unchanged; adding a different
// spec under an existing name fails. Specs are immutable after
// construction, so a spec value can safely describe partitions in several
// arenas at once.
type PartitionSpec struct {
	name      string
	schema    schema.Schema
	tag       bool
	sparse    bool
	bounded   bool
	maxOwners int
	maxKey    int64
}

// DensePartition describes a partition with one slot per arena row for
// every schema field.
func DensePartition(name string, s schema.Schema) *PartitionSpec {
	return &PartitionSpec{name: name, schema: s}
}

// SparsePartition describes a partition whose properties are reached
// through hashed sparse indexes: any non-negative int64 key, at most
// maxOwners live keys per property.
func SparsePartition(name string, s schema.Schema, maxOwners int) *PartitionSpec {
	return &PartitionSpec{
		name:      name,
		schema:    s,
		sparse:    true,
		maxOwners: maxOwners,
	}
}

// SparseBoundedPartition describes a partition whose properties are
// reached through bounded zero-allocation sparse indexes: keys in
// [0, maxKey], at most maxOwners live keys per property.
func SparseBoundedPartition(name string, s schema.Schema, maxOwners int, maxKey int64) *PartitionSpec {
	return &PartitionSpec{
		name:      name,
		schema:    s,
		sparse:    true,
		bounded:   true,
		maxOwners: maxOwners,
		maxKey:    maxKey,
	}
}

// TagPartition describes a marker with a name but no storage. Adding it to
// an arena is a no-op that reserves nothing.
func TagPartition(name string) *PartitionSpec {
	return &PartitionSpec{name: name, tag: true}
}

// Name returns the partition name.
func (s *PartitionSpec) Name() string { return s.name }

// Schema returns the declared fields. It is nil for tag specs.
func (s *PartitionSpec) Schema() schema.Schema { return s.schema }

// Tag reports whether the spec declares no storage. A spec without a
// schema is always a tag, whichever constructor produced it.
func (s *PartitionSpec) Tag() bool { return s.tag || s.schema == nil }

// Sparse reports whether properties are reached through sparse indexes.
func (s *PartitionSpec) Sparse() bool { return s.sparse }

// Bounded reports whether the sparse key space is bounded.
func (s *PartitionSpec) Bounded() bool { return s.bounded }

// MaxOwners returns the sparse owner limit, or 0 for dense specs.
func (s *PartitionSpec) MaxOwners() int { return s.maxOwners }

// MaxKey returns the bounded key space limit. It is meaningful only when
// Bounded reports true.
func (s *PartitionSpec) MaxKey() int64 { return s.maxKey }

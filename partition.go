package arenago

import (
	"fmt"

	"github.com/hupe1980/arenago/schema"
	"github.com/hupe1980/arenago/sparse"
	"github.com/hupe1980/arenago/view"
)

// View is the common surface of every property store a partition holds:
// dense typed views and sparse indexes alike. Clear returns the store to
// its freshly-created state, which for sparse indexes means disposing all
// keys, not just zeroing bytes.
type View interface {
	Kind() view.Kind
	Clear()
}

var (
	_ View = (*view.Typed[float32])(nil)
	_ View = (sparse.Index[float32])(nil)
)

// Partition is a named, typed sub-region of an arena. Its byte range is
// fixed at registration and never moves.
type Partition struct {
	id         uint32
	spec       *PartitionSpec
	byteOffset int
	byteLength int
	count      int
	views      map[string]View
	order      []string
}

// Name returns the partition name.
func (p *Partition) Name() string { return p.spec.name }

// ID returns the arena-local numeric id assigned at registration.
// It is stable until Reset and exists for log correlation.
func (p *Partition) ID() uint32 { return p.id }

// Spec returns the spec this partition was registered under.
func (p *Partition) Spec() *PartitionSpec { return p.spec }

// ByteOffset returns the partition's start offset in the arena buffer.
func (p *Partition) ByteOffset() int { return p.byteOffset }

// ByteLength returns the partition's total aligned size in bytes.
func (p *Partition) ByteLength() int { return p.byteLength }

// Len returns the number of slots each property holds. For dense
// partitions this is the arena row count; for sparse partitions it is
// min(rows, maxOwners).
func (p *Partition) Len() int { return p.count }

// Sparse reports whether properties are reached through sparse indexes.
func (p *Partition) Sparse() bool { return p.spec.sparse }

// Properties returns the property names in declaration order.
func (p *Partition) Properties() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// View returns the raw property store for name.
func (p *Partition) View(name string) (View, bool) {
	v, ok := p.views[name]
	return v, ok
}

// ColumnOf returns the dense typed view of a property.
// It fails for unknown properties, sparse partitions and element type
// mismatches.
func ColumnOf[T view.Element](p *Partition, property string) (*view.Typed[T], error) {
	v, ok := p.views[property]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
	typed, ok := v.(*view.Typed[T])
	if !ok {
		return nil, fmt.Errorf("%w: property %q holds %s", ErrPropertyType, property, v.Kind())
	}
	return typed, nil
}

// SparseOf returns the sparse index of a property.
// It fails for unknown properties, dense partitions and element type
// mismatches.
func SparseOf[T view.Element](p *Partition, property string) (sparse.Index[T], error) {
	v, ok := p.views[property]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, property)
	}
	idx, ok := v.(sparse.Index[T])
	if !ok {
		return nil, fmt.Errorf("%w: property %q holds %s", ErrPropertyType, property, v.Kind())
	}
	return idx, nil
}

// reset clears every property store.
func (p *Partition) reset() {
	for _, v := range p.views {
		v.Clear()
	}
}

// newDenseView wraps buf for one field and fills it with the field's
// initial value.
func newDenseView(f schema.Field, buf []byte, count int) (View, error) {
	switch f.Kind {
	case view.KindInt8:
		return fillView[int8](f, buf, count)
	case view.KindUint8:
		return fillView[uint8](f, buf, count)
	case view.KindInt16:
		return fillView[int16](f, buf, count)
	case view.KindUint16:
		return fillView[uint16](f, buf, count)
	case view.KindInt32:
		return fillView[int32](f, buf, count)
	case view.KindUint32:
		return fillView[uint32](f, buf, count)
	case view.KindInt64:
		return fillView[int64](f, buf, count)
	case view.KindUint64:
		return fillView[uint64](f, buf, count)
	case view.KindFloat32:
		return fillView[float32](f, buf, count)
	case view.KindFloat64:
		return fillView[float64](f, buf, count)
	default:
		return nil, fmt.Errorf("%w: %d", view.ErrInvalidKind, f.Kind)
	}
}

// newSparseView wraps buf for one field of a sparse partition. The dense
// slots start at the field's initial value like any dense view; the index
// in front of them decides which slots are live.
func newSparseView(f schema.Field, buf []byte, count int, bounded bool, maxKey int64) (View, error) {
	switch f.Kind {
	case view.KindInt8:
		return indexView[int8](f, buf, count, bounded, maxKey)
	case view.KindUint8:
		return indexView[uint8](f, buf, count, bounded, maxKey)
	case view.KindInt16:
		return indexView[int16](f, buf, count, bounded, maxKey)
	case view.KindUint16:
		return indexView[uint16](f, buf, count, bounded, maxKey)
	case view.KindInt32:
		return indexView[int32](f, buf, count, bounded, maxKey)
	case view.KindUint32:
		return indexView[uint32](f, buf, count, bounded, maxKey)
	case view.KindInt64:
		return indexView[int64](f, buf, count, bounded, maxKey)
	case view.KindUint64:
		return indexView[uint64](f, buf, count, bounded, maxKey)
	case view.KindFloat32:
		return indexView[float32](f, buf, count, bounded, maxKey)
	case view.KindFloat64:
		return indexView[float64](f, buf, count, bounded, maxKey)
	default:
		return nil, fmt.Errorf("%w: %d", view.ErrInvalidKind, f.Kind)
	}
}

func fillView[T view.Element](f schema.Field, buf []byte, count int) (*view.Typed[T], error) {
	v, err := view.New[T](buf, count)
	if err != nil {
		return nil, err
	}
	if f.Initial != 0 {
		v.Fill(T(f.Initial))
	}
	return v, nil
}

func indexView[T view.Element](f schema.Field, buf []byte, count int, bounded bool, maxKey int64) (View, error) {
	v, err := fillView[T](f, buf, count)
	if err != nil {
		return nil, err
	}
	if bounded {
		return sparse.NewBounded[T](v, maxKey)
	}
	return sparse.NewHashed[T](v)
}

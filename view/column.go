package view

import "fmt"

// Column is the type-erased surface of a typed view. It is what a
// partition registers for each dense property; callers recover full typing
// with As.
type Column interface {
	// Kind returns the element kind.
	Kind() Kind

	// Len returns the number of elements.
	Len() int

	// Width returns the element size in bytes.
	Width() int

	// Clear zeroes every element.
	Clear()

	// Bytes returns the underlying byte region.
	Bytes() []byte
}

// Of wraps buf in a view of the given kind. It is the runtime-kind
// counterpart of New.
func Of(kind Kind, buf []byte, count int) (Column, error) {
	switch kind {
	case KindInt8:
		return New[int8](buf, count)
	case KindUint8:
		return New[uint8](buf, count)
	case KindInt16:
		return New[int16](buf, count)
	case KindUint16:
		return New[uint16](buf, count)
	case KindInt32:
		return New[int32](buf, count)
	case KindUint32:
		return New[uint32](buf, count)
	case KindInt64:
		return New[int64](buf, count)
	case KindUint64:
		return New[uint64](buf, count)
	case KindFloat32:
		return New[float32](buf, count)
	case KindFloat64:
		return New[float64](buf, count)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}
}

// As recovers the typed view behind a Column.
// It returns false when the column holds a different element type.
func As[T Element](c Column) (*Typed[T], bool) {
	v, ok := c.(*Typed[T])
	return v, ok
}

var _ Column = (*Typed[float32])(nil)

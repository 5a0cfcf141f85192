package view

// Kind identifies the element type stored in a typed view.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindInt8 represents int8 elements.
	KindInt8
	// KindUint8 represents uint8 elements.
	KindUint8
	// KindInt16 represents int16 elements.
	KindInt16
	// KindUint16 represents uint16 elements.
	KindUint16
	// KindInt32 represents int32 elements.
	KindInt32
	// KindUint32 represents uint32 elements.
	KindUint32
	// KindInt64 represents int64 elements.
	KindInt64
	// KindUint64 represents uint64 elements.
	KindUint64
	// KindFloat32 represents float32 elements.
	KindFloat32
	// KindFloat64 represents float64 elements.
	KindFloat64
)

// Element is the set of element types a view can hold.
type Element interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// Width returns the element size in bytes, or 0 for an invalid kind.
func (k Kind) Width() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	default:
		return 0
	}
}

// Valid reports whether k names a concrete element type.
func (k Kind) Valid() bool {
	return k > KindInvalid && k <= KindFloat64
}

// String returns the Go name of the element type.
func (k Kind) String() string {
	switch k {
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return "invalid"
	}
}

// KindOf returns the Kind for the element type T.
func KindOf[T Element]() Kind {
	var z T
	switch any(z).(type) {
	case int8:
		return KindInt8
	case uint8:
		return KindUint8
	case int16:
		return KindInt16
	case uint16:
		return KindUint16
	case int32:
		return KindInt32
	case uint32:
		return KindUint32
	case int64:
		return KindInt64
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	default:
		return KindInvalid
	}
}

package schema

import "github.com/hupe1980/arenago/view"

// I8 declares an int8 field.
func I8(name string) Field { return Field{Name: name, Kind: view.KindInt8} }

// U8 declares a uint8 field.
func U8(name string) Field { return Field{Name: name, Kind: view.KindUint8} }

// I16 declares an int16 field.
func I16(name string) Field { return Field{Name: name, Kind: view.KindInt16} }

// U16 declares a uint16 field.
func U16(name string) Field { return Field{Name: name, Kind: view.KindUint16} }

// I32 declares an int32 field.
func I32(name string) Field { return Field{Name: name, Kind: view.KindInt32} }

// U32 declares a uint32 field.
func U32(name string) Field { return Field{Name: name, Kind: view.KindUint32} }

// I64 declares an int64 field.
func I64(name string) Field { return Field{Name: name, Kind: view.KindInt64} }

// U64 declares a uint64 field.
func U64(name string) Field { return Field{Name: name, Kind: view.KindUint64} }

// F32 declares a float32 field.
func F32(name string) Field { return Field{Name: name, Kind: view.KindFloat32} }

// F64 declares a float64 field.
func F64(name string) Field { return Field{Name: name, Kind: view.KindFloat64} }

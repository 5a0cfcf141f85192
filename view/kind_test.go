package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindWidth(t *testing.T) {
	tests := []struct {
		kind  Kind
		width int
	}{
		{KindInt8, 1},
		{KindUint8, 1},
		{KindInt16, 2},
		{KindUint16, 2},
		{KindInt32, 4},
		{KindUint32, 4},
		{KindFloat32, 4},
		{KindInt64, 8},
		{KindUint64, 8},
		{KindFloat64, 8},
		{KindInvalid, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.width, tt.kind.Width(), "kind %s", tt.kind)
	}
}

func TestKindValid(t *testing.T) {
	assert.False(t, KindInvalid.Valid())
	assert.False(t, Kind(255).Valid())
	for k := KindInt8; k <= KindFloat64; k++ {
		assert.True(t, k.Valid(), "kind %s", k)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "float32", KindFloat32.String())
	assert.Equal(t, "uint8", KindUint8.String())
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "invalid", Kind(42).String())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindInt8, KindOf[int8]())
	assert.Equal(t, KindUint8, KindOf[uint8]())
	assert.Equal(t, KindInt16, KindOf[int16]())
	assert.Equal(t, KindUint16, KindOf[uint16]())
	assert.Equal(t, KindInt32, KindOf[int32]())
	assert.Equal(t, KindUint32, KindOf[uint32]())
	assert.Equal(t, KindInt64, KindOf[int64]())
	assert.Equal(t, KindUint64, KindOf[uint64]())
	assert.Equal(t, KindFloat32, KindOf[float32]())
	assert.Equal(t, KindFloat64, KindOf[float64]())
}

package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTypes = []Type{TypeInt32, TypeFloat32, TypeFloat64}

func TestWrap(t *testing.T) {
	t.Run("whole cells", func(t *testing.T) {
		b, err := Wrap(TypeFloat64, make([]byte, 24))
		require.NoError(t, err)
		assert.Equal(t, 3, b.Len())
	})

	t.Run("ragged buffer", func(t *testing.T) {
		_, err := Wrap(TypeFloat64, make([]byte, 20))
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		b, err := Wrap(TypeInt32, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, b.Len())
	})
}

func TestSetNullIsNull(t *testing.T) {
	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			b := NewBuf(typ, 8)

			// Freshly zeroed cells are not null.
			for i := 0; i < b.Len(); i++ {
				assert.False(t, b.IsNull(i))
			}

			b.SetNull(2, 4)
			for i := 0; i < b.Len(); i++ {
				assert.Equal(t, i >= 2 && i < 6, b.IsNull(i), "cell %d", i)
			}
		})
	}
}

func TestTypedRoundTrip(t *testing.T) {
	t.Run("int32", func(t *testing.T) {
		b := NewBuf(TypeInt32, 3)
		b.SetInt32(0, -17)
		b.SetInt32(1, math.MaxInt32)
		b.SetInt32(2, 0)
		assert.Equal(t, int32(-17), b.Int32(0))
		assert.Equal(t, int32(math.MaxInt32), b.Int32(1))
		assert.Equal(t, int32(0), b.Int32(2))
	})

	t.Run("float32", func(t *testing.T) {
		b := NewBuf(TypeFloat32, 2)
		b.SetFloat32(0, 1.25)
		b.SetFloat32(1, -0.5)
		assert.Equal(t, float32(1.25), b.Float32(0))
		assert.Equal(t, float32(-0.5), b.Float32(1))
	})

	t.Run("float64", func(t *testing.T) {
		b := NewBuf(TypeFloat64, 2)
		b.SetFloat64(0, 2.0/3.0)
		b.SetFloat64(1, -1e300)
		assert.Equal(t, 2.0/3.0, b.Float64(0))
		assert.Equal(t, -1e300, b.Float64(1))
	})
}

func TestCrossTypeSetTruncates(t *testing.T) {
	b := NewBuf(TypeInt32, 3)

	b.SetFloat64(0, 3.9)
	b.SetFloat64(1, -3.9)
	b.SetFloat64(2, 2.0/3.0)

	assert.Equal(t, int32(3), b.Int32(0))
	assert.Equal(t, int32(-3), b.Int32(1))
	assert.Equal(t, int32(0), b.Int32(2))
}

func TestCrossTypeNullPropagation(t *testing.T) {
	// Every (source type, destination encoding) pair maps a null
	// source to a null destination slot.
	setNullFrom := map[Type]func(Buf, int){
		TypeInt32:   func(b Buf, i int) { b.SetInt32(i, NullInt32) },
		TypeFloat32: func(b Buf, i int) { b.SetFloat32(i, NullFloat32()) },
		TypeFloat64: func(b Buf, i int) { b.SetFloat64(i, NullFloat64()) },
	}

	for src, set := range setNullFrom {
		for _, dst := range allTypes {
			b := NewBuf(dst, 1)
			set(b, 0)
			assert.True(t, b.IsNull(0), "source %s into %s", src, dst)
		}
	}
}

func TestCrossTypeGetNull(t *testing.T) {
	for _, typ := range allTypes {
		b := NewBuf(typ, 1)
		b.SetNull(0, 1)

		assert.Equal(t, NullInt32, b.Int32(0), typ.String())
		assert.True(t, IsNullFloat32(b.Float32(0)), typ.String())
		assert.True(t, IsNullFloat64(b.Float64(0)), typ.String())
	}
}

func TestCrossTypeGetConverts(t *testing.T) {
	b := NewBuf(TypeFloat64, 1)
	b.SetFloat64(0, 7.75)

	assert.Equal(t, int32(7), b.Int32(0))
	assert.Equal(t, float32(7.75), b.Float32(0))
	assert.Equal(t, 7.75, b.Float64(0))
}

func TestCopyByteExact(t *testing.T) {
	for _, typ := range allTypes {
		t.Run(typ.String(), func(t *testing.T) {
			src := NewBuf(typ, 4)
			src.SetFloat64(0, 1)
			src.SetNull(1, 1)
			src.SetFloat64(2, -2)
			src.SetFloat64(3, 3)

			dst := NewBuf(typ, 4)
			Copy(dst, 0, src, 0, 4)

			assert.Equal(t, src.Bytes(), dst.Bytes())
			assert.True(t, dst.IsNull(1))
			assert.False(t, dst.IsNull(0))
		})
	}
}

func TestCopyOffsets(t *testing.T) {
	src := NewBuf(TypeInt32, 4)
	for i := 0; i < 4; i++ {
		src.SetInt32(i, int32(i+1))
	}

	dst := NewBuf(TypeInt32, 4)
	Copy(dst, 2, src, 0, 2)

	assert.Equal(t, int32(0), dst.Int32(0))
	assert.Equal(t, int32(0), dst.Int32(1))
	assert.Equal(t, int32(1), dst.Int32(2))
	assert.Equal(t, int32(2), dst.Int32(3))
}

func TestCopyTypeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Copy(NewBuf(TypeInt32, 1), 0, NewBuf(TypeFloat64, 1), 0, 1)
	})
}

func TestSliceSharesStorage(t *testing.T) {
	b := NewBuf(TypeFloat64, 10)
	row := b.Slice(4, 3)

	require.Equal(t, 3, row.Len())
	row.SetFloat64(0, 9.5)
	row.SetNull(1, 1)

	assert.Equal(t, 9.5, b.Float64(4))
	assert.True(t, b.IsNull(5))
	assert.False(t, b.IsNull(6))
}

func TestSetValueComputedNaNStaysNumeric(t *testing.T) {
	b := NewBuf(TypeFloat64, 1)
	b.SetFloat64(0, math.NaN())

	assert.False(t, b.IsNull(0))
	assert.True(t, math.IsNaN(b.Float64(0)))
}

func TestBufCmp(t *testing.T) {
	b := NewBuf(TypeInt32, 3)
	b.SetInt32(0, 5)
	b.SetNull(1, 1)
	b.SetInt32(2, 5)

	assert.Equal(t, 1, b.Cmp(0, 1))
	assert.Equal(t, -1, b.Cmp(1, 0))
	assert.Equal(t, 0, b.Cmp(0, 2))
	assert.Equal(t, 0, b.Cmp(1, 1))
}

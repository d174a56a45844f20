package cell

import (
	"encoding/binary"
	"math"

	"github.com/gisforge/terracell/pkg/errors"
)

// Buf is a bounds-checked view over a row buffer of cells sharing one
// encoding. The backing bytes are caller-owned; Buf only defines how to
// interpret and mutate slots in place. Cells are stored little-endian
// at fixed stride, so a Buf can wrap rows read verbatim from disk.
//
// Buf performs no locking. Concurrent access to disjoint slots is
// safe; concurrent access to the same slot is the caller's race to
// prevent.
type Buf struct {
	typ  Type
	data []byte
}

// NewBuf allocates a zeroed row buffer holding the given number of
// cells. Note a zeroed int32 buffer reads as the value 0, not null;
// use SetNull to null-fill.
func NewBuf(t Type, cells int) Buf {
	return Buf{typ: t, data: make([]byte, cells*t.Size())}
}

// Wrap interprets caller-supplied bytes as a row of the given
// encoding. The length must be an exact multiple of the cell width.
func Wrap(t Type, data []byte) (Buf, error) {
	if len(data)%t.Size() != 0 {
		return Buf{}, errors.New(errors.ErrorTypeValidation, "buffer is not a whole number of cells").
			WithDetail("type", t.String()).
			WithDetail("bytes", len(data))
	}
	return Buf{typ: t, data: data}, nil
}

// Type returns the encoding shared by every cell in the buffer.
func (b Buf) Type() Type {
	return b.typ
}

// Len returns the number of cells.
func (b Buf) Len() int {
	return len(b.data) / b.typ.Size()
}

// Bytes returns the backing storage. Mutating it mutates the cells.
func (b Buf) Bytes() []byte {
	return b.data
}

// Slice returns a view of n cells starting at cell i, sharing storage
// with b. This is the row-walking primitive: Slice(i, n) covers bytes
// [Offset(t, i), Offset(t, i+n)).
func (b Buf) Slice(i, n int) Buf {
	w := b.typ.Size()
	return Buf{typ: b.typ, data: b.data[i*w : (i+n)*w]}
}

func (b Buf) slot(i int) []byte {
	w := b.typ.Size()
	return b.data[i*w : (i+1)*w]
}

// IsNull reports whether cell i holds its encoding's null sentinel.
func (b Buf) IsNull(i int) bool {
	s := b.slot(i)
	switch b.typ {
	case TypeInt32:
		return int32(binary.LittleEndian.Uint32(s)) == NullInt32
	case TypeFloat32:
		return binary.LittleEndian.Uint32(s) == nullFloat32Bits
	case TypeFloat64:
		return binary.LittleEndian.Uint64(s) == nullFloat64Bits
	}
	panic("cell: invalid type tag")
}

// SetNull writes the null sentinel into n consecutive cells starting
// at cell i.
func (b Buf) SetNull(i, n int) {
	for k := i; k < i+n; k++ {
		s := b.slot(k)
		switch b.typ {
		case TypeInt32:
			v := NullInt32
			binary.LittleEndian.PutUint32(s, uint32(v))
		case TypeFloat32:
			binary.LittleEndian.PutUint32(s, nullFloat32Bits)
		case TypeFloat64:
			binary.LittleEndian.PutUint64(s, nullFloat64Bits)
		default:
			panic("cell: invalid type tag")
		}
	}
}

// Value lifts cell i into the tagged optional domain.
func (b Buf) Value(i int) Value {
	if b.IsNull(i) {
		return NullValue(b.typ)
	}
	s := b.slot(i)
	switch b.typ {
	case TypeInt32:
		return Int32Of(int32(binary.LittleEndian.Uint32(s)))
	case TypeFloat32:
		return Float32Of(math.Float32frombits(binary.LittleEndian.Uint32(s)))
	case TypeFloat64:
		return Float64Of(math.Float64frombits(binary.LittleEndian.Uint64(s)))
	}
	panic("cell: invalid type tag")
}

// SetValue stores v into cell i, converting to the buffer's encoding.
// Null stores the sentinel; numeric payloads convert by truncating
// cast.
func (b Buf) SetValue(i int, v Value) {
	if v.IsNull() {
		b.SetNull(i, 1)
		return
	}
	s := b.slot(i)
	switch b.typ {
	case TypeInt32:
		binary.LittleEndian.PutUint32(s, uint32(v.Int32()))
	case TypeFloat32:
		binary.LittleEndian.PutUint32(s, math.Float32bits(v.Float32()))
	case TypeFloat64:
		binary.LittleEndian.PutUint64(s, math.Float64bits(v.Float64()))
	default:
		panic("cell: invalid type tag")
	}
}

// Int32 reads cell i as an int32; a null cell reads as the integer
// sentinel. Float cells truncate toward zero.
func (b Buf) Int32(i int) int32 {
	return b.Value(i).Int32()
}

// Float32 reads cell i as a float32; a null cell reads as the
// single-precision sentinel.
func (b Buf) Float32(i int) float32 {
	return b.Value(i).Float32()
}

// Float64 reads cell i as a float64; a null cell reads as the
// double-precision sentinel.
func (b Buf) Float64(i int) float64 {
	return b.Value(i).Float64()
}

// SetInt32 stores an int32 source value into cell i at the buffer's
// encoding. The integer sentinel writes null regardless of encoding.
func (b Buf) SetInt32(i int, v int32) {
	b.SetValue(i, Int32Of(v))
}

// SetFloat32 stores a float32 source value into cell i at the
// buffer's encoding. The single-precision sentinel writes null.
func (b Buf) SetFloat32(i int, v float32) {
	b.SetValue(i, Float32Of(v))
}

// SetFloat64 stores a float64 source value into cell i at the
// buffer's encoding. The double-precision sentinel writes null; a
// fractional value stored into an int32 buffer truncates, so 3.9
// stores 3 and -3.9 stores -3.
func (b Buf) SetFloat64(i int, v float64) {
	b.SetValue(i, Float64Of(v))
}

// Cmp orders cells i and j of the same buffer under the null-lowest
// total order.
func (b Buf) Cmp(i, j int) int {
	return Compare(b.Value(i), b.Value(j))
}

// Copy moves n cells from src starting at si into dst starting at di
// as a verbatim byte copy, null sentinels included. Both buffers must
// share one encoding; no conversion occurs.
func Copy(dst Buf, di int, src Buf, si, n int) {
	if dst.typ != src.typ {
		panic("cell: copy between different encodings")
	}
	w := dst.typ.Size()
	copy(dst.data[di*w:(di+n)*w], src.data[si*w:(si+n)*w])
}

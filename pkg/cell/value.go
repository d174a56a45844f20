package cell

import (
	"math"
	"strconv"
)

// Value is one cell's value lifted out of its raw buffer slot: an
// explicit tagged optional carrying the encoding, the null state, and
// the native payload. Exactly one of "holds a number" and "is null" is
// true at any time. The zero Value is a null int32 cell.
type Value struct {
	typ  Type
	null bool
	bits uint64
}

// NullValue returns the explicit null value for the given encoding.
func NullValue(t Type) Value {
	return Value{typ: t, null: true}
}

// Int32Of builds an int32-encoded value. The integer sentinel folds
// into the null state, so null never travels as a plain number.
func Int32Of(v int32) Value {
	if IsNullInt32(v) {
		return NullValue(TypeInt32)
	}
	return Value{typ: TypeInt32, bits: uint64(uint32(v))}
}

// Float32Of builds a float32-encoded value, folding the sentinel bit
// pattern into the null state. Computed NaNs stay numeric.
func Float32Of(v float32) Value {
	if IsNullFloat32(v) {
		return NullValue(TypeFloat32)
	}
	return Value{typ: TypeFloat32, bits: uint64(math.Float32bits(v))}
}

// Float64Of builds a float64-encoded value, folding the sentinel bit
// pattern into the null state. Computed NaNs stay numeric.
func Float64Of(v float64) Value {
	if IsNullFloat64(v) {
		return NullValue(TypeFloat64)
	}
	return Value{typ: TypeFloat64, bits: math.Float64bits(v)}
}

// Type returns the value's encoding.
func (v Value) Type() Type {
	return v.typ
}

// IsNull reports whether the value is the "no data" state.
func (v Value) IsNull() bool {
	return v.null
}

// Int32 reads the value as an int32. Nulls map to the integer
// sentinel; float payloads are truncated toward zero, never rounded.
func (v Value) Int32() int32 {
	if v.null {
		return NullInt32
	}
	switch v.typ {
	case TypeInt32:
		return int32(uint32(v.bits))
	case TypeFloat32:
		return int32(math.Float32frombits(uint32(v.bits)))
	case TypeFloat64:
		return int32(math.Float64frombits(v.bits))
	}
	panic("cell: invalid type tag")
}

// Float32 reads the value as a float32. Nulls map to the
// single-precision sentinel; wider payloads narrow by plain numeric
// cast.
func (v Value) Float32() float32 {
	if v.null {
		return NullFloat32()
	}
	switch v.typ {
	case TypeInt32:
		return float32(int32(uint32(v.bits)))
	case TypeFloat32:
		return math.Float32frombits(uint32(v.bits))
	case TypeFloat64:
		return float32(math.Float64frombits(v.bits))
	}
	panic("cell: invalid type tag")
}

// Float64 reads the value as a float64. Nulls map to the
// double-precision sentinel.
func (v Value) Float64() float64 {
	if v.null {
		return NullFloat64()
	}
	switch v.typ {
	case TypeInt32:
		return float64(int32(uint32(v.bits)))
	case TypeFloat32:
		return float64(math.Float32frombits(uint32(v.bits)))
	case TypeFloat64:
		return math.Float64frombits(v.bits)
	}
	panic("cell: invalid type tag")
}

// Convert re-encodes the value. Null converts to null for every
// destination; numeric payloads convert by truncating cast. All nine
// (source, destination) pairs are covered, identity included.
func (v Value) Convert(t Type) Value {
	if v.null {
		return NullValue(t)
	}
	switch t {
	case TypeInt32:
		return Int32Of(v.Int32())
	case TypeFloat32:
		return Float32Of(v.Float32())
	case TypeFloat64:
		return Float64Of(v.Float64())
	}
	panic("cell: invalid type tag")
}

// String formats the value for diagnostics. Nulls render as "null".
func (v Value) String() string {
	if v.null {
		return "null"
	}
	switch v.typ {
	case TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case TypeFloat32:
		return strconv.FormatFloat(float64(v.Float32()), 'g', -1, 32)
	case TypeFloat64:
		return strconv.FormatFloat(v.Float64(), 'g', -1, 64)
	}
	panic("cell: invalid type tag")
}

// Compare orders two values of the same encoding: 0 when both are
// null, -1 when only a is null, 1 when only b is null, otherwise the
// sign of the native numeric comparison. Null deliberately sorts below
// every real number; downstream sort order depends on this.
func Compare(a, b Value) int {
	if a.null {
		if b.null {
			return 0
		}
		return -1
	}
	if b.null {
		return 1
	}

	b = b.Convert(a.typ)
	switch a.typ {
	case TypeInt32:
		return cmpOrder(a.Int32(), b.Int32())
	case TypeFloat32:
		return cmpOrder(a.Float32(), b.Float32())
	case TypeFloat64:
		return cmpOrder(a.Float64(), b.Float64())
	}
	panic("cell: invalid type tag")
}

func cmpOrder[T int32 | float32 | float64](a, b T) int {
	switch {
	case a > b:
		return 1
	case a == b:
		return 0
	default:
		return -1
	}
}

package cell

import (
	"math"
	"strings"

	"github.com/gisforge/terracell/pkg/errors"
)

// Type identifies the storage encoding of a grid cell.
type Type uint8

const (
	// TypeInt32 stores cells as 32-bit signed integers.
	TypeInt32 Type = iota
	// TypeFloat32 stores cells as IEEE-754 single-precision floats.
	TypeFloat32
	// TypeFloat64 stores cells as IEEE-754 double-precision floats.
	TypeFloat64
)

// NullInt32 is the integer null sentinel. The most negative int32 can
// never arise from an intended cell value.
const NullInt32 int32 = math.MinInt32

// Float sentinels are fixed all-ones bit patterns. They decode as NaN,
// but only these exact patterns read as null; computed NaNs do not.
const (
	nullFloat32Bits uint32 = 0xFFFFFFFF
	nullFloat64Bits uint64 = 0xFFFFFFFFFFFFFFFF
)

// Size returns the storage width of one cell in bytes.
func (t Type) Size() int {
	switch t {
	case TypeInt32, TypeFloat32:
		return 4
	case TypeFloat64:
		return 8
	}
	panic("cell: invalid type tag")
}

// String returns the canonical name of the encoding.
func (t Type) String() string {
	switch t {
	case TypeInt32:
		return "int32"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	}
	panic("cell: invalid type tag")
}

// ParseType resolves an encoding name as used in configuration and CLI
// flags. Recognized names are "int32", "float32" and "float64".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int32", "cell":
		return TypeInt32, nil
	case "float32", "fcell":
		return TypeFloat32, nil
	case "float64", "dcell":
		return TypeFloat64, nil
	}
	return 0, errors.New(errors.ErrorTypeValidation, "unknown cell type").
		WithDetail("type", s)
}

// Offset returns the byte offset of the i-th cell in a row buffer of
// the given encoding. It replaces raw pointer advancement: stepping one
// cell forward adds exactly t.Size() bytes.
func Offset(t Type, i int) int {
	return i * t.Size()
}

// NullFloat32 returns the single-precision null sentinel.
func NullFloat32() float32 {
	return math.Float32frombits(nullFloat32Bits)
}

// NullFloat64 returns the double-precision null sentinel.
func NullFloat64() float64 {
	return math.Float64frombits(nullFloat64Bits)
}

// IsNullInt32 reports whether v is the integer null sentinel.
func IsNullInt32(v int32) bool {
	return v == NullInt32
}

// IsNullFloat32 reports whether v carries the exact single-precision
// sentinel bit pattern. An ordinary NaN returns false.
func IsNullFloat32(v float32) bool {
	return math.Float32bits(v) == nullFloat32Bits
}

// IsNullFloat64 reports whether v carries the exact double-precision
// sentinel bit pattern. An ordinary NaN returns false.
func IsNullFloat64(v float64) bool {
	return math.Float64bits(v) == nullFloat64Bits
}

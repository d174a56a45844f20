package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeSize(t *testing.T) {
	tests := []struct {
		typ  Type
		size int
	}{
		{TypeInt32, 4},
		{TypeFloat32, 4},
		{TypeFloat64, 8},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			assert.Equal(t, tt.size, tt.typ.Size())
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"int32", TypeInt32, false},
		{"float32", TypeFloat32, false},
		{"float64", TypeFloat64, false},
		{"CELL", TypeInt32, false},
		{"fcell", TypeFloat32, false},
		{"dcell", TypeFloat64, false},
		{" Float64 ", TypeFloat64, false},
		{"double", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffset(t *testing.T) {
	// Stepping twice by the float64 width from a base offset covers
	// exactly 16 bytes.
	off := Offset(TypeFloat64, 0)
	off += TypeFloat64.Size()
	off += TypeFloat64.Size()
	assert.Equal(t, 16, off)

	assert.Equal(t, 16, Offset(TypeFloat64, 2))
	assert.Equal(t, 8, Offset(TypeInt32, 2))
	assert.Equal(t, 12, Offset(TypeFloat32, 3))
}

func TestScalarSentinels(t *testing.T) {
	assert.True(t, IsNullInt32(NullInt32))
	assert.False(t, IsNullInt32(0))
	assert.False(t, IsNullInt32(math.MinInt32+1))

	assert.True(t, IsNullFloat32(NullFloat32()))
	assert.True(t, IsNullFloat64(NullFloat64()))

	// Sentinels decode as NaN but ordinary NaNs are not null.
	assert.True(t, math.IsNaN(float64(NullFloat32())))
	assert.True(t, math.IsNaN(NullFloat64()))
	assert.False(t, IsNullFloat32(float32(math.NaN())))
	assert.False(t, IsNullFloat64(math.NaN()))

	assert.False(t, IsNullFloat32(0))
	assert.False(t, IsNullFloat64(-1.5))
}

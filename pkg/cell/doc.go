// Package cell provides type-generic access to raster grid cells stored
// in one of three fixed-width numeric encodings: 32-bit integer, 32-bit
// float, and 64-bit float.
//
// Every encoding reserves one bit pattern as a "no data" sentinel,
// distinct from every valid numeric value (and, for the float encodings,
// distinct from computed NaNs). The sentinel exists only at the raw
// buffer edge; above it, values travel as the explicit tagged optional
// type Value.
//
// # Basic Usage
//
//	row := cell.NewBuf(cell.TypeFloat64, cols)
//	row.SetFloat64(0, 12.5)
//	row.SetNull(1, 1)
//
//	for i := 0; i < row.Len(); i++ {
//	    if row.IsNull(i) {
//	        continue
//	    }
//	    process(row.Float64(i))
//	}
//
// Row processing code that must not care about the storage width works
// through Value and the typed get/set pairs; conversions between
// encodings are truncating numeric casts, never rounding, and null
// always converts to null.
package cell

// Package terracell is a value-access layer for raster grid cells
// stored in fixed-width numeric encodings.
//
// Raster rows arrive as raw byte buffers holding one of three
// encodings: 32-bit integers, 32-bit floats or 64-bit floats. Each
// encoding reserves a bit pattern meaning "no data", and row
// processing code must read, write, compare and convert cell values
// without knowing the storage width at compile time. Terracell
// provides exactly that:
//
//   - pkg/cell: the typed cell core. Encoding tags, widths, null
//     sentinels, bounds-checked row buffers, the tagged-optional Value
//     type, truncating cross-type conversion and the null-lowest
//     total order.
//   - pkg/raster: grids, raw cell file I/O, statistics and
//     whole-buffer encoding conversion.
//   - pkg/history: newline-delimited map history records with a
//     bounded command edit log.
//   - cmd/terracell: a CLI to inspect, convert and annotate raw cell
//     files.
//
// # Quick Start
//
//	import "github.com/gisforge/terracell/pkg/cell"
//
//	row := cell.NewBuf(cell.TypeFloat64, 512)
//	row.SetFloat64(0, 29.5)
//	row.SetNull(1, 1)
//
//	v := row.Value(0)           // tagged optional
//	asInt := row.Int32(0)       // truncating read: 29
//	isNull := row.IsNull(1)     // true
//
// Conversions between encodings truncate rather than round, null
// always converts to null, and no numeric value ever reads as the
// sentinel.
package terracell

package raster

import (
	"github.com/gisforge/terracell/pkg/cell"
	"github.com/gisforge/terracell/pkg/metrics"
)

// Convert re-encodes every cell of src into a new buffer of the given
// type. Same-type conversion is a verbatim copy; otherwise each cell
// converts by truncating cast with null propagating to null.
func Convert(src cell.Buf, t cell.Type) cell.Buf {
	timer := metrics.NewTimer("convert")
	defer timer.Stop()

	dst := cell.NewBuf(t, src.Len())
	if t == src.Type() {
		cell.Copy(dst, 0, src, 0, src.Len())
	} else {
		for i := 0; i < src.Len(); i++ {
			dst.SetValue(i, src.Value(i))
		}
	}

	metrics.CellsProcessed.WithLabelValues(t.String(), "convert").Add(float64(src.Len()))
	return dst
}

// ConvertGrid re-encodes a whole grid, preserving its shape.
func ConvertGrid(g *Grid, t cell.Type) *Grid {
	out, _ := GridOver(Convert(g.Buf(), t), g.Cols())
	return out
}

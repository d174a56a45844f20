package raster

import (
	"github.com/gisforge/terracell/pkg/cell"
	"github.com/gisforge/terracell/pkg/metrics"
)

// Stats summarizes the values in a buffer. Min and Max are reported
// in the float64 domain and only meaningful when Valid is positive.
type Stats struct {
	Type  string  `json:"type"`
	Cells int     `json:"cells"`
	Nulls int     `json:"nulls"`
	Valid int     `json:"valid"`
	Min   float64 `json:"min,omitempty"`
	Max   float64 `json:"max,omitempty"`
}

// Collect scans a buffer and tallies nulls and extremes. Extremes are
// found through the null-lowest total order, so null cells never
// contribute to Min or Max.
func Collect(b cell.Buf) Stats {
	timer := metrics.NewTimer("scan")
	defer timer.Stop()

	st := Stats{Type: b.Type().String(), Cells: b.Len()}

	minV := cell.NullValue(b.Type())
	maxV := cell.NullValue(b.Type())
	for i := 0; i < b.Len(); i++ {
		v := b.Value(i)
		if v.IsNull() {
			st.Nulls++
			continue
		}
		st.Valid++
		// Null sorts below every number, so the first real value
		// replaces both extremes.
		if minV.IsNull() || cell.Compare(v, minV) < 0 {
			minV = v
		}
		if cell.Compare(v, maxV) > 0 {
			maxV = v
		}
	}

	if st.Valid > 0 {
		st.Min = minV.Float64()
		st.Max = maxV.Float64()
	}

	metrics.CellsProcessed.WithLabelValues(st.Type, "scan").Add(float64(st.Cells))
	metrics.NullCells.WithLabelValues(st.Type).Add(float64(st.Nulls))
	return st
}

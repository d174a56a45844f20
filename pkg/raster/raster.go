// Package raster builds row and grid structures on top of the cell
// value layer: whole-grid buffers with per-row views, raw cell file
// I/O, encoding conversion and value statistics.
package raster

import (
	"github.com/gisforge/terracell/pkg/cell"
	"github.com/gisforge/terracell/pkg/errors"
)

// Grid is a rows-by-cols raster of one cell encoding over a single
// backing buffer, stored row-major.
type Grid struct {
	typ  cell.Type
	rows int
	cols int
	buf  cell.Buf
}

// NewGrid allocates a zeroed grid.
func NewGrid(t cell.Type, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "grid dimensions must be positive").
			WithDetail("rows", rows).
			WithDetail("cols", cols)
	}
	return &Grid{
		typ:  t,
		rows: rows,
		cols: cols,
		buf:  cell.NewBuf(t, rows*cols),
	}, nil
}

// GridOver interprets an existing buffer as a grid of the given
// width. The buffer length must divide evenly into rows of cols cells.
func GridOver(b cell.Buf, cols int) (*Grid, error) {
	if cols <= 0 || b.Len()%cols != 0 {
		return nil, errors.New(errors.ErrorTypeValidation, "buffer does not divide into rows").
			WithDetail("cells", b.Len()).
			WithDetail("cols", cols)
	}
	return &Grid{
		typ:  b.Type(),
		rows: b.Len() / cols,
		cols: cols,
		buf:  b,
	}, nil
}

// Type returns the grid's cell encoding.
func (g *Grid) Type() cell.Type { return g.typ }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of cells per row.
func (g *Grid) Cols() int { return g.cols }

// Buf returns the whole backing buffer.
func (g *Grid) Buf() cell.Buf { return g.buf }

// Row returns a view of row r sharing storage with the grid.
func (g *Grid) Row(r int) cell.Buf {
	return g.buf.Slice(r*g.cols, g.cols)
}

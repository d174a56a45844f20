package cell

// Bitmap is a packed per-row null mask, one bit per cell, set when the
// cell is null. Rows persist their null state separately from cell
// payloads with it.
type Bitmap []byte

// BitmapSize returns the number of bytes needed to mask the given
// number of cells, zero when cells is not positive.
func BitmapSize(cells int) int {
	if cells <= 0 {
		return 0
	}
	return (cells + 7) / 8
}

// NewBitmap allocates an all-clear mask for the given number of cells.
func NewBitmap(cells int) Bitmap {
	return make(Bitmap, BitmapSize(cells))
}

// Get reports whether bit i is set.
func (m Bitmap) Get(i int) bool {
	return m[i/8]&(1<<(i%8)) != 0
}

// Set sets or clears bit i.
func (m Bitmap) Set(i int, null bool) {
	if null {
		m[i/8] |= 1 << (i % 8)
	} else {
		m[i/8] &^= 1 << (i % 8)
	}
}

// MarkNulls captures the null state of every cell in b.
func MarkNulls(b Buf) Bitmap {
	m := NewBitmap(b.Len())
	for i := 0; i < b.Len(); i++ {
		if b.IsNull(i) {
			m.Set(i, true)
		}
	}
	return m
}

// ApplyNulls writes the sentinel into every cell of b whose bit is set
// in m. Cells with clear bits keep their payload.
func ApplyNulls(b Buf, m Bitmap) {
	for i := 0; i < b.Len(); i++ {
		if m.Get(i) {
			b.SetNull(i, 1)
		}
	}
}

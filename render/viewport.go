package render

// Viewport scales the playfield onto the terminal grid
// Each cell covers WorldW/Cols x WorldH/Rows world units
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH int
}

// NewViewport creates a viewport for a cols x rows terminal
func NewViewport(cols, rows, worldW, worldH int) *Viewport {
	v := &Viewport{WorldW: worldW, WorldH: worldH}
	v.Resize(cols, rows)
	return v
}

// Resize updates the terminal size; dimensions are kept at least 1
func (v *Viewport) Resize(cols, rows int) {
	v.Cols = max(cols, 1)
	v.Rows = max(rows, 1)
}

// WorldToCell returns the cell containing world point (x, y)
// Points outside the playfield map outside the grid
func (v *Viewport) WorldToCell(x, y int) (col, row int) {
	return floorDiv(x*v.Cols, v.WorldW), floorDiv(y*v.Rows, v.WorldH)
}

// CellToWorld returns the world point at the centre of a cell
func (v *Viewport) CellToWorld(col, row int) (x, y int) {
	return (2*col + 1) * v.WorldW / (2 * v.Cols), (2*row + 1) * v.WorldH / (2 * v.Rows)
}

// RectToCells returns the cell span [c0, c1) x [r0, r1) covering a world rectangle
// Any non-empty rectangle covers at least one cell
func (v *Viewport) RectToCells(x, y, w, h int) (c0, r0, c1, r1 int) {
	c0, r0 = v.WorldToCell(x, y)
	c1, r1 = v.WorldToCell(x+w, y+h)
	if c1 <= c0 {
		c1 = c0 + 1
	}
	if r1 <= r0 {
		r1 = r0 + 1
	}
	return c0, r0, c1, r1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

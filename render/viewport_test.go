package render

import (
	"testing"

	"github.com/lixenwraith/space-snake/constants"
)

func TestViewportMapping(t *testing.T) {
	v := NewViewport(150, 30, 1500, 600)

	if c, r := v.WorldToCell(0, 0); c != 0 || r != 0 {
		t.Errorf("origin -> (%d,%d)", c, r)
	}
	if c, r := v.WorldToCell(1499, 599); c != 149 || r != 29 {
		t.Errorf("far corner -> (%d,%d)", c, r)
	}
	if c, _ := v.WorldToCell(-1, 0); c != -1 {
		t.Errorf("left of playfield should map to -1, got %d", c)
	}
	if x, y := v.CellToWorld(75, 17); x != 755 || y != 350 {
		t.Errorf("cell centre -> (%d,%d)", x, y)
	}

	// Round trip: the centre of a cell maps back into that cell
	for col := 0; col < v.Cols; col += 7 {
		for row := 0; row < v.Rows; row += 3 {
			x, y := v.CellToWorld(col, row)
			if c, r := v.WorldToCell(x, y); c != col || r != row {
				t.Fatalf("cell (%d,%d) -> world (%d,%d) -> cell (%d,%d)", col, row, x, y, c, r)
			}
		}
	}
}

func TestViewportRectMinimumCell(t *testing.T) {
	v := NewViewport(10, 5, 1500, 600)
	c0, r0, c1, r1 := v.RectToCells(0, 0, constants.StarSize, constants.StarSize)
	if c1-c0 < 1 || r1-r0 < 1 {
		t.Errorf("small body should still cover a cell, got [%d,%d)x[%d,%d)", c0, c1, r0, r1)
	}
}

func TestViewportResizeFloor(t *testing.T) {
	v := NewViewport(0, -3, 1500, 600)
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("expected 1x1 minimum, got %dx%d", v.Cols, v.Rows)
	}
}

func TestStarfieldScrollWraps(t *testing.T) {
	s := NewStarfield(600, 3)
	steps := constants.BackgroundTileWidth / constants.ScrollSpeed

	for i := 0; i < steps-1; i++ {
		s.Advance()
	}
	if s.Scroll() != -(constants.BackgroundTileWidth - constants.ScrollSpeed) {
		t.Fatalf("unexpected scroll %d", s.Scroll())
	}
	s.Advance()
	if s.Scroll() != 0 {
		t.Errorf("expected wrap to 0, got %d", s.Scroll())
	}
}

func TestStarfieldCoversWidth(t *testing.T) {
	s := NewStarfield(600, 8)
	for i := 0; i < 37; i++ {
		s.Advance()
	}
	count := 0
	s.Each(1500, func(x, y int, _ bool) {
		if x < 0 || x >= 1500 || y < 0 || y >= 600 {
			t.Fatalf("speck (%d,%d) outside playfield", x, y)
		}
		count++
	})
	// Three full tiles across 1500 units
	if count < 2*constants.BackgroundStarsPerTile {
		t.Errorf("expected specks across the width, got %d", count)
	}
}
